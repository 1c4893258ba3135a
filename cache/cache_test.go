// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-mwdict"
	"github.com/ianlewis/go-mwdict/internal/testutil"
)

const bulk = `[{"meta": {"id": "bulk:1", "section": "alpha"}, "hwi": {"hw": "bulk"}, "fl": "noun",
	"def": [{"sseq": [[["sense", {"sn": "1", "dt": [["text", "{bc}spatial dimension"]]}]]]}]}]`

func TestOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		c    testutil.Compression
	}{
		{"json", testutil.None},
		{"gzip", testutil.Gzip},
		{"dictzip", testutil.DictZip},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := testutil.WriteResponse(t, dir, "bulk", []byte(bulk), test.c)

			r, err := Open(path)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}

			if want, got := "bulk", r.Word(); want != got {
				t.Errorf("Word: want %q, got %q", want, got)
			}
			if want, got := path, r.Path(); want != got {
				t.Errorf("Path: want %q, got %q", want, got)
			}
			if diff := cmp.Diff(bulk, string(r.Data())); diff != "" {
				t.Errorf("Data (-want, +got):\n%s", diff)
			}

			entries, err := r.Entries(nil)
			if err != nil {
				t.Fatalf("Entries: %v", err)
			}
			if len(entries) != 1 || entries[0].ID() != "bulk:1" {
				t.Fatalf("Entries: unexpected entries %v", entries)
			}
		})
	}
}

func TestOpen_Unsupported(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"bulk.txt", "bulk", ".json", "bulk.json.bz2"} {
		_, err := Open(filepath.Join(t.TempDir(), name))
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("Open(%q): want %v, got %v", name, ErrUnsupported, err)
		}
	}
}

func TestOpen_NotExist(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "bulk.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Open: want %v, got %v", os.ErrNotExist, err)
	}
}

func TestOpen_BadGzip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := testutil.WriteResponse(t, dir, "bulk", []byte(bulk), testutil.None)
	bad := filepath.Join(dir, "bulk.json.gz")
	if err := os.Rename(path, bad); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(bad); err == nil {
		t.Fatal("Open: expected error")
	}
}

func TestResponse_Entries_Malformed(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := testutil.WriteResponse(t, dir, "bulk", []byte(bulk[:20]), testutil.None)

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if _, err := r.Entries(mwdict.NewParser(nil)); !errors.Is(err, mwdict.ErrMalformed) {
		t.Fatalf("Entries: want %v, got %v", mwdict.ErrMalformed, err)
	}
}

func TestOpenAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteResponse(t, dir, "bulk", []byte(bulk), testutil.None)
	testutil.WriteResponse(t, dir, "Bulky", []byte("[]"), testutil.DictZip)

	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	testutil.WriteResponse(t, sub, "run", []byte("[]"), testutil.Gzip)

	// Bad gzip data is reported but doesn't stop the walk.
	if err := os.WriteFile(filepath.Join(sub, "broken.json.gz"), []byte("nope"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.txt"), []byte("ignored"), 0o600); err != nil {
		t.Fatal(err)
	}

	responses, errs := OpenAll(dir)
	if len(errs) != 1 {
		t.Errorf("errs: want 1 error, got %v", errs)
	}

	var words []string
	for _, r := range responses {
		words = append(words, r.Word())
	}
	// WalkDir visits files in lexical order.
	if diff := cmp.Diff([]string{"Bulky", "bulk", "run"}, words); diff != "" {
		t.Fatalf("words (-want, +got):\n%s", diff)
	}
}

func TestOpenAll_NotExist(t *testing.T) {
	t.Parallel()

	responses, errs := OpenAll(filepath.Join(t.TempDir(), "missing"))
	if len(responses) != 0 {
		t.Errorf("responses: want none, got %d", len(responses))
	}
	if len(errs) != 1 || !errors.Is(errs[0], os.ErrNotExist) {
		t.Errorf("errs: want %v, got %v", os.ErrNotExist, errs)
	}
}

func TestIndex(t *testing.T) {
	t.Parallel()

	responses := []*Response{
		{word: "run"},
		{word: "Bulky"},
		{word: "bulk"},
		{word: "run short"},
		{word: "RUN"},
	}
	idx := NewIndex(responses)

	if want, got := 5, idx.Len(); want != got {
		t.Fatalf("Len: want %d, got %d", want, got)
	}

	words := func(rs []*Response) []string {
		var w []string
		for _, r := range rs {
			w = append(w, r.Word())
		}
		return w
	}

	tests := []struct {
		name     string
		search   func(string) []*Response
		query    string
		expected []string
	}{
		{"search folded", idx.Search, "Run", []string{"run", "RUN"}},
		{"search syllables", idx.Search, "bul*ky", []string{"Bulky"}},
		{"search whitespace", idx.Search, "  run   short ", []string{"run short"}},
		{"search missing", idx.Search, "walk", nil},
		{"prefix", idx.Prefix, "BULK", []string{"bulk", "Bulky"}},
		{"prefix phrase", idx.Prefix, "run ", []string{"run", "RUN", "run short"}},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, words(test.search(test.query))); diff != "" {
				t.Fatalf("(-want, +got):\n%s", diff)
			}
		})
	}
}
