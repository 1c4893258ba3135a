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

// Package testutil implements helpers for writing saved responses in tests.
package testutil

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// Compression is the compression used for a saved response.
type Compression int

const (
	// None writes the response as is.
	None Compression = iota

	// Gzip compresses the response with gzip.
	Gzip

	// DictZip compresses the response with dictzip.
	DictZip
)

// Ext returns the file extension used for the compression.
func (c Compression) Ext() string {
	switch c {
	case Gzip:
		return ".json.gz"
	case DictZip:
		return ".json.dz"
	default:
		return ".json"
	}
}

// WriteResponse writes data to a file named after word in dir and returns
// the file's path.
func WriteResponse(t *testing.T, dir, word string, data []byte, c Compression) string {
	t.Helper()

	path := filepath.Join(dir, word+c.Ext())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var w io.WriteCloser
	switch c {
	case Gzip:
		w = gzip.NewWriter(f)
	case DictZip:
		w, err = dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
	}

	if w == nil {
		if _, err := f.Write(data); err != nil {
			t.Fatal(err)
		}
		return path
	}

	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}
