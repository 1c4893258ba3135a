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

package mwdict

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSenseNumber(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		raw        string
		defaultTop string

		top string
		sub string
	}{
		"number": {
			raw: "1",
			top: "1",
		},
		"number and letter": {
			raw: "2 b",
			top: "2",
			sub: "b",
		},
		"letter": {
			raw:        "b",
			defaultTop: "2",
			top:        "2",
			sub:        "b",
		},
		"letter without top": {
			raw: "c",
			sub: "c",
		},
		"nested": {
			raw: "1 a (1)",
			top: "1",
			sub: "a (1)",
		},
		"parenthesized": {
			raw:        "(2)",
			defaultTop: "3",
			top:        "3",
			sub:        "(2)",
		},
		"extra whitespace": {
			raw: "  10   a ",
			top: "10",
			sub: "a",
		},
		"empty": {
			raw:        "",
			defaultTop: "2",
		},
		"blank": {
			raw:        "   ",
			defaultTop: "2",
		},
	}

	for name, tc := range testCases {
		name := name
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			top, sub := ParseSenseNumber(tc.raw, tc.defaultTop)
			if top != tc.top || sub != tc.sub {
				t.Fatalf("ParseSenseNumber(%q, %q): want (%q, %q), got (%q, %q)",
					tc.raw, tc.defaultTop, tc.top, tc.sub, top, sub)
			}
		})
	}
}

func TestSense_appendText(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		fragments []string
		expected  string
	}{
		"none": {
			expected: "",
		},
		"single": {
			fragments: []string{"to make larger"},
			expected:  "to make larger",
		},
		"two": {
			fragments: []string{"to make larger", "to enlarge"},
			expected:  "to make larger&#x2192; to enlarge",
		},
		"empty fragments": {
			fragments: []string{"", "to make larger", "", "to enlarge"},
			expected:  "to make larger&#x2192; to enlarge",
		},
	}

	for name, tc := range testCases {
		name := name
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := newSense("1", "", nil)
			for _, f := range tc.fragments {
				s.appendText(f)
			}
			if diff := cmp.Diff(tc.expected, s.DefinitionText()); diff != "" {
				t.Fatalf("DefinitionText (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSense_Badge(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		number     string
		defaultTop string
		expected   string
	}{
		"top":          {number: "3", expected: "<b>3</b>"},
		"top and sub":  {number: "3 a", expected: "<b>3</b> a"},
		"inherited":    {number: "b", defaultTop: "1", expected: "<b>1</b> b"},
		"sub only":     {number: "b", expected: "b"},
		"none":         {number: "", expected: ""},
		"escaped text": {number: "1 <a>", expected: "<b>1</b> &lt;a&gt;"},
	}

	for name, tc := range testCases {
		name := name
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := newSense(tc.number, tc.defaultTop, nil)
			if diff := cmp.Diff(tc.expected, s.Badge()); diff != "" {
				t.Fatalf("Badge (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSense_Text(t *testing.T) {
	t.Parallel()

	s := newSense("1", "", nil)
	s.appendText("{bc}having or marked by {it}great{/it} volume {bc}{sx|large||}")

	text := s.Text()
	for _, want := range []string{"having or marked by great volume", "LARGE"} {
		if !strings.Contains(text, want) {
			t.Errorf("Text: want %q in %q", want, text)
		}
	}
	if strings.Contains(text, "<") {
		t.Errorf("Text: unexpected markup in %q", text)
	}
	if text != strings.TrimSpace(text) {
		t.Errorf("Text: unexpected surrounding whitespace in %q", text)
	}
}

func TestSense_String(t *testing.T) {
	t.Parallel()

	s := newSense("b", "2", nil)
	s.appendText("{bc}bulky")

	got := s.String()
	if !strings.HasPrefix(got, "2 b\t") || !strings.HasSuffix(got, "bulky") {
		t.Fatalf("String: got %q", got)
	}
}
