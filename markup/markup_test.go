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

package markup_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-mwdict/markup"
)

const wordURL = "https://www.merriam-webster.com/dictionary/"

// TestRender tests Render.
func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "empty",
			raw:      "",
			expected: "",
		},
		{
			name:     "bold colon",
			raw:      "{bc}having or marked by great volume or bulk",
			expected: "<b>:</b>&nbsp;having or marked by great volume or bulk",
		},
		{
			name:     "auto link",
			raw:      "{bc}{a_link|large}",
			expected: `<b>:</b>&nbsp;<a href="` + wordURL + `large"><span style="font-size:smaller">LARGE</span></a>`,
		},
		{
			name:     "direct link with anchor",
			raw:      "{d_link|running|run:2}",
			expected: `<a href="` + wordURL + `run#h2">running</a>`,
		},
		{
			name:     "direct link without target",
			raw:      "see {d_link|run}",
			expected: `see <a href="` + wordURL + `run">run</a>`,
		},
		{
			name:     "direct link with empty target",
			raw:      "{d_link|run|}",
			expected: `<a href="` + wordURL + `run">run</a>`,
		},
		{
			name:     "direct link with space",
			raw:      "{d_link|ice cream}",
			expected: `<a href="` + wordURL + `ice%20cream">ice cream</a>`,
		},
		{
			name:     "italicized link",
			raw:      "{i_link|caput|caput}",
			expected: `<i><a href="` + wordURL + `caput">caput</a></i>`,
		},
		{
			name:     "synonym with sense",
			raw:      "{sx|bulky||2}",
			expected: `<a href="` + wordURL + `bulky"><span style="font-size:smaller">BULKY sense 2</span></a>`,
		},
		{
			name:     "synonym with link override",
			raw:      "{sx|run|run:1|}",
			expected: `<a href="` + wordURL + `run#h1"><span style="font-size:smaller">RUN</span></a>`,
		},
		{
			name:     "directional cross-reference",
			raw:      "{dx}compare {dxt|ample||}{/dx}",
			expected: `&#x2192; compare <a href="` + wordURL + `ample"><span style="font-size:smaller">AMPLE</span></a>`,
		},
		{
			name:     "definition cross-reference",
			raw:      "ancient unit {dx_def}see {dxt|cubit||}{/dx_def}",
			expected: `ancient unit (see <a href="` + wordURL + `cubit"><span style="font-size:smaller">CUBIT</span></a>)`,
		},
		{
			name:     "italics",
			raw:      "{it}voluminous{/it} correspondence",
			expected: "<em>voluminous</em> correspondence",
		},
		{
			name:     "small capitals",
			raw:      "{sc}dna{/sc}",
			expected: `<span style="font-variant:small-caps">dna</span>`,
		},
		{
			name:     "phrase",
			raw:      "{phrase}run short{/phrase}",
			expected: "<b><i>run short</i></b>",
		},
		{
			name:     "subscript",
			raw:      "H{inf}2{/inf}O",
			expected: `H<span style="vertical-align:sub">2</span>O`,
		},
		{
			name:     "nested spans",
			raw:      "{phrase}in {it}toto{/it}{/phrase}",
			expected: "<b><i>in <em>toto</em></i></b>",
		},
		{
			name:     "nested same span",
			raw:      "{it}a {it}b{/it} c{/it}",
			expected: "<em>a <em>b</em> c</em>",
		},
		{
			name:     "quotes",
			raw:      "{ldquo}big{rdquo}",
			expected: "&ldquo;big&rdquo;",
		},
		{
			name:     "gloss",
			raw:      "{gloss}sense 1{/gloss}",
			expected: "[sense 1]",
		},
		{
			name:     "unknown tag",
			raw:      "{et_link|volume|volume} from {ma}Latin{/ma}",
			expected: "{et_link|volume|volume} from {ma}Latin{/ma}",
		},
		{
			name:     "unclosed span",
			raw:      "{it}never closed",
			expected: "{it}never closed",
		},
		{
			name:     "stray close",
			raw:      "closed{/it} {bc}x",
			expected: "closed{/it} <b>:</b>&nbsp;x",
		},
		{
			name:     "unterminated token",
			raw:      "{bc}a {bc",
			expected: "<b>:</b>&nbsp;a {bc",
		},
		{
			name:     "stray open brace",
			raw:      "{{bc}",
			expected: "{<b>:</b>&nbsp;",
		},
		{
			name:     "unsafe link argument",
			raw:      `{a_link|"><script>}`,
			expected: `{a_link|"><script>}`,
		},
		{
			name:     "too many arguments",
			raw:      "{d_link|a|b|c}",
			expected: "{d_link|a|b|c}",
		},
		{
			name:     "empty auto link",
			raw:      "{a_link|}",
			expected: "{a_link|}",
		},
		{
			name:     "unicode word",
			raw:      "{a_link|café}",
			expected: `<a href="` + wordURL + `caf%C3%A9"><span style="font-size:smaller">CAFÉ</span></a>`,
		},
		{
			name:     "crossed spans",
			raw:      "{it}a{b}b{/it}c{/b}",
			expected: "<em>a{b}b</em>c{/b}",
		},
		{
			name:     "inner span closed outside",
			raw:      "{b}{it}x{/b}{/it}",
			expected: "<b>{it}x</b>{/it}",
		},
		{
			name:     "unclosed outer span",
			raw:      "{it}{it}a{/it}",
			expected: "{it}<em>a</em>",
		},
		{
			name:     "stray closer",
			raw:      "{/it}a{it}b{/it}",
			expected: "{/it}a<em>b</em>",
		},
		{
			name:     "nested different spans",
			raw:      "{dx}see {it}{sc}x{/sc}{/it}{/dx}",
			expected: `&#x2192; see <em><span style="font-variant:small-caps">x</span></em>`,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, markup.Render(test.raw)); diff != "" {
				t.Fatalf("Render (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestRender_DiscardDefinitionCrossRefs tests the Discard policy.
func TestRender_DiscardDefinitionCrossRefs(t *testing.T) {
	t.Parallel()

	r := markup.New(&markup.Options{
		DefinitionCrossRefs: markup.Discard,
	})

	raw := "ancient unit {dx_def}see {dxt|cubit||}{/dx_def}"
	if diff := cmp.Diff("ancient unit ", r.Render(raw)); diff != "" {
		t.Fatalf("Render (-want, +got):\n%s", diff)
	}
}

// TestRender_BaseURL tests a custom word page URL.
func TestRender_BaseURL(t *testing.T) {
	t.Parallel()

	r := markup.New(&markup.Options{
		BaseURL: "/words/",
	})

	want := `<a href="/words/run#h2">running</a>`
	if diff := cmp.Diff(want, r.Render("{d_link|running|run:2}")); diff != "" {
		t.Fatalf("Render (-want, +got):\n%s", diff)
	}
}

// TestRender_NoMarkup tests that text without tokens is unchanged.
func TestRender_NoMarkup(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"to make larger",
		"a < b & c > d",
		"<b>already html</b>",
		"closing } only",
		"日本語のテキスト",
	} {
		if got := markup.Render(raw); got != raw {
			t.Errorf("Render(%q) = %q", raw, got)
		}
	}
}

// TestRender_Terminal tests that rendering rendered text is a no-op.
func TestRender_Terminal(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"{bc}having or marked by great volume or bulk {dx}compare {dxt|ample||}{/dx}",
		"{sx|bulky||2} {d_link|running|run:2} {i_link|caput|caput}",
		"{it}{it}a{/it} {sc}b{/sc} {phrase}c{/phrase} H{inf}2{/inf}O",
		"{et_link|volume|volume} {dx_def}see {dxt|cubit||}{/dx_def} {bc",
	} {
		once := markup.Render(raw)
		twice := markup.Render(once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("Render(Render(%q)) (-once, +twice):\n%s", raw, diff)
		}
	}
}

// TestRender_Large tests that large inputs of nested or unclosed spans
// render in time proportional to their length.
func TestRender_Large(t *testing.T) {
	t.Parallel()

	const n = 40000

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "nested",
			raw:      strings.Repeat("{it}", n) + "x" + strings.Repeat("{/it}", n),
			expected: strings.Repeat("<em>", n) + "x" + strings.Repeat("</em>", n),
		},
		{
			name:     "unclosed",
			raw:      strings.Repeat("{it}", n) + "x",
			expected: strings.Repeat("{it}", n) + "x",
		},
		{
			name:     "unclosed mixed",
			raw:      strings.Repeat("{dx}a{dx_def}b{bc}", n),
			expected: strings.Repeat("{dx}a{dx_def}b<b>:</b>&nbsp;", n),
		},
		{
			name:     "stray closers",
			raw:      strings.Repeat("{/it}{/sc}", n),
			expected: strings.Repeat("{/it}{/sc}", n),
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			start := time.Now()
			got := markup.Render(test.raw)
			elapsed := time.Since(start)

			if got != test.expected {
				t.Errorf("Render: unexpected output for %d byte input", len(test.raw))
			}
			// Linear rendering takes milliseconds. Quadratic rendering of
			// these inputs takes tens of seconds.
			if elapsed > 5*time.Second {
				t.Errorf("Render: %d byte input took %v", len(test.raw), elapsed)
			}
		})
	}
}

func ExampleRender() {
	fmt.Println(markup.Render("{bc}having {it}great{/it} volume"))
	// Output: <b>:</b>&nbsp;having <em>great</em> volume
}
