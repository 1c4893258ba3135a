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
	"html"
	"strings"
	"unicode"

	"github.com/k3a/html2text"

	"github.com/ianlewis/go-mwdict/internal/folding"
	"github.com/ianlewis/go-mwdict/markup"
)

// TextSeparator separates text fragments of a single sense.
const TextSeparator = "&#x2192; "

// Sense is a single numbered definition of an Entry.
type Sense struct {
	number string
	top    string
	sub    string

	text string

	renderer *markup.Renderer
}

// newSense returns a new Sense for the given sense number. defaultTop is the
// top level sense number in effect for the sense's group.
func newSense(number, defaultTop string, renderer *markup.Renderer) *Sense {
	top, sub := ParseSenseNumber(number, defaultTop)
	return &Sense{
		number:   number,
		top:      top,
		sub:      sub,
		renderer: renderer,
	}
}

// appendText adds a fragment of definition text. Fragments never replace
// earlier text.
func (s *Sense) appendText(fragment string) {
	if fragment == "" {
		return
	}
	if s.text == "" {
		s.text = fragment
		return
	}
	s.text += TextSeparator + fragment
}

// SenseNumber returns the sense number as given by the API.
func (s *Sense) SenseNumber() string {
	return s.number
}

// Top returns the top level sense number (e.g. "2"). It is empty if the
// sense is not numbered.
func (s *Sense) Top() string {
	return s.top
}

// Sub returns the sub-sense label (e.g. "b"). It is empty if the sense is
// not a sub-sense.
func (s *Sense) Sub() string {
	return s.sub
}

// DefinitionText returns the raw definition text.
func (s *Sense) DefinitionText() string {
	return s.text
}

// Render returns the definition text rendered as HTML.
func (s *Sense) Render() string {
	r := s.renderer
	if r == nil {
		r = markup.DefaultRenderer
	}
	return r.Render(s.text)
}

// Text returns the definition text as plain text.
func (s *Sense) Text() string {
	return plainText(s.Render())
}

// Badge returns the sense number as HTML.
func (s *Sense) Badge() string {
	top := html.EscapeString(s.top)
	sub := html.EscapeString(s.sub)
	switch {
	case top != "" && sub != "":
		return "<b>" + top + "</b> " + sub
	case top != "":
		return "<b>" + top + "</b>"
	default:
		return sub
	}
}

// Plain returns the sense as a PlainSense.
func (s *Sense) Plain() PlainSense {
	return PlainSense{
		Text:      s.Render(),
		Number:    s.top,
		SubNumber: s.sub,
	}
}

// String returns a string representation of the Sense.
func (s *Sense) String() string {
	n := strings.TrimSpace(s.top + " " + s.sub)
	return n + "\t" + s.Text()
}

// ParseSenseNumber splits a sense number into its top level number and
// sub-sense label. A sense number that starts with a number such as "2 b"
// gives top "2" and sub "b". A sense number without one, such as "b",
// belongs to defaultTop. Empty results mean the part is absent.
func ParseSenseNumber(raw, defaultTop string) (top, sub string) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return "", ""
	}

	if isNumber(fields[0]) {
		return fields[0], strings.Join(fields[1:], " ")
	}
	return defaultTop, strings.Join(fields, " ")
}

func isNumber(s string) bool {
	for _, c := range s {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return s != ""
}

// plainText converts rendered HTML to folded plain text.
func plainText(h string) string {
	t := html2text.HTML2TextWithOptions(h, html2text.WithLinksInnerText())
	return folding.String(folding.Whitespace(), t)
}
