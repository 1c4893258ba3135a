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
	"slices"
	"strings"
)

// Entry is a dictionary entry for a single headword. Entries for words with
// several homographs are returned as separate Entry values.
type Entry struct {
	id        string
	homograph int

	headword       string
	syllables      string
	pronunciation  string
	pronunciations []string
	partOfSpeech   string

	senses    []*Sense
	shortdefs []string
}

// ID returns the entry's API identifier (e.g. "run:2").
func (e *Entry) ID() string {
	return e.id
}

// Homograph returns the entry's homograph number or zero if the headword
// has no homographs.
func (e *Entry) Homograph() int {
	return e.homograph
}

// Headword returns the entry's headword.
func (e *Entry) Headword() string {
	return e.headword
}

// DisplayHeadword returns the entry's headword as HTML.
func (e *Entry) DisplayHeadword() string {
	return html.EscapeString(e.headword)
}

// Syllables returns the headword with syllable breaks marked by an
// interpunct (e.g. "vo·lu·mi·nous").
func (e *Entry) Syllables() string {
	return e.syllables
}

// Pronunciation returns the Merriam-Webster form of the entry's first
// pronunciation. It is empty if there is none or the first pronunciation has
// no such form.
func (e *Entry) Pronunciation() string {
	return e.pronunciation
}

// Pronunciations returns the non-empty Merriam-Webster forms of the entry's
// pronunciations. Only the first pronunciation is considered unless the
// parser was created with AllPronunciations set. The returned slice is a
// copy.
func (e *Entry) Pronunciations() []string {
	return slices.Clone(e.pronunciations)
}

// PartOfSpeech returns the entry's functional label (e.g. "adjective").
func (e *Entry) PartOfSpeech() string {
	return e.partOfSpeech
}

// Senses returns the entry's senses in dictionary order. The returned slice
// is a copy. Senses themselves are immutable.
func (e *Entry) Senses() []*Sense {
	return slices.Clone(e.senses)
}

// ShortDefinitions returns the API's abridged definitions for the entry. The
// returned slice is a copy.
func (e *Entry) ShortDefinitions() []string {
	return slices.Clone(e.shortdefs)
}

// String returns a string representation of the Entry.
func (e *Entry) String() string {
	var b strings.Builder
	b.WriteString(e.headword)
	for _, line := range []string{e.syllables, e.Pronunciation(), e.partOfSpeech} {
		if line != "" {
			b.WriteString("\n" + line)
		}
	}
	for _, s := range e.senses {
		b.WriteString("\n" + s.String())
	}
	return b.String()
}
