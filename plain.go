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

import "slices"

// PlainSense is a sense ready to be encoded as JSON or used in a template.
type PlainSense struct {
	// Text is the rendered HTML definition text.
	Text      string `json:"text"`
	Number    string `json:"number,omitempty"`
	SubNumber string `json:"sub_number,omitempty"`
}

// PlainEntry is an entry ready to be encoded as JSON or used in a template.
type PlainEntry struct {
	ID            string `json:"id,omitempty"`
	Headword      string `json:"headword"`
	Homograph     int    `json:"homograph,omitempty"`
	PartOfSpeech  string `json:"part_of_speech"`
	Syllables     string `json:"syllables"`
	Pronunciation string `json:"pronunciation,omitempty"`

	// Pronunciations is only set when there is more than one.
	Pronunciations []string `json:"pronunciations,omitempty"`

	ShortDefinitions []string     `json:"short_definitions,omitempty"`
	Senses           []PlainSense `json:"senses"`
}

// Plain returns the entry as a PlainEntry.
func (e *Entry) Plain() PlainEntry {
	p := PlainEntry{
		ID:               e.id,
		Headword:         e.headword,
		Homograph:        e.homograph,
		PartOfSpeech:     e.partOfSpeech,
		Syllables:        e.syllables,
		Pronunciation:    e.Pronunciation(),
		ShortDefinitions: slices.Clone(e.shortdefs),
		Senses:           make([]PlainSense, 0, len(e.senses)),
	}
	if len(e.pronunciations) > 1 {
		p.Pronunciations = slices.Clone(e.pronunciations)
	}
	for _, s := range e.senses {
		p.Senses = append(p.Senses, s.Plain())
	}
	return p
}

// ToPlain returns the entries as PlainEntry values. It returns nil if
// entries is nil.
func ToPlain(entries []*Entry) []PlainEntry {
	if entries == nil {
		return nil
	}

	plain := make([]PlainEntry, 0, len(entries))
	for _, e := range entries {
		plain = append(plain, e.Plain())
	}
	return plain
}
