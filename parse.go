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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ianlewis/go-mwdict/internal/folding"
	"github.com/ianlewis/go-mwdict/markup"
	"github.com/ianlewis/go-mwdict/sseq"
)

// ErrMalformed indicates that the input is not valid JSON.
var ErrMalformed = errors.New("malformed entry data")

// Section values found in entry metadata.
const (
	// SectionAlpha is the main alphabetical section of the dictionary.
	SectionAlpha = "alpha"

	// SectionRunOn holds run-on phrases (e.g. "run short").
	SectionRunOn = "fwp"
)

// Options are options for a Parser.
type Options struct {
	// Sections are the accepted entry sections. Entries in other sections
	// are skipped. Defaults to SectionAlpha.
	Sections []string

	// AllPronunciations collects all of an entry's pronunciations rather
	// than just the first.
	AllPronunciations bool

	// Markup are options for rendering definition text.
	Markup *markup.Options
}

// DefaultOptions is the default options for a Parser.
var DefaultOptions = &Options{
	Sections: []string{SectionAlpha},
}

var defaultParser = NewParser(nil)

// Parser parses API responses. A Parser is immutable and safe for
// concurrent use.
type Parser struct {
	sections          map[string]bool
	allPronunciations bool
	renderer          *markup.Renderer
}

// NewParser returns a new Parser.
func NewParser(options *Options) *Parser {
	if options == nil {
		options = DefaultOptions
	}

	sections := options.Sections
	if len(sections) == 0 {
		sections = DefaultOptions.Sections
	}

	p := &Parser{
		sections:          make(map[string]bool, len(sections)),
		allPronunciations: options.AllPronunciations,
		renderer:          markup.DefaultRenderer,
	}
	for _, s := range sections {
		p.sections[s] = true
	}
	if options.Markup != nil {
		p.renderer = markup.New(options.Markup)
	}
	return p
}

// Parse parses an API response using the default options.
func Parse(raw []byte) ([]*Entry, error) {
	return defaultParser.Parse(raw)
}

// Parse parses an API response. The response is a JSON array of entry
// objects; a lone entry object is also accepted. Array members that are
// not standard dictionary entries, such as the suggestion strings returned
// for unknown words, are skipped. If raw is not valid JSON the returned
// error wraps ErrMalformed.
func (p *Parser) Parse(raw []byte) ([]*Entry, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		items = []json.RawMessage{trimmed}
	}

	entries := []*Entry{}
	for _, item := range items {
		var e apiEntry
		if err := json.Unmarshal(item, &e); err != nil {
			continue
		}
		if !p.accept(&e) {
			continue
		}
		entries = append(entries, p.entry(&e))
	}
	return entries, nil
}

// accept reports whether e is a standard dictionary entry.
func (p *Parser) accept(e *apiEntry) bool {
	return e.Hwi != nil && e.Hwi.Hw != "" && e.Fl != "" && p.sections[e.Meta.Section]
}

// entry builds an Entry. e must be accepted.
func (p *Parser) entry(e *apiEntry) *Entry {
	entry := &Entry{
		id:           e.Meta.ID,
		homograph:    e.Hom,
		headword:     folding.String(folding.Headword(), e.Hwi.Hw),
		syllables:    folding.String(folding.Syllables(), e.Hwi.Hw),
		partOfSpeech: e.Fl,
		shortdefs:    e.Shortdef,
	}

	if len(e.Hwi.Prs) > 0 {
		// The first variant is the entry's pronunciation even if it has no
		// Merriam-Webster form.
		entry.pronunciation = e.Hwi.Prs[0].Mw
	}
	prs := e.Hwi.Prs
	if !p.allPronunciations && len(prs) > 1 {
		prs = prs[:1]
	}
	for _, pr := range prs {
		if pr.Mw != "" {
			entry.pronunciations = append(entry.pronunciations, pr.Mw)
		}
	}

	if len(e.Def) > 0 {
		// A sequence that is not an array has no usable senses.
		if seq, err := sseq.Decode(e.Def[0].Sseq); err == nil {
			entry.senses = p.senses(seq)
		}
	}

	return entry
}

// senses walks the sense groups in order and returns the senses found.
func (p *Parser) senses(seq sseq.Sequence) []*Sense {
	var senses []*Sense
	for _, group := range seq {
		w := groupWalker{renderer: p.renderer}
		w.walk(group)
		senses = append(senses, w.senses...)
	}
	return senses
}

// groupWalker collects the senses of one sense group.
type groupWalker struct {
	renderer *markup.Renderer

	// top is the top level sense number in effect.
	top string

	senses []*Sense
}

func (w *groupWalker) walk(nodes []sseq.Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *sseq.Sen:
			if top, _ := ParseSenseNumber(n.SenseNumber, ""); top != "" {
				w.top = top
			}
		case *sseq.Sense:
			w.sense(n)
		case *sseq.BindingSense:
			w.sense(n.Sense)
		case *sseq.ParenSequence:
			w.walk(n.Nodes)
		default:
			// Unrecognized constructs are skipped.
		}
	}
}

func (w *groupWalker) sense(n *sseq.Sense) {
	s := newSense(n.SenseNumber, w.top, w.renderer)
	if top, _ := ParseSenseNumber(n.SenseNumber, ""); top != "" {
		// An explicitly numbered sense applies to the lettered senses that
		// follow it.
		w.top = top
	}

	for _, el := range n.Definition {
		switch el := el.(type) {
		case *sseq.Text:
			s.appendText(el.Text)
		case *sseq.Uns:
			s.appendText(el.Text)
		}
	}
	w.senses = append(w.senses, s)
}
