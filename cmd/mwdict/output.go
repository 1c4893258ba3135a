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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rodaine/table"

	"github.com/ianlewis/go-mwdict"
)

// printEntries writes entries as plain text separated by blank lines.
func printEntries(w io.Writer, entries []*mwdict.Entry) error {
	for i, e := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	return nil
}

// printJSON writes entries as an indented JSON array.
func printJSON(w io.Writer, entries []*mwdict.Entry) error {
	plain := mwdict.ToPlain(entries)
	if plain == nil {
		plain = []mwdict.PlainEntry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(plain); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// printTable writes one row per sense.
func printTable(w io.Writer, entries []*mwdict.Entry) {
	tbl := table.New("Headword", "Function", "Sense", "Definition").WithWriter(w)
	for _, e := range entries {
		headword := e.Headword()
		if e.Homograph() > 0 {
			headword = fmt.Sprintf("%s (%d)", headword, e.Homograph())
		}
		if len(e.Senses()) == 0 {
			tbl.AddRow(headword, e.PartOfSpeech(), "", "")
			continue
		}
		for _, s := range e.Senses() {
			number := strings.TrimSpace(s.Top() + " " + s.Sub())
			tbl.AddRow(headword, e.PartOfSpeech(), number, s.Text())
		}
	}
	tbl.Print()
}

// output writes entries in the format selected by the command's flags.
func output(w io.Writer, entries []*mwdict.Entry, asJSON, asTable bool) error {
	switch {
	case asJSON:
		return printJSON(w, entries)
	case asTable:
		printTable(w, entries)
		return nil
	default:
		return printEntries(w, entries)
	}
}
