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

// Package mwdict implements a parser for Merriam-Webster Collegiate
// Dictionary API entries.
//
// The API returns a JSON array of entry objects, one per homograph. Parse
// turns that array into Entry values. Each Entry holds the headword, its
// syllable breaks, pronunciation, functional label (part of speech) and its
// numbered senses in dictionary order. Definition text is kept in its raw
// form and rendered to HTML on demand by the markup package.
//
// Entries that are not standard dictionary entries, or that lack a headword
// or functional label, are skipped. Unrecognized parts of the sense sequence
// are skipped as well so that a best-effort result is always returned for
// well-formed JSON.
//
// ToPlain converts parsed entries to plain structs ready to be encoded as
// JSON or handed to a template.
//
// More info on the API format can be found at this URL:
// https://dictionaryapi.com/products/json
package mwdict
