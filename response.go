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

import "encoding/json"

// apiEntry is a single entry in an API response. Only the fields used by
// the parser are decoded.
type apiEntry struct {
	Meta     apiMeta  `json:"meta"`
	Hom      int      `json:"hom"`
	Hwi      *apiHwi  `json:"hwi"`
	Fl       string   `json:"fl"`
	Def      []apiDef `json:"def"`
	Shortdef []string `json:"shortdef"`
}

// apiMeta is entry metadata.
type apiMeta struct {
	ID      string `json:"id"`
	Section string `json:"section"`
}

// apiHwi is the headword information block.
type apiHwi struct {
	// Hw is the headword with syllable breaks marked by '*'.
	Hw  string  `json:"hw"`
	Prs []apiPr `json:"prs"`
}

// apiPr is a pronunciation.
type apiPr struct {
	// Mw is the pronunciation in Merriam-Webster format.
	Mw string `json:"mw"`
}

// apiDef is a definition section. Its sense sequence is decoded by the sseq
// package.
type apiDef struct {
	Sseq json.RawMessage `json:"sseq"`
}
