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

package markup

// entities are tokens replaced by a fixed string.
var entities = map[string]string{
	"bc":    "<b>:</b>&nbsp;",
	"ldquo": "&ldquo;",
	"rdquo": "&rdquo;",
}

// wrapper is the HTML written around the content of a span.
type wrapper struct {
	open  string
	close string
}

// wrappers are tokens that open a span closed by "{/name}".
var wrappers = map[string]wrapper{
	"dx":     {open: "&#x2192; "},
	"dx_def": {open: "(", close: ")"},
	"it":     {open: "<em>", close: "</em>"},
	"sc":     {open: `<span style="font-variant:small-caps">`, close: "</span>"},
	"phrase": {open: "<b><i>", close: "</i></b>"},
	"inf":    {open: `<span style="vertical-align:sub">`, close: "</span>"},
	"b":      {open: "<b>", close: "</b>"},
	"sup":    {open: "<sup>", close: "</sup>"},
	"wi":     {open: "<i>", close: "</i>"},
	"gloss":  {open: "[", close: "]"},
}
