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

// Package markup renders the inline formatting and cross-reference tokens
// used in Merriam-Webster API text into HTML.
//
// Tokens are enclosed in curly braces. Some stand alone (e.g. "{bc}"), some
// take pipe separated arguments (e.g. "{d_link|running|run:2}") and some
// wrap a span of text between an opening and closing token (e.g.
// "{it}text{/it}"). The tokens understood by the renderer are:
//
//	{bc}                  bold colon
//	{ldquo} {rdquo}       curly double quotes
//	{a_link|word}         auto link to a word page
//	{d_link|text|target}  direct link
//	{i_link|text|target}  italicized link
//	{sx|word|link|sense}  synonym cross-reference
//	{dxt|word|link|sense} directional cross-reference target
//	{dx}...{/dx}          directional cross-reference
//	{dx_def}...{/dx_def}  parenthetical directional cross-reference
//	{it}...{/it}          italics
//	{sc}...{/sc}          small capitals
//	{phrase}...{/phrase}  bold italic phrase
//	{inf}...{/inf}        subscript
//	{b} {sup} {wi} {gloss}
//
// Unrecognized tokens are copied to the output verbatim.
//
// More info on the text format can be found at this URL:
// https://dictionaryapi.com/products/json
package markup
