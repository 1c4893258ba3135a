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

// Package sseq implements decoding of Merriam-Webster sense sequences.
//
// A sense sequence ("sseq") is an array of sense groups. Each group is an
// array of tagged pairs where the first member names the kind of node and
// the second member holds its payload:
//
//	[
//	  [["sen", {"sn": "1"}], ["sense", {"sn": "a", "dt": [...]}]],
//	  [["bs", {"sense": {...}}], ["sense", {...}]]
//	]
//
// Each pair is decoded into one of the Node types. Pairs with a tag that is
// not understood, or whose payload does not have the expected shape, are
// decoded as Unknown so that the rest of the sequence is still usable.
package sseq
