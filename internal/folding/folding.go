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

// Package folding implements text transformations applied to headwords,
// search queries, and plain text definitions.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	// SyllableMarker separates syllables in an API headword.
	SyllableMarker = '*'

	// Interpunct is the separator used to display syllable breaks.
	Interpunct = '·'
)

var syllableMarkers = runes.Predicate(func(r rune) bool {
	return r == SyllableMarker
})

// Headword returns a [transform.Transformer] that removes syllable markers
// from an API headword.
func Headword() transform.Transformer {
	return runes.Remove(syllableMarkers)
}

// Syllables returns a [transform.Transformer] that replaces syllable
// markers in an API headword with an interpunct.
func Syllables() transform.Transformer {
	return runes.Map(func(r rune) rune {
		if r == SyllableMarker {
			return Interpunct
		}
		return r
	})
}

// Whitespace returns a [transform.Transformer] that performs whitespace
// folding.
func Whitespace() transform.Transformer {
	return &WhitespaceFolder{}
}

// Query returns a [transform.Transformer] that folds a headword or search
// query for comparison. Syllable markers are removed, case is folded and
// whitespace is folded.
func Query() transform.Transformer {
	return transform.Chain(Headword(), cases.Fold(), Whitespace())
}

// String applies t to s. Transformers in this package do not fail on
// complete input so s is returned as is if t returns an error.
func String(t transform.Transformer, s string) string {
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// WhitespaceFolder will perform whitespace folding on the input. It removes
// spaces from the beginning and end of the input and replaces all internal
// whitespace spans, including non-breaking spaces left over from rendered
// HTML, with a single ASCII space rune.
type WhitespaceFolder struct {
	// started is true after encountering the first non-whitespace rune.
	started bool

	// inSpan is true if the transformer is currently handling a whitespace
	// span.
	inSpan bool
}

// Transform implements [transform.Transformer.Transform].
func (w *WhitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(c) {
			nSrc += size
			// Leading whitespace is dropped. Internal spans are
			// remembered and written once the next rune is seen.
			w.inSpan = w.started
			continue
		}

		if w.inSpan {
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = ' '
			nDst++
			w.inSpan = false
		}

		// NOTE: c may be utf8.RuneError in which case size is 1 but
		// three bytes are written.
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		w.started = true
		nSrc += size
		nDst += utf8.EncodeRune(dst[nDst:], c)
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *WhitespaceFolder) Reset() {
	*w = WhitespaceFolder{}
}
