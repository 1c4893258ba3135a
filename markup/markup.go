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

import (
	"html"
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultBaseURL is the word page URL prefix used for links.
const DefaultBaseURL = "https://www.merriam-webster.com/dictionary/"

// CrossRefPolicy determines how "{dx_def}" spans are rendered.
type CrossRefPolicy int

const (
	// Parenthesize renders the span's content in parentheses.
	Parenthesize CrossRefPolicy = iota

	// Discard drops the span and its content.
	Discard
)

// Options are options for a Renderer.
type Options struct {
	// BaseURL is the prefix for word page links. The (escaped) target word
	// is appended to it.
	BaseURL string

	// DefinitionCrossRefs is the policy for "{dx_def}" spans.
	DefinitionCrossRefs CrossRefPolicy
}

// DefaultOptions is the default options for a Renderer.
var DefaultOptions = &Options{
	BaseURL:             DefaultBaseURL,
	DefinitionCrossRefs: Parenthesize,
}

// DefaultRenderer is the Renderer used by Render.
var DefaultRenderer = New(nil)

// Renderer renders API text to HTML. A Renderer is immutable and safe for
// concurrent use.
type Renderer struct {
	baseURL string
	dxDef   CrossRefPolicy
}

// New returns a new Renderer.
func New(options *Options) *Renderer {
	if options == nil {
		options = DefaultOptions
	}

	r := &Renderer{
		baseURL: DefaultOptions.BaseURL,
		dxDef:   options.DefinitionCrossRefs,
	}
	if options.BaseURL != "" {
		r.baseURL = options.BaseURL
	}
	return r
}

// Render renders raw using DefaultRenderer.
func Render(raw string) string {
	return DefaultRenderer.Render(raw)
}

// Render renders raw to HTML. Text outside of tokens is copied as is so
// text without tokens is returned unchanged. Rendering is terminal: the
// output of Render renders to itself.
func (r *Renderer) Render(raw string) string {
	if !strings.Contains(raw, "{") {
		return raw
	}

	p := &pass{
		r:      r,
		s:      raw,
		closes: matchSpans(raw),
	}

	var b strings.Builder
	b.Grow(len(raw) + len(raw)/2)
	p.render(&b, 0, len(raw))
	return b.String()
}

// matchSpans pairs the span tokens in s in a single scan. It returns the
// offset of each matched opening token mapped to the offset of its closing
// token. Spans of the same name nest; spans of different names are matched
// independently.
func matchSpans(s string) map[int]int {
	closes := map[int]int{}
	open := map[string][]int{}

	for i := 0; i < len(s); {
		k := strings.IndexByte(s[i:], '{')
		if k < 0 {
			break
		}
		i += k

		j := i + 1
		for j < len(s) && s[j] != '{' && s[j] != '}' {
			j++
		}
		if j == len(s) {
			break
		}
		if s[j] == '{' {
			// Not a token. Start again from the next brace.
			i = j
			continue
		}

		body := s[i+1 : j]
		if name, ok := strings.CutPrefix(body, "/"); ok {
			if stack := open[name]; len(stack) > 0 {
				closes[stack[len(stack)-1]] = i
				open[name] = stack[:len(stack)-1]
			}
		} else if _, ok := wrappers[body]; ok {
			open[body] = append(open[body], i)
		}
		i = j + 1
	}
	return closes
}

// pass is a single rendering of a string.
type pass struct {
	r *Renderer
	s string

	// closes maps opening span token offsets to closing token offsets.
	closes map[int]int
}

// render writes the rendered form of s[lo:hi] to b. Each iteration consumes
// at least one byte and the output is never rescanned.
func (p *pass) render(b *strings.Builder, lo, hi int) {
	s := p.s
	for lo < hi {
		i := strings.IndexByte(s[lo:hi], '{')
		if i < 0 {
			b.WriteString(s[lo:hi])
			return
		}
		b.WriteString(s[lo : lo+i])
		lo += i

		j := strings.IndexByte(s[lo:hi], '}')
		if j < 0 {
			// Unterminated token.
			b.WriteString(s[lo:hi])
			return
		}
		j += lo

		body := s[lo+1 : j]
		if k := strings.LastIndexByte(body, '{'); k >= 0 {
			// A stray brace before the real token start.
			b.WriteString(s[lo : lo+1+k])
			lo += 1 + k
			continue
		}

		next := p.token(b, lo, j, hi)
		if next < 0 {
			b.WriteString(s[lo : j+1])
			lo = j + 1
			continue
		}
		lo = next
	}
}

// token writes the rendering of the token s[start:end+1]. hi bounds the
// text a span opened by the token may cover. It returns the offset after
// the consumed text, or -1 if the token was not recognized and nothing was
// written.
func (p *pass) token(b *strings.Builder, start, end, hi int) int {
	body := p.s[start+1 : end]
	name, argStr, hasArgs := strings.Cut(body, "|")
	var args []string
	if hasArgs {
		args = strings.Split(argStr, "|")
	}

	if !hasArgs {
		if s, ok := entities[name]; ok {
			b.WriteString(s)
			return end + 1
		}
		if w, ok := wrappers[name]; ok {
			return p.wrapped(b, name, w, start, end, hi)
		}
		return -1
	}

	r := p.r
	var (
		out string
		ok  bool
	)
	switch name {
	case "a_link":
		out, ok = r.autoLink(args)
	case "d_link":
		out, ok = r.directLink(args)
	case "i_link":
		out, ok = r.directLink(args)
		if ok {
			out = "<i>" + out + "</i>"
		}
	case "sx", "dxt":
		out, ok = r.crossRef(args)
	}
	if !ok {
		return -1
	}
	b.WriteString(out)
	return end + 1
}

// wrapped renders a span opened by the token name at s[start:end+1]. The
// span's content is rendered recursively. A span whose closing token is
// missing or lies beyond hi is not recognized.
func (p *pass) wrapped(b *strings.Builder, name string, w wrapper, start, end, hi int) int {
	closeAt, ok := p.closes[start]
	next := closeAt + len(name) + len("{/}")
	if !ok || next > hi {
		return -1
	}

	if name == "dx_def" && p.r.dxDef == Discard {
		return next
	}

	b.WriteString(w.open)
	p.render(b, end+1, closeAt)
	b.WriteString(w.close)
	return next
}

// autoLink renders {a_link|word}.
func (r *Renderer) autoLink(args []string) (string, bool) {
	if len(args) != 1 || !isSafe(args[0]) || args[0] == "" {
		return "", false
	}
	return r.anchor(args[0], small(upper(args[0]))), true
}

// directLink renders {d_link|text|target} and the link part of
// {i_link|text|target}.
func (r *Renderer) directLink(args []string) (string, bool) {
	if len(args) < 1 || len(args) > 2 {
		return "", false
	}
	text := args[0]
	target := ""
	if len(args) == 2 {
		target = args[1]
	}
	if text == "" || !isSafe(text) || !isSafe(target) {
		return "", false
	}
	if target == "" {
		target = text
	}
	return r.anchor(target, html.EscapeString(text)), true
}

// crossRef renders {sx|word|link|sense} and {dxt|word|link|sense}.
func (r *Renderer) crossRef(args []string) (string, bool) {
	if len(args) < 1 || len(args) > 3 {
		return "", false
	}
	for _, a := range args {
		if !isSafe(a) {
			return "", false
		}
	}

	word := args[0]
	if word == "" {
		return "", false
	}
	target := word
	if len(args) > 1 && args[1] != "" {
		target = args[1]
	}

	text := upper(word)
	if len(args) > 2 && args[2] != "" {
		text += " sense " + html.EscapeString(args[2])
	}
	return r.anchor(target, small(text)), true
}

// anchor returns a link to the word page for target with the given inner
// HTML. A "word:id" target links to the homograph's section of the page.
func (r *Renderer) anchor(target, inner string) string {
	word, id, hasID := strings.Cut(target, ":")
	href := r.baseURL + url.PathEscape(word)
	if hasID && id != "" {
		href += "#h" + url.PathEscape(id)
	}
	return `<a href="` + html.EscapeString(href) + `">` + inner + "</a>"
}

func small(s string) string {
	return `<span style="font-size:smaller">` + s + "</span>"
}

// upper returns the HTML escaped upper case form of s. Casers hold state so
// a new one is used for each call.
func upper(s string) string {
	return html.EscapeString(cases.Upper(language.Und).String(s))
}

// isSafe reports whether s only contains characters allowed in token
// arguments: letters, digits, space, hyphen, period and colon.
func isSafe(s string) bool {
	for _, c := range s {
		switch {
		case unicode.IsLetter(c), unicode.IsDigit(c):
		case c == ' ', c == '-', c == '.', c == ':':
		default:
			return false
		}
	}
	return true
}
