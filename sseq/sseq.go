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

package sseq

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidSequence indicates that the sense sequence is not an array of
// groups.
var ErrInvalidSequence = errors.New("invalid sense sequence")

// Node tags.
const (
	TagSen   = "sen"
	TagSense = "sense"
	TagBS    = "bs"
	TagPSeq  = "pseq"
)

// Element tags.
const (
	TagText = "text"
	TagUns  = "uns"
)

// Node is a node in a sense group.
type Node interface {
	// Tag returns the node's tag.
	Tag() string
}

// Sen carries an explicit sense number that applies to the senses that
// follow it in the same group. It has no definition text of its own.
type Sen struct {
	SenseNumber string
}

// Tag implements [Node.Tag].
func (*Sen) Tag() string { return TagSen }

// Sense is a single numbered definition.
type Sense struct {
	// SenseNumber is the sense number as given. It may be empty.
	SenseNumber string

	// Definition is the ordered defining text.
	Definition []Element
}

// Tag implements [Node.Tag].
func (*Sense) Tag() string { return TagSense }

// BindingSense is a sense wrapped by a "bs" node.
type BindingSense struct {
	Sense *Sense
}

// Tag implements [Node.Tag].
func (*BindingSense) Tag() string { return TagBS }

// ParenSequence is a parenthesized sequence of senses.
type ParenSequence struct {
	Nodes []Node
}

// Tag implements [Node.Tag].
func (*ParenSequence) Tag() string { return TagPSeq }

// Unknown is a node that was not understood.
type Unknown struct {
	Name  string
	Value json.RawMessage
}

// Tag implements [Node.Tag].
func (u *Unknown) Tag() string { return u.Name }

// Element is an element of a sense's defining text.
type Element interface {
	// Tag returns the element's tag.
	Tag() string
}

// Text is defining text.
type Text struct {
	Text string
}

// Tag implements [Element.Tag].
func (*Text) Tag() string { return TagText }

// Uns is a usage note. Text holds the first text found inside the note and
// is empty if there was none.
type Uns struct {
	Text string
}

// Tag implements [Element.Tag].
func (*Uns) Tag() string { return TagUns }

// UnknownElement is an element that was not understood, such as a verbal
// illustration ("vis").
type UnknownElement struct {
	Name string
}

// Tag implements [Element.Tag].
func (u *UnknownElement) Tag() string { return u.Name }

// Group is a sense group.
type Group []Node

// Sequence is a decoded sense sequence.
type Sequence []Group

// Decode decodes a sense sequence. An error is returned only if raw is not
// an array. Groups that are not arrays are skipped.
func Decode(raw json.RawMessage) (Sequence, error) {
	var groups []json.RawMessage
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSequence, err)
	}

	seq := make(Sequence, 0, len(groups))
	for _, g := range groups {
		var pairs []json.RawMessage
		if err := json.Unmarshal(g, &pairs); err != nil {
			continue
		}
		group := make(Group, 0, len(pairs))
		for _, p := range pairs {
			group = append(group, decodeNode(p))
		}
		seq = append(seq, group)
	}
	return seq, nil
}

// decodeNode decodes a tagged node pair.
func decodeNode(raw json.RawMessage) Node {
	tag, value, ok := pair(raw)
	if !ok {
		return &Unknown{Value: raw}
	}

	switch tag {
	case TagSen:
		var sen struct {
			SN string `json:"sn"`
		}
		if err := json.Unmarshal(value, &sen); err == nil {
			return &Sen{SenseNumber: sen.SN}
		}
	case TagSense:
		if s, ok := decodeSense(value); ok {
			return s
		}
	case TagBS:
		var bs struct {
			Sense json.RawMessage `json:"sense"`
		}
		if err := json.Unmarshal(value, &bs); err == nil && len(bs.Sense) > 0 {
			if s, ok := decodeSense(bs.Sense); ok {
				return &BindingSense{Sense: s}
			}
		}
	case TagPSeq:
		var members []json.RawMessage
		if err := json.Unmarshal(value, &members); err == nil {
			p := &ParenSequence{}
			for _, m := range members {
				p.Nodes = append(p.Nodes, decodeNode(m))
			}
			return p
		}
	}

	return &Unknown{Name: tag, Value: value}
}

// decodeSense decodes a sense payload object.
func decodeSense(raw json.RawMessage) (*Sense, bool) {
	var payload struct {
		SN string            `json:"sn"`
		DT []json.RawMessage `json:"dt"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}
	// "null" decodes without error.
	if string(raw) == "null" {
		return nil, false
	}

	s := &Sense{SenseNumber: payload.SN}
	for _, e := range payload.DT {
		s.Definition = append(s.Definition, decodeElement(e))
	}
	return s, true
}

// decodeElement decodes a tagged defining text element.
func decodeElement(raw json.RawMessage) Element {
	tag, value, ok := pair(raw)
	if !ok {
		return &UnknownElement{}
	}

	switch tag {
	case TagText:
		var text string
		if err := json.Unmarshal(value, &text); err == nil {
			return &Text{Text: text}
		}
	case TagUns:
		return &Uns{Text: firstText(value)}
	}

	return &UnknownElement{Name: tag}
}

// firstText returns the first "text" element found one level inside a
// usage note. The payload is an array of arrays of pairs but bare pairs
// are accepted too.
func firstText(raw json.RawMessage) string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return ""
	}

	for _, item := range items {
		if text, ok := textPair(item); ok {
			return text
		}

		var pairs []json.RawMessage
		if err := json.Unmarshal(item, &pairs); err != nil {
			continue
		}
		for _, p := range pairs {
			if text, ok := textPair(p); ok {
				return text
			}
		}
	}
	return ""
}

// textPair returns the text of a ["text", "..."] pair.
func textPair(raw json.RawMessage) (string, bool) {
	tag, value, ok := pair(raw)
	if !ok || tag != TagText {
		return "", false
	}
	var text string
	if err := json.Unmarshal(value, &text); err != nil {
		return "", false
	}
	return text, true
}

// pair splits a [tag, value] pair.
func pair(raw json.RawMessage) (string, json.RawMessage, bool) {
	var p []json.RawMessage
	if err := json.Unmarshal(raw, &p); err != nil || len(p) != 2 {
		return "", nil, false
	}
	var tag string
	if err := json.Unmarshal(p[0], &tag); err != nil {
		return "", nil, false
	}
	return tag, p[1], true
}
