// Copyright 2024 The Deepdrop Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package droptest

import (
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Parse builds a tree from a compact shape string, registering every node
// with tracker. The grammar is:
//
//	node := label | label '(' slot {',' slot} ')'
//	slot := node | '_'
//
// '_' is an explicitly Empty slot; slot order in the string is slot order
// in the node. Labels are runs of letters and digits. For example,
// "a(b(c(e,f),d),_)" is a three-level tree whose root has an Empty second
// slot.
//
// Intended for tests and debug input; errors are returned for malformed
// strings rather than panicking.
func Parse(tracker *Tracker, input string) (*Node, error) {
	p := parser{tracker: tracker, input: input}
	n, err := p.parseNode(nil)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(input) {
		return nil, errors.Errorf("trailing input %q in shape %q", input[p.pos:], input)
	}
	return n, nil
}

type parser struct {
	tracker *Tracker
	input   string
	pos     int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

// peek returns the next non-space byte without consuming it, or 0 at the
// end of the input.
func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) scanLabel() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		p.pos += size
	}
	return p.input[start:p.pos]
}

func (p *parser) parseNode(parent *Node) (*Node, error) {
	label := p.scanLabel()
	if label == "" {
		return nil, errors.Errorf("expected node label at offset %d in shape %q", p.pos, p.input)
	}
	n := NewNode(p.tracker, label, parent)
	if p.peek() != '(' {
		return n, nil
	}
	p.pos++
	for {
		if p.peek() == '_' {
			p.pos++
			n.Grow(1)
		} else if _, err := p.parseNode(n); err != nil {
			return nil, err
		}
		switch c := p.peek(); c {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return n, nil
		default:
			return nil, errors.Errorf("expected ',' or ')' at offset %d in shape %q", p.pos, p.input)
		}
	}
}
