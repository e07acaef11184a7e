// Copyright 2024 The Deepdrop Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package deepdrop

import (
	"github.com/cockroachdb/errors"
	"github.com/treelib/deepdrop/internal/invariants"
)

type slotKind uint8

const (
	slotEmpty slotKind = iota
	slotChild
	slotBacklink
)

// Slot is one ordered child position of a node, expressed as an explicit
// tagged union: it holds an owned subtree, a traversal backlink, or
// nothing. The zero value is an Empty slot. The adapters are built from
// Slots; custom node layouts can use them directly to implement Node.
type Slot[L any] struct {
	kind slotKind
	link L
}

// Set stores child in the slot. The slot must be Empty.
func (s *Slot[L]) Set(child L) {
	if s.kind != slotEmpty {
		panic(errors.AssertionFailedf("deepdrop: Set on an occupied slot"))
	}
	s.kind = slotChild
	s.link = child
}

// HasChild reports whether the slot is Present.
func (s *Slot[L]) HasChild() bool {
	return s.kind == slotChild
}

// Get returns the slot's child, if Present. It does not mutate the slot.
func (s *Slot[L]) Get() (child L, ok bool) {
	if s.kind != slotChild {
		var zero L
		return zero, false
	}
	return s.link, true
}

// Detach removes and returns the slot's child, leaving the slot Empty. The
// slot must be Present.
func (s *Slot[L]) Detach() L {
	if s.kind != slotChild {
		panic(errors.AssertionFailedf("deepdrop: Detach on a slot with no child"))
	}
	child := s.link
	*s = Slot[L]{}
	return child
}

// StoreBacklink overwrites the slot with a backlink to parent, returning
// the child it displaced, if the slot was Present. Storing over an
// existing backlink would lose a path to the root and is a contract
// violation.
func (s *Slot[L]) StoreBacklink(parent L) (displaced L, hadChild bool) {
	if invariants.Enabled && s.kind == slotBacklink {
		panic(errors.AssertionFailedf("deepdrop: backlink stored over a backlink"))
	}
	displaced, hadChild = s.link, s.kind == slotChild
	s.kind = slotBacklink
	s.link = parent
	return displaced, hadChild
}

// TakeBacklink reads and clears the slot's backlink. ok is false if the
// slot does not hold a backlink.
func (s *Slot[L]) TakeBacklink() (parent L, ok bool) {
	if s.kind != slotBacklink {
		if invariants.Enabled && s.kind == slotChild {
			// The engine only takes a backlink from a leaf; a Present slot
			// here means NextPresentChild skipped it.
			panic(errors.AssertionFailedf("deepdrop: TakeBacklink on a slot holding a child"))
		}
		var zero L
		return zero, false
	}
	parent = s.link
	*s = Slot[L]{}
	return parent, true
}
