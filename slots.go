// Copyright 2024 The Deepdrop Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package deepdrop

import "github.com/treelib/deepdrop/internal/invariants"

// Slots supplies the Node contract methods for nodes with any number of
// ordered child slots. Unlike Binary and Chain it keeps the backlink in a
// dedicated field rather than reusing a slot: the slice may be sparsely
// populated or empty altogether, so no slot is guaranteed to be free when
// the engine arrives. The field holds no live tree data during traversal,
// which preserves the contract's storage rule.
type Slots[L any] struct {
	backlink Slot[L]
	slots    []Slot[L]
}

// Grow appends n Empty slots.
func (s *Slots[L]) Grow(n int) {
	s.slots = append(s.slots, make([]Slot[L], n)...)
}

// Append adds a new slot at the end, holding child.
func (s *Slots[L]) Append(child L) {
	var slot Slot[L]
	slot.Set(child)
	s.slots = append(s.slots, slot)
}

// SetChild stores child in slot i, which must be Empty.
func (s *Slots[L]) SetChild(i int, child L) {
	invariants.CheckBounds(i, len(s.slots))
	s.slots[i].Set(child)
}

// Child returns the child in slot i, if present.
func (s *Slots[L]) Child(i int) (L, bool) {
	invariants.CheckBounds(i, len(s.slots))
	return s.slots[i].Get()
}

// Len returns the number of slots, Empty ones included.
func (s *Slots[L]) Len() int {
	return len(s.slots)
}

// NextPresentChild implements Node, skipping Empty slots.
func (s *Slots[L]) NextPresentChild() (int, bool) {
	for i := range s.slots {
		if s.slots[i].HasChild() {
			return i, true
		}
	}
	return 0, false
}

// DetachChild implements Node.
func (s *Slots[L]) DetachChild(i int) L {
	invariants.CheckBounds(i, len(s.slots))
	return s.slots[i].Detach()
}

// StoreBacklink implements Node.
func (s *Slots[L]) StoreBacklink(parent L) (L, bool) {
	return s.backlink.StoreBacklink(parent)
}

// TakeBacklink implements Node.
func (s *Slots[L]) TakeBacklink() (L, bool) {
	return s.backlink.TakeBacklink()
}
