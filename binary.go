// Copyright 2024 The Deepdrop Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package deepdrop

import "github.com/treelib/deepdrop/internal/invariants"

// Slot indexes of Binary.
const (
	SlotLeft  = 0
	SlotRight = 1
)

// Binary supplies the child-slot storage and the Node contract methods for
// a binary tree node. Embed it in a node type and implement FinalizeLeaf:
//
//	type treeNode struct {
//	    deepdrop.Binary[*treeNode]
//	    buf []byte
//	}
//
//	func (n *treeNode) FinalizeLeaf() { n.buf = nil }
//
// The backlink physically reuses the left slot; Binary nodes carry no
// storage beyond their two child links.
type Binary[L any] struct {
	slots [2]Slot[L]
}

// SetLeft stores child in the left slot, which must be Empty.
func (b *Binary[L]) SetLeft(child L) { b.slots[SlotLeft].Set(child) }

// SetRight stores child in the right slot, which must be Empty.
func (b *Binary[L]) SetRight(child L) { b.slots[SlotRight].Set(child) }

// Left returns the left child, if present.
func (b *Binary[L]) Left() (L, bool) { return b.slots[SlotLeft].Get() }

// Right returns the right child, if present.
func (b *Binary[L]) Right() (L, bool) { return b.slots[SlotRight].Get() }

// NextPresentChild implements Node.
func (b *Binary[L]) NextPresentChild() (int, bool) {
	for i := range b.slots {
		if b.slots[i].HasChild() {
			return i, true
		}
	}
	return 0, false
}

// DetachChild implements Node.
func (b *Binary[L]) DetachChild(i int) L {
	invariants.CheckBounds(i, len(b.slots))
	return b.slots[i].Detach()
}

// StoreBacklink implements Node. The left slot is the reserved location;
// if it still held the left child, that child is displaced and returned.
func (b *Binary[L]) StoreBacklink(parent L) (L, bool) {
	return b.slots[SlotLeft].StoreBacklink(parent)
}

// TakeBacklink implements Node.
func (b *Binary[L]) TakeBacklink() (L, bool) {
	return b.slots[SlotLeft].TakeBacklink()
}
