// Copyright 2024 The Deepdrop Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package deepdrop

import "github.com/treelib/deepdrop/internal/invariants"

// Chain supplies the Node contract methods for a singly linked chain node:
// a node with exactly one child slot holding the rest of the chain. The
// backlink reuses that slot, so during destruction the chain's links are
// reversed in place one hop at a time and no extra storage is needed even
// for a chain of millions of nodes.
type Chain[L any] struct {
	next Slot[L]
}

// SetNext stores child as the chain's tail, which must be Empty.
func (c *Chain[L]) SetNext(child L) { c.next.Set(child) }

// Next returns the chain's tail, if present.
func (c *Chain[L]) Next() (L, bool) { return c.next.Get() }

// NextPresentChild implements Node.
func (c *Chain[L]) NextPresentChild() (int, bool) {
	return 0, c.next.HasChild()
}

// DetachChild implements Node.
func (c *Chain[L]) DetachChild(i int) L {
	invariants.CheckBounds(i, 1)
	return c.next.Detach()
}

// StoreBacklink implements Node.
func (c *Chain[L]) StoreBacklink(parent L) (L, bool) {
	return c.next.StoreBacklink(parent)
}

// TakeBacklink implements Node.
func (c *Chain[L]) TakeBacklink() (L, bool) {
	return c.next.TakeBacklink()
}
