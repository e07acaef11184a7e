// Copyright 2024 The Deepdrop Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package deepdrop

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type intNode struct {
	Slots[*intNode]
	v int
}

func (n *intNode) FinalizeLeaf() {}

func TestSlotTransitions(t *testing.T) {
	var s Slot[*intNode]
	require.False(t, s.HasChild())
	_, ok := s.Get()
	require.False(t, ok)
	_, ok = s.TakeBacklink()
	require.False(t, ok)

	child := &intNode{v: 1}
	s.Set(child)
	require.True(t, s.HasChild())
	got, ok := s.Get()
	require.True(t, ok)
	require.Same(t, child, got)

	// A second Set is a contract violation.
	require.Panics(t, func() { s.Set(&intNode{}) })

	require.Same(t, child, s.Detach())
	require.False(t, s.HasChild())
	require.Panics(t, func() { s.Detach() })
}

func TestSlotBacklink(t *testing.T) {
	parent := &intNode{v: 1}
	child := &intNode{v: 2}

	// Storing into an Empty slot displaces nothing.
	var s Slot[*intNode]
	_, hadChild := s.StoreBacklink(parent)
	require.False(t, hadChild)
	require.False(t, s.HasChild())
	back, ok := s.TakeBacklink()
	require.True(t, ok)
	require.Same(t, parent, back)
	_, ok = s.TakeBacklink()
	require.False(t, ok)

	// Storing into a Present slot hands back the displaced child, and the
	// slot no longer reports it: ownership moved to the caller.
	s.Set(child)
	displaced, hadChild := s.StoreBacklink(parent)
	require.True(t, hadChild)
	require.Same(t, child, displaced)
	require.False(t, s.HasChild())
}

func TestSlotsSparse(t *testing.T) {
	var n intNode
	n.Grow(3)
	c := &intNode{v: 7}
	n.SetChild(1, c)

	// The Empty slot 0 is skipped.
	i, ok := n.NextPresentChild()
	require.True(t, ok)
	require.Equal(t, 1, i)
	require.Same(t, c, n.DetachChild(1))
	_, ok = n.NextPresentChild()
	require.False(t, ok)
}

func TestSlotsZeroCapacity(t *testing.T) {
	// A node with no slots at all still stores a backlink: Slots keeps it
	// in a dedicated field.
	var n intNode
	parent := &intNode{v: 1}
	_, hadChild := n.StoreBacklink(parent)
	require.False(t, hadChild)
	back, ok := n.TakeBacklink()
	require.True(t, ok)
	require.Same(t, parent, back)
}

func TestBinaryAccessors(t *testing.T) {
	var n Binary[*intNode]
	_, ok := n.Left()
	require.False(t, ok)
	l, r := &intNode{v: 1}, &intNode{v: 2}
	n.SetLeft(l)
	n.SetRight(r)

	i, ok := n.NextPresentChild()
	require.True(t, ok)
	require.Equal(t, SlotLeft, i)
	require.Same(t, l, n.DetachChild(SlotLeft))

	i, ok = n.NextPresentChild()
	require.True(t, ok)
	require.Equal(t, SlotRight, i)
	got, ok := n.Right()
	require.True(t, ok)
	require.Same(t, r, got)
}

func TestChainAccessors(t *testing.T) {
	var n Chain[*intNode]
	_, ok := n.NextPresentChild()
	require.False(t, ok)
	c := &intNode{v: 3}
	n.SetNext(c)
	i, ok := n.NextPresentChild()
	require.True(t, ok)
	require.Equal(t, 0, i)
	got, ok := n.Next()
	require.True(t, ok)
	require.Same(t, c, got)
	require.Same(t, c, n.DetachChild(0))
}
