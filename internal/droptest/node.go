// Copyright 2024 The Deepdrop Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package droptest

import (
	"fmt"

	"github.com/treelib/deepdrop"
	"github.com/treelib/deepdrop/internal/invariants"
)

// Node is a labeled n-ary tree node. Finalization reports to the Tracker,
// if any, and is checked for exactly-once under invariant builds.
type Node struct {
	deepdrop.Slots[*Node]
	Label   string
	tracker *Tracker
	closed  invariants.CloseChecker
}

// NewNode returns a registered node appended as a new child of parent, or
// a root node if parent is nil. tracker may be nil (used by benchmarks,
// where verification overhead would dominate).
func NewNode(tracker *Tracker, label string, parent *Node) *Node {
	n := &Node{Label: label, tracker: tracker}
	if tracker != nil {
		parentLabel := ""
		if parent != nil {
			parentLabel = parent.Label
		}
		tracker.Register(label, parentLabel)
	}
	if parent != nil {
		parent.Append(n)
	}
	return n
}

// FinalizeLeaf implements deepdrop.Node.
func (n *Node) FinalizeLeaf() {
	n.closed.Close()
	if n.tracker != nil {
		n.tracker.Finalized(n.Label)
	}
}

// BuildChain returns a chain of n nodes labeled c0..c<n-1>, with c0 the
// root and each node the sole child of its predecessor. Construction is
// iterative; a chain this shape is the worst case for recursive teardown.
func BuildChain(tracker *Tracker, n int) *Node {
	root := NewNode(tracker, "c0", nil)
	cur := root
	for i := 1; i < n; i++ {
		cur = NewNode(tracker, fmt.Sprintf("c%d", i), cur)
	}
	return root
}

// BuildFan returns a complete binary tree of the given depth; depth 0 is a
// single leaf. The tree has 2^(depth+1)-1 nodes.
func BuildFan(tracker *Tracker, depth int) *Node {
	root := NewNode(tracker, "f0", nil)
	level := []*Node{root}
	id := 1
	for d := 0; d < depth; d++ {
		next := make([]*Node, 0, 2*len(level))
		for _, p := range level {
			for range 2 {
				c := NewNode(tracker, fmt.Sprintf("f%d", id), p)
				id++
				next = append(next, c)
			}
		}
		level = next
	}
	return root
}
