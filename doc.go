// Copyright 2024 The Deepdrop Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package deepdrop destroys arbitrarily deep ownership trees without
// recursing and without allocating.
//
// Tearing down a linked structure by letting each node release its children
// in turn recurses to the depth of the structure. For balanced trees that is
// fine; for degenerate shapes (long chains, unbalanced trees built from
// adversarial input) the recursion depth is the node count, which overflows
// any bounded stack. Deepdrop walks the tree iteratively instead, and it
// borrows storage inside the nodes being destroyed for its bookkeeping, so
// the traversal needs no heap and only a constant amount of stack no matter
// how deep the tree is.
//
// A node type opts in by implementing the Node contract, usually by
// embedding one of the adapters (Binary, Chain, Slots) and supplying a
// FinalizeLeaf method that releases the node's own non-child resources:
//
//	type treeNode struct {
//	    deepdrop.Binary[*treeNode]
//	    f *os.File
//	}
//
//	func (n *treeNode) FinalizeLeaf() { _ = n.f.Close() }
//
// Destroy(root) then finalizes every node in the subtree exactly once, each
// node strictly after all of its children. A type whose Close method owns a
// child collection calls DestroyChildren(n) first, which reduces n to a
// leaf, and then releases its remaining fields as usual.
//
// The tree must be a strict ownership tree: every non-root node reachable
// from exactly one parent slot, no sharing, no cycles. During a call the
// engine leaves nodes in transient states that are not valid tree shapes,
// so no other code may observe the tree until the call returns; there is no
// internal locking because exclusive ownership is a precondition.
package deepdrop
