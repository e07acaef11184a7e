// Copyright 2024 The Deepdrop Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package deepdrop

// Node is the capability contract a tree node type must satisfy to be
// destroyed by Destroy or DestroyChildren. L is the link type through which
// nodes refer to their children: for a homogeneous tree it is the node's
// own pointer type (e.g. *treeNode implements Node[*treeNode]); for a
// heterogeneous tree it is an interface type implemented by every node
// type in the tree.
//
// A node owns zero or more ordered child slots, each either Present
// (holding an owned subtree) or Empty, plus one traversal-reserved
// location for the backlink. The backlink location is either a designated
// child slot (Binary and Chain reuse slot 0) or a dedicated field that
// never holds live tree data during destruction (Slots). The engine's
// entire explicit stack lives in these reserved locations, which is what
// makes the traversal allocation-free.
//
// Most implementations embed an adapter and only write FinalizeLeaf. Hand
// implementations must uphold:
//
//   - NextPresentChild never reports the backlink location.
//   - DetachChild is only defined for an index just reported by
//     NextPresentChild; adapters panic on anything else.
//   - StoreBacklink returns the child it displaced from a reused slot, if
//     any; the engine descends into a displaced child rather than dropping
//     it.
//   - TakeBacklink returns ok=false when no backlink is stored; for the
//     root of a destruction this is the "no parent" sentinel that
//     terminates the walk.
type Node[L any] interface {
	// NextPresentChild returns the lowest-ordered Present child slot, or
	// ok=false if the node is a leaf. It does not mutate the node.
	NextPresentChild() (i int, ok bool)

	// DetachChild removes and returns the subtree in slot i, leaving the
	// slot Empty. Slot i must be Present.
	DetachChild(i int) L

	// StoreBacklink writes parent into the traversal-reserved location and
	// returns the child that previously occupied it, if the location is a
	// reused slot that was still Present.
	StoreBacklink(parent L) (displaced L, hadChild bool)

	// TakeBacklink reads and clears the stored backlink. ok is false if no
	// backlink is stored, which for the engine means the node is the root
	// of the destruction.
	TakeBacklink() (parent L, ok bool)

	// FinalizeLeaf releases the node's own non-child resources. The engine
	// calls it exactly once per node, only once the node has no Present
	// child slots. It must not re-enter the engine for this tree.
	FinalizeLeaf()
}
