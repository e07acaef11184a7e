// Copyright 2024 The Deepdrop Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package deepdrop

// Destroy finalizes every node in the subtree rooted at root, root
// included, in post-order: a node is finalized only once all of its
// children have been. The walk is iterative and uses the nodes' own
// reserved storage for its stack, so neither stack growth nor heap use
// depends on the depth of the tree.
//
// Destroy takes ownership of root; the subtree must not be observed by any
// other code during or after the call.
func Destroy[L Node[L]](root L) {
	destroySubtree(root)
}

// DestroyChildren detaches and destroys every child subtree of n, leaving
// n a live leaf. n itself is not finalized. It is meant to be called from
// n's own cleanup step (a Close method or similar), once per owned child
// collection, before the rest of n's fields are released: by the time the
// ordinary shallow cleanup runs, the node has no children left to recurse
// into.
func DestroyChildren[L Node[L]](n L) {
	for {
		i, ok := n.NextPresentChild()
		if !ok {
			return
		}
		destroySubtree(n.DetachChild(i))
	}
}

// destroySubtree runs the cursor loop. The whole traversal state is the
// cursor itself plus the backlinks threaded through the nodes: following
// backlinks from the cursor reproduces the path back to root, so no
// separate stack is needed.
//
// Each iteration either empties one Present slot (detach or displacement,
// moving ownership without destroying anything) or finalizes one node.
// Both counts are finite and never increase, so the loop terminates.
func destroySubtree[L Node[L]](root L) {
	cursor := root
	for {
		if i, ok := cursor.NextPresentChild(); ok {
			child := cursor.DetachChild(i)
			// Thread the backlink through the child. If the child's
			// reserved slot still held a subtree, the displaced child is
			// just its next unvisited child: keep descending through the
			// displaced links until one stores cleanly.
			for {
				displaced, hadChild := child.StoreBacklink(cursor)
				if !hadChild {
					break
				}
				cursor, child = child, displaced
			}
			cursor = child
			continue
		}
		// cursor is a leaf: finalize it and resume its parent. A missing
		// backlink means cursor is root and the subtree is fully destroyed.
		cursor.FinalizeLeaf()
		parent, ok := cursor.TakeBacklink()
		if !ok {
			return
		}
		cursor = parent
	}
}
