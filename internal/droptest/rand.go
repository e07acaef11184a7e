// Copyright 2024 The Deepdrop Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package droptest

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// RandomTree returns a tree of numNodes nodes labeled n0..n<numNodes-1>,
// n0 the root, with each new node attached under a uniformly chosen
// existing node. About a quarter of the attachments are preceded by an
// extra Empty slot so that sparse slot handling is exercised.
func RandomTree(rng *rand.Rand, tracker *Tracker, numNodes int) *Node {
	root := NewNode(tracker, "n0", nil)
	nodes := make([]*Node, 1, numNodes)
	nodes[0] = root
	for i := 1; i < numNodes; i++ {
		parent := nodes[rng.Intn(len(nodes))]
		if rng.Intn(4) == 0 {
			parent.Grow(1)
		}
		n := NewNode(tracker, fmt.Sprintf("n%d", i), parent)
		nodes = append(nodes, n)
	}
	return root
}
