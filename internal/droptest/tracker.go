// Copyright 2024 The Deepdrop Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package droptest provides tree builders and verification support for
// exercising destruction: labeled n-ary test nodes, a compact shape
// parser, random tree generation, and a Tracker that checks the
// exactly-once and children-first finalization properties.
package droptest

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/swiss"
)

// Tracker records the order in which nodes are finalized and verifies the
// destruction properties: every registered node is finalized exactly once,
// and only after all of its children.
type Tracker struct {
	nodes swiss.Map[string, *nodeState]
	order []string
	errs  []error
}

type nodeState struct {
	parent           string
	children         int
	childrenFinished int
	finalized        bool
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	t := &Tracker{}
	t.nodes.Init(16)
	return t
}

// Register records a node and its parent ("" for the root). Labels must be
// unique within a Tracker; parents must be registered before their
// children.
func (t *Tracker) Register(label, parent string) {
	if _, ok := t.nodes.Get(label); ok {
		t.errs = append(t.errs, errors.Errorf("duplicate node label %q", label))
		return
	}
	t.nodes.Put(label, &nodeState{parent: parent})
	if parent != "" {
		ps, ok := t.nodes.Get(parent)
		if !ok {
			t.errs = append(t.errs, errors.Errorf("node %q registered before its parent %q", label, parent))
			return
		}
		ps.children++
	}
}

// Finalized records that the node with the given label was finalized.
func (t *Tracker) Finalized(label string) {
	s, ok := t.nodes.Get(label)
	if !ok {
		t.errs = append(t.errs, errors.Errorf("finalized unregistered node %q", label))
		return
	}
	if s.finalized {
		t.errs = append(t.errs, errors.Errorf("node %q finalized twice", label))
		return
	}
	if s.childrenFinished != s.children {
		t.errs = append(t.errs, errors.Errorf(
			"node %q finalized with %d of %d children still live",
			label, s.children-s.childrenFinished, s.children))
	}
	s.finalized = true
	t.order = append(t.order, label)
	if s.parent != "" {
		if ps, ok := t.nodes.Get(s.parent); ok {
			ps.childrenFinished++
		}
	}
}

// Order returns the labels in finalization order.
func (t *Tracker) Order() []string {
	return t.order
}

// Len returns the number of registered nodes.
func (t *Tracker) Len() int {
	return t.nodes.Len()
}

// Check returns an error if any property was violated, or if any
// registered node was never finalized.
func (t *Tracker) Check() error {
	var err error
	for _, e := range t.errs {
		err = errors.CombineErrors(err, e)
	}
	t.nodes.All(func(label string, s *nodeState) bool {
		if !s.finalized {
			err = errors.CombineErrors(err, errors.Errorf("node %q never finalized", label))
		}
		return true
	})
	return err
}
