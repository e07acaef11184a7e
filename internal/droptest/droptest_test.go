// Copyright 2024 The Deepdrop Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package droptest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestParse(t *testing.T) {
	tracker := NewTracker()
	root, err := Parse(tracker, "a(b(c(e,f),d),_)")
	require.NoError(t, err)
	require.Equal(t, "a", root.Label)
	require.Equal(t, 2, root.Len())
	require.Equal(t, 6, tracker.Len())

	b, ok := root.Child(0)
	require.True(t, ok)
	require.Equal(t, "b", b.Label)
	_, ok = root.Child(1)
	require.False(t, ok)

	c, ok := b.Child(0)
	require.True(t, ok)
	require.Equal(t, "c", c.Label)
	require.Equal(t, 2, c.Len())
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"", "(", "a(b", "a(b,", "a)b", "a(b))"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(NewTracker(), input)
			require.Error(t, err)
		})
	}
}

func TestTrackerDuplicateLabel(t *testing.T) {
	tracker := NewTracker()
	tracker.Register("a", "")
	tracker.Register("a", "")
	tracker.Finalized("a")
	require.Error(t, tracker.Check())
}

func TestTrackerParentBeforeChildren(t *testing.T) {
	tracker := NewTracker()
	tracker.Register("a", "")
	tracker.Register("b", "a")
	tracker.Finalized("a")
	tracker.Finalized("b")
	err := tracker.Check()
	require.Error(t, err)
	require.Contains(t, err.Error(), "children still live")
}

func TestTrackerUnfinalized(t *testing.T) {
	tracker := NewTracker()
	tracker.Register("a", "")
	require.Error(t, tracker.Check())
}

func TestRandomTreeShape(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tracker := NewTracker()
	root := RandomTree(rng, tracker, 500)
	require.Equal(t, "n0", root.Label)
	require.Equal(t, 500, tracker.Len())
}
