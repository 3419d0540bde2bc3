// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalSetAddRangeMergesAdjacent(t *testing.T) {
	s := NewIntervalSet()
	s.addRange(1, 3)
	s.addRange(4, 6)
	require.Len(t, s.Intervals(), 1)
	assert.Equal(t, Interval{1, 6}, s.Intervals()[0])
}

func TestIntervalSetAddRangeKeepsDisjointSorted(t *testing.T) {
	s := NewIntervalSet()
	s.addRange(10, 12)
	s.addRange(1, 3)
	s.addRange(20, 20)
	require.Len(t, s.Intervals(), 3)
	assert.Equal(t, Interval{1, 3}, s.Intervals()[0])
	assert.Equal(t, Interval{10, 12}, s.Intervals()[1])
	assert.Equal(t, Interval{20, 20}, s.Intervals()[2])
}

func TestIntervalSetAddRangeAbsorbsOverlapChain(t *testing.T) {
	s := NewIntervalSet()
	s.addRange(1, 2)
	s.addRange(5, 6)
	s.addRange(9, 10)
	s.addRange(0, 11) // swallows everything
	require.Len(t, s.Intervals(), 1)
	assert.Equal(t, Interval{0, 11}, s.Intervals()[0])
}

func TestIntervalSetContains(t *testing.T) {
	s := NewIntervalSetFromRanges(1, 3, 10, 12)
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(12))
	assert.False(t, s.Contains(0))
	assert.False(t, s.Contains(4))
	assert.False(t, s.Contains(13))
}

func TestIntervalSetRemoveOneSplits(t *testing.T) {
	s := NewIntervalSetFromRanges(1, 10)
	s.removeOne(5)
	require.Len(t, s.Intervals(), 2)
	assert.Equal(t, Interval{1, 4}, s.Intervals()[0])
	assert.Equal(t, Interval{6, 10}, s.Intervals()[1])
}

func TestIntervalSetRemoveOneEndpoints(t *testing.T) {
	s := NewIntervalSetFromRanges(1, 3)
	s.removeOne(1)
	assert.Equal(t, Interval{2, 3}, s.Intervals()[0])
	s.removeOne(3)
	assert.Equal(t, Interval{2, 2}, s.Intervals()[0])
	s.removeOne(2)
	assert.True(t, s.IsEmpty())
}

func TestIntervalSetLen(t *testing.T) {
	s := NewIntervalSetFromRanges(1, 3, 10, 10)
	assert.Equal(t, 4, s.Len())
}

func TestIntervalSetReadOnlyPanics(t *testing.T) {
	s := NewIntervalSetFromRanges(1, 3)
	s.readOnly = true
	assert.Panics(t, func() { s.AddOne(4) })
}

func TestIntervalSetAddSet(t *testing.T) {
	a := NewIntervalSetFromRanges(1, 3)
	b := NewIntervalSetFromRanges(5, 7)
	a.addSet(b)
	require.Len(t, a.Intervals(), 2)
	assert.Equal(t, Interval{1, 3}, a.Intervals()[0])
	assert.Equal(t, Interval{5, 7}, a.Intervals()[1])
}
