// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictionContextEmptyTerminatorsAreDistinct(t *testing.T) {
	assert.True(t, EmptyLocal.isEmpty())
	assert.True(t, EmptyFull.isEmpty())
	assert.False(t, EmptyLocal.equals(EmptyFull))
}

func TestPredictionContextGetChildAndEquals(t *testing.T) {
	a := EmptyLocal.getChild(5)
	b := EmptyLocal.getChild(5)
	require.False(t, a == b) // distinct allocations
	assert.True(t, a.equals(b))

	c := EmptyLocal.getChild(6)
	assert.False(t, a.equals(c))
}

func TestJoinIdenticalParentsReturnsSameReturnStateMergedOnce(t *testing.T) {
	jc := NewJoinCache()
	parent := EmptyLocal.getChild(1)
	a := parent.getChild(10)
	b := parent.getChild(10)

	merged := jc.Join(a, b)
	assert.True(t, merged.equals(a))
}

func TestJoinDivergentReturnStatesProducesArrayContext(t *testing.T) {
	jc := NewJoinCache()
	parent := EmptyLocal.getChild(1)
	a := parent.getChild(10)
	b := parent.getChild(20)

	merged := jc.Join(a, b)
	require.Equal(t, 2, merged.size())
	assert.Equal(t, []int{10, 20}, merged.returnStates)
}

func TestJoinWithEmptyLocalAbsorbs(t *testing.T) {
	jc := NewJoinCache()
	a := EmptyLocal.getChild(1)
	merged := jc.Join(a, EmptyLocal)
	assert.Same(t, EmptyLocal, merged)
}

func TestJoinWithEmptyFullInsertsEmptyAlternative(t *testing.T) {
	jc := NewJoinCache()
	a := EmptyFull.getChild(1)
	merged := jc.Join(a, EmptyFull)
	assert.True(t, merged.hasEmpty())
	idx := merged.findReturnState(EmptyReturnState)
	require.GreaterOrEqual(t, idx, 0)
}

func TestJoinIsCommutative(t *testing.T) {
	jc := NewJoinCache()
	parent := EmptyLocal.getChild(1)
	a := parent.getChild(10)
	b := parent.getChild(20)

	ab := jc.Join(a, b)
	ba := jc.Join(b, a)
	assert.True(t, ab.equals(ba))
}

func TestAppendContextReplacesFullEmptyTerminatorOnly(t *testing.T) {
	suffix := EmptyLocal.getChild(99)

	full := EmptyFull.getChild(1)
	appended := AppendContext(full, suffix, map[*PredictionContext]*PredictionContext{})
	assert.True(t, appended.getParent(0).equals(suffix))

	local := EmptyLocal.getChild(1)
	appendedLocal := AppendContext(local, suffix, map[*PredictionContext]*PredictionContext{})
	assert.Same(t, EmptyLocal, appendedLocal.getParent(0))
}

func TestContextCoversIsConservative(t *testing.T) {
	parent := EmptyLocal.getChild(1)
	wide := parent.getChild(10)
	narrow := EmptyLocal.getChild(10)

	// wide and narrow share a return state but wide's parent carries more
	// history; covers must not claim containment it cannot prove.
	assert.False(t, narrow.covers(wide))
	assert.True(t, wide.covers(wide))
}

func TestPredictionContextCacheInterns(t *testing.T) {
	pcc := NewPredictionContextCache()
	parent := EmptyLocal.getChild(1)
	a := parent.getChild(10)
	b := EmptyLocal.getChild(1).getChild(10) // structurally equal, different allocation

	ca := pcc.GetCachedContext(a, map[*PredictionContext]*PredictionContext{})
	cb := pcc.GetCachedContext(b, map[*PredictionContext]*PredictionContext{})
	assert.Same(t, ca, cb)
}

func TestFromRuleContextEmptyYieldsCorrectTerminator(t *testing.T) {
	assert.Same(t, EmptyLocal, FromRuleContext(nil, nil, false))
	assert.Same(t, EmptyFull, FromRuleContext(nil, nil, true))
}
