// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestATNConfigSetAddFirstConfigTracksUniqueAlt(t *testing.T) {
	s := NewATNConfigSet(false)
	jc := NewJoinCache()
	st := NewBasicState()
	st.SetStateNumber(1)

	changed := s.Add(NewATNConfig(st, 1, EmptyLocal), jc)
	assert.True(t, changed)
	assert.Equal(t, 1, s.UniqueAlt())
}

func TestATNConfigSetAddSecondAltInvalidatesUnique(t *testing.T) {
	s := NewATNConfigSet(false)
	jc := NewJoinCache()
	s1 := NewBasicState()
	s1.SetStateNumber(1)
	s2 := NewBasicState()
	s2.SetStateNumber(2)

	s.Add(NewATNConfig(s1, 1, EmptyLocal), jc)
	s.Add(NewATNConfig(s2, 2, EmptyLocal), jc)
	assert.Equal(t, invalidAltNumber, s.UniqueAlt())
}

func TestATNConfigSetAddSamePositionMergesContext(t *testing.T) {
	s := NewATNConfigSet(false)
	jc := NewJoinCache()
	st := NewBasicState()
	st.SetStateNumber(1)

	ctxA := EmptyLocal.getChild(10)
	ctxB := EmptyLocal.getChild(20)

	changed1 := s.Add(NewATNConfig(st, 1, ctxA), jc)
	changed2 := s.Add(NewATNConfig(st, 1, ctxB), jc)

	require.True(t, changed1)
	assert.True(t, changed2) // merge actually widened the context
	require.Equal(t, 1, s.Size())
	merged := s.Configs()[0]
	assert.Equal(t, 2, merged.Context.size())
}

func TestATNConfigSetAddDuplicateIsNoChange(t *testing.T) {
	s := NewATNConfigSet(false)
	jc := NewJoinCache()
	st := NewBasicState()
	st.SetStateNumber(1)
	ctx := EmptyLocal.getChild(10)

	s.Add(NewATNConfig(st, 1, ctx), jc)
	changed := s.Add(NewATNConfig(st, 1, ctx), jc)
	assert.False(t, changed)
	assert.Equal(t, 1, s.Size())
}

func TestATNConfigSetSealPreventsMutation(t *testing.T) {
	s := NewATNConfigSet(false)
	st := NewBasicState()
	st.SetStateNumber(1)
	s.Add(NewATNConfig(st, 1, EmptyLocal), NewJoinCache())
	s.Seal()

	assert.Panics(t, func() { s.Add(NewATNConfig(st, 2, EmptyLocal), NewJoinCache()) })
}

func TestATNConfigSetEqualsIgnoresOrderAndStateIdentityOfEqualPositions(t *testing.T) {
	s1State := NewBasicState()
	s1State.SetStateNumber(1)
	s2State := NewBasicState()
	s2State.SetStateNumber(2)

	a := NewATNConfigSet(false)
	a.Add(NewATNConfig(s1State, 1, EmptyLocal), NewJoinCache())
	a.Add(NewATNConfig(s2State, 2, EmptyLocal), NewJoinCache())
	a.Seal()

	b := NewATNConfigSet(false)
	b.Add(NewATNConfig(s2State, 2, EmptyLocal), NewJoinCache())
	b.Add(NewATNConfig(s1State, 1, EmptyLocal), NewJoinCache())
	b.Seal()

	assert.True(t, a.Equals(b))
}

func TestATNConfigSetGetRepresentedAlternativesIsOrdered(t *testing.T) {
	s := NewATNConfigSet(false)
	jc := NewJoinCache()
	for _, alt := range []int{3, 1, 2} {
		st := NewBasicState()
		st.SetStateNumber(alt)
		s.Add(NewATNConfig(st, alt, EmptyLocal), jc)
	}
	assert.Equal(t, []int{1, 2, 3}, s.GetRepresentedAlternatives().values())
}

func TestATNConfigSetSealOutermostDippingPanics(t *testing.T) {
	s := NewATNConfigSet(true)
	st := NewBasicState()
	st.SetStateNumber(1)
	c := NewATNConfig(st, 1, EmptyLocal)
	c.bumpOuterContextDepth()
	s.Add(c, NewJoinCache())
	s.OutermostConfigSet = true

	assert.Panics(t, func() { s.Seal() })
}
