// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectConflictNoneWhenUniqueAlt(t *testing.T) {
	s := NewATNConfigSet(false)
	jc := NewJoinCache()
	st := NewBasicState()
	st.SetStateNumber(1)
	s.Add(NewATNConfig(st, 1, EmptyLocal), jc)

	assert.Nil(t, detectConflict(s, true))
}

func TestDetectConflictFlagsEqualContextsAtSameState(t *testing.T) {
	s := NewATNConfigSet(false)
	jc := NewJoinCache()
	st1 := NewBasicState()
	st1.SetStateNumber(1)
	st2 := NewBasicState()
	st2.SetStateNumber(2)

	// Two alts land on the SAME state (st1) with structurally equal contexts:
	// a genuine conflict. A third alt at a different state never conflicts.
	s.Add(NewATNConfig(st1, 1, EmptyLocal), jc)
	s.Add(NewATNConfig(st1, 2, EmptyLocal), jc)
	s.Add(NewATNConfig(st2, 3, EmptyLocal), jc)

	info := detectConflict(s, true)
	require.NotNil(t, info)
	assert.True(t, info.AltBitset.contains(1))
	assert.True(t, info.AltBitset.contains(2))
	assert.False(t, info.AltBitset.contains(3))
}

func TestDetectConflictSkipsExactClassificationWhenDisabled(t *testing.T) {
	s := NewATNConfigSet(false)
	jc := NewJoinCache()
	st := NewBasicState()
	st.SetStateNumber(1)
	s.Add(NewATNConfig(st, 1, EmptyLocal), jc)
	s.Add(NewATNConfig(st, 2, EmptyLocal), jc)

	// This conflict's contexts are identical, so isExactConflict would report
	// true; with detection disabled, it must never even be consulted.
	info := detectConflict(s, false)
	require.NotNil(t, info)
	assert.False(t, info.Exact)
}

func TestDetectConflictNoneWhenContextsDiffer(t *testing.T) {
	s := NewATNConfigSet(false)
	jc := NewJoinCache()
	st := NewBasicState()
	st.SetStateNumber(1)

	s.Add(NewATNConfig(st, 1, EmptyLocal.getChild(10)), jc)
	s.Add(NewATNConfig(st, 2, EmptyLocal.getChild(20)), jc)

	assert.Nil(t, detectConflict(s, true))
}

func TestIsExactConflictTrueWhenContextUnionsMatch(t *testing.T) {
	s := NewATNConfigSet(false)
	jc := NewJoinCache()
	st := NewBasicState()
	st.SetStateNumber(1)
	s.Add(NewATNConfig(st, 1, EmptyLocal), jc)
	s.Add(NewATNConfig(st, 2, EmptyLocal), jc)

	conflicting := newBitSet()
	conflicting.add(1)
	conflicting.add(2)
	assert.True(t, isExactConflict(s, conflicting))
}

func TestIsExactConflictFalseWhenOneAltHasExtraContext(t *testing.T) {
	s := NewATNConfigSet(false)
	jc := NewJoinCache()
	st1 := NewBasicState()
	st1.SetStateNumber(1)
	st2 := NewBasicState()
	st2.SetStateNumber(2)

	s.Add(NewATNConfig(st1, 1, EmptyLocal), jc)
	s.Add(NewATNConfig(st1, 2, EmptyLocal), jc)
	s.Add(NewATNConfig(st2, 1, EmptyLocal.getChild(5)), jc) // alt 1 has an extra path alt 2 lacks

	conflicting := newBitSet()
	conflicting.add(1)
	conflicting.add(2)
	assert.False(t, isExactConflict(s, conflicting))
}

func TestResolveToMinAltPicksLowest(t *testing.T) {
	alts := newBitSet()
	alts.add(3)
	alts.add(1)
	alts.add(2)
	assert.Equal(t, 1, resolveToMinAlt(alts))
}

func TestResolveToMinAltInvalidOnEmpty(t *testing.T) {
	assert.Equal(t, invalidAltNumber, resolveToMinAlt(newBitSet()))
}
