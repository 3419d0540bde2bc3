// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeMapEmptyPutPromotesToSingleton(t *testing.T) {
	var m EdgeMap[string] = NewEdgeMap[string](-1, 255)
	assert.Equal(t, 0, m.Size())

	m = m.Put(65, "A")
	require.Equal(t, 1, m.Size())
	v, ok := m.Get(65)
	require.True(t, ok)
	assert.Equal(t, "A", v)
}

func TestEdgeMapSupportsNegativeKeys(t *testing.T) {
	// TokenEOF == -1 must be usable as an edge-map key (parser DFA edges).
	var m EdgeMap[string] = NewEdgeMap[string](-1, 10)
	m = m.Put(-1, "eof")
	v, ok := m.Get(-1)
	require.True(t, ok)
	assert.Equal(t, "eof", v)
}

func TestEdgeMapGrowsThroughVariants(t *testing.T) {
	var m EdgeMap[int] = NewEdgeMap[int](0, 1000)
	for i := 0; i < 50; i++ {
		m = m.Put(i*3, i)
	}
	assert.Equal(t, 50, m.Size())
	for i := 0; i < 50; i++ {
		v, ok := m.Get(i * 3)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	_, ok := m.Get(1)
	assert.False(t, ok)
}

func TestEdgeMapOutOfRangePutIsNoop(t *testing.T) {
	var m EdgeMap[int] = NewEdgeMap[int](0, 10)
	before := m
	m = m.Put(100, 1)
	assert.Equal(t, before, m)
}

func TestEdgeMapRemoveRestoresEquivalentMap(t *testing.T) {
	// §8 property: add-then-remove must restore an equal map.
	var m EdgeMap[int] = NewEdgeMap[int](0, 100)
	empty := m
	m = m.Put(5, 1)
	m = m.Remove(5)
	assert.Equal(t, empty.ToMap(), m.ToMap())
}

func TestEdgeMapPutAllMerges(t *testing.T) {
	var a EdgeMap[int] = NewEdgeMap[int](0, 100)
	a = a.Put(1, 10).Put(2, 20)
	var b EdgeMap[int] = NewEdgeMap[int](0, 100)
	b = b.Put(2, 99).Put(3, 30)

	merged := a.PutAll(b)
	assert.Equal(t, map[int]int{1: 10, 2: 99, 3: 30}, merged.ToMap())
	// receivers untouched
	assert.Equal(t, map[int]int{1: 10, 2: 20}, a.ToMap())
}

func TestEdgeMapClearEmptiesButKeepsBounds(t *testing.T) {
	var m EdgeMap[int] = NewEdgeMap[int](0, 10)
	m = m.Put(1, 1).Put(2, 2)
	m = m.Clear()
	assert.Equal(t, 0, m.Size())
	assert.Equal(t, 0, m.Min())
	assert.Equal(t, 10, m.Max())
}

func TestEdgeMapArrayVariantDenseRange(t *testing.T) {
	var m EdgeMap[bool] = NewEdgeMap[bool](0, 7)
	for i := 0; i <= 7; i++ {
		m = m.Put(i, true)
	}
	assert.Equal(t, 8, m.Size())
	for i := 0; i <= 7; i++ {
		v, ok := m.Get(i)
		require.True(t, ok)
		assert.True(t, v)
	}
}
