// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import "golang.org/x/exp/slices"

// EdgeMap is an immutable, copy-on-write map from a bounded integer key range
// [min,max] to T (§4.4). Every mutating operation returns a new EdgeMap; the
// receiver is left untouched so a concurrent reader holding it never observes a
// partial write (§5).
type EdgeMap[T any] interface {
	Min() int
	Max() int
	Get(key int) (T, bool)
	Put(key int, val T) EdgeMap[T]
	Remove(key int) EdgeMap[T]
	Size() int
	ToMap() map[int]T
	Clear() EdgeMap[T]
	PutAll(other EdgeMap[T]) EdgeMap[T]
}

// NewEdgeMap returns an empty map over [min,max].
func NewEdgeMap[T any](min, max int) EdgeMap[T] {
	return emptyEdgeMap[T]{min: min, max: max}
}

// --- empty -------------------------------------------------------------------

type emptyEdgeMap[T any] struct{ min, max int }

func (e emptyEdgeMap[T]) Min() int { return e.min }
func (e emptyEdgeMap[T]) Max() int { return e.max }
func (e emptyEdgeMap[T]) Get(int) (T, bool) {
	var zero T
	return zero, false
}
func (e emptyEdgeMap[T]) Put(key int, val T) EdgeMap[T] {
	if key < e.min || key > e.max {
		return e
	}
	return singletonEdgeMap[T]{min: e.min, max: e.max, key: key, val: val}
}
func (e emptyEdgeMap[T]) Remove(int) EdgeMap[T]  { return e }
func (e emptyEdgeMap[T]) Size() int              { return 0 }
func (e emptyEdgeMap[T]) ToMap() map[int]T       { return map[int]T{} }
func (e emptyEdgeMap[T]) Clear() EdgeMap[T]      { return e }
func (e emptyEdgeMap[T]) PutAll(other EdgeMap[T]) EdgeMap[T] {
	return rebuild[T](e.min, e.max, other.ToMap())
}

// --- singleton -----------------------------------------------------------

type singletonEdgeMap[T any] struct {
	min, max, key int
	val           T
}

func (s singletonEdgeMap[T]) Min() int { return s.min }
func (s singletonEdgeMap[T]) Max() int { return s.max }
func (s singletonEdgeMap[T]) Get(key int) (T, bool) {
	if key == s.key {
		return s.val, true
	}
	var zero T
	return zero, false
}
func (s singletonEdgeMap[T]) Put(key int, val T) EdgeMap[T] {
	if key < s.min || key > s.max {
		return s
	}
	if key == s.key {
		return singletonEdgeMap[T]{s.min, s.max, key, val}
	}
	sp := newSparseEdgeMap[T](s.min, s.max, 4)
	sp = sp.Put(s.key, s.val).(sparseEdgeMap[T])
	return sp.Put(key, val)
}
func (s singletonEdgeMap[T]) Remove(key int) EdgeMap[T] {
	if key == s.key {
		return emptyEdgeMap[T]{s.min, s.max}
	}
	return s
}
func (s singletonEdgeMap[T]) Size() int { return 1 }
func (s singletonEdgeMap[T]) ToMap() map[int]T {
	return map[int]T{s.key: s.val}
}
func (s singletonEdgeMap[T]) Clear() EdgeMap[T] { return emptyEdgeMap[T]{s.min, s.max} }
func (s singletonEdgeMap[T]) PutAll(other EdgeMap[T]) EdgeMap[T] {
	m := other.ToMap()
	m[s.key] = s.val
	return rebuild[T](s.min, s.max, m)
}

// --- sparse (open-addressed, power-of-two capacity) -----------------------

type sparseEdgeMap[T any] struct {
	min, max int
	capacity int
	keys     []int
	vals     []T
	present  []bool
	size     int
}

func newSparseEdgeMap[T any](min, max, capacity int) sparseEdgeMap[T] {
	return sparseEdgeMap[T]{
		min: min, max: max, capacity: capacity,
		keys: make([]int, capacity), vals: make([]T, capacity), present: make([]bool, capacity),
	}
}

func (s sparseEdgeMap[T]) Min() int { return s.min }
func (s sparseEdgeMap[T]) Max() int { return s.max }

func (s sparseEdgeMap[T]) slot(key int) int {
	return int(uint(key-s.min)) & (s.capacity - 1)
}

func (s sparseEdgeMap[T]) Get(key int) (T, bool) {
	var zero T
	if key < s.min || key > s.max {
		return zero, false
	}
	idx := s.slot(key)
	for probes := 0; probes < s.capacity; probes++ {
		i := (idx + probes) & (s.capacity - 1)
		if !s.present[i] {
			return zero, false
		}
		if s.keys[i] == key {
			return s.vals[i], true
		}
	}
	return zero, false
}

// symbolSpan is the width of the map's legal key range, used to decide when a
// growing sparse map should convert to a dense array instead (§4.4).
func (s sparseEdgeMap[T]) symbolSpan() int { return s.max - s.min + 1 }

func (s sparseEdgeMap[T]) Put(key int, val T) EdgeMap[T] {
	if key < s.min || key > s.max {
		return s
	}
	if _, ok := s.Get(key); !ok && (s.size+1)*2 > s.capacity {
		projected := s.capacity * 2
		if projected >= s.symbolSpan()/2 && s.symbolSpan() > 0 {
			arr := newArrayEdgeMap[T](s.min, s.max)
			m := arr.PutAll(s)
			return m.Put(key, val)
		}
		grown := newSparseEdgeMap[T](s.min, s.max, projected)
		var out EdgeMap[T] = grown
		for i, present := range s.present {
			if present {
				out = out.Put(s.keys[i], s.vals[i])
			}
		}
		return out.Put(key, val)
	}
	clone := sparseEdgeMap[T]{
		min: s.min, max: s.max, capacity: s.capacity,
		keys: slices.Clone(s.keys), vals: slices.Clone(s.vals), present: slices.Clone(s.present),
		size: s.size,
	}
	idx := clone.slot(key)
	for probes := 0; probes < clone.capacity; probes++ {
		i := (idx + probes) & (clone.capacity - 1)
		if !clone.present[i] {
			clone.present[i] = true
			clone.keys[i] = key
			clone.vals[i] = val
			clone.size++
			return clone
		}
		if clone.keys[i] == key {
			clone.vals[i] = val
			return clone
		}
	}
	// Table is saturated despite the load-factor check above (pathological
	// probe sequence); fall back to a dense array rather than loop forever.
	arr := newArrayEdgeMap[T](s.min, s.max)
	return arr.PutAll(s).Put(key, val)
}

func (s sparseEdgeMap[T]) Remove(key int) EdgeMap[T] {
	if _, ok := s.Get(key); !ok {
		return s
	}
	m := s.ToMap()
	delete(m, key)
	return rebuild[T](s.min, s.max, m)
}

func (s sparseEdgeMap[T]) Size() int { return s.size }

func (s sparseEdgeMap[T]) ToMap() map[int]T {
	m := make(map[int]T, s.size)
	for i, present := range s.present {
		if present {
			m[s.keys[i]] = s.vals[i]
		}
	}
	return m
}
func (s sparseEdgeMap[T]) Clear() EdgeMap[T] { return emptyEdgeMap[T]{s.min, s.max} }
func (s sparseEdgeMap[T]) PutAll(other EdgeMap[T]) EdgeMap[T] {
	var out EdgeMap[T] = s
	for k, v := range other.ToMap() {
		out = out.Put(k, v)
	}
	return out
}

// --- array (dense) ---------------------------------------------------------

type arrayEdgeMap[T any] struct {
	min, max int
	vals     []T
	present  []bool
	size     int
}

func newArrayEdgeMap[T any](min, max int) arrayEdgeMap[T] {
	n := max - min + 1
	if n < 0 {
		n = 0
	}
	return arrayEdgeMap[T]{min: min, max: max, vals: make([]T, n), present: make([]bool, n)}
}

func (a arrayEdgeMap[T]) Min() int { return a.min }
func (a arrayEdgeMap[T]) Max() int { return a.max }
func (a arrayEdgeMap[T]) Get(key int) (T, bool) {
	var zero T
	if key < a.min || key > a.max || !a.present[key-a.min] {
		return zero, false
	}
	return a.vals[key-a.min], true
}
func (a arrayEdgeMap[T]) Put(key int, val T) EdgeMap[T] {
	if key < a.min || key > a.max {
		return a
	}
	clone := arrayEdgeMap[T]{min: a.min, max: a.max, vals: slices.Clone(a.vals), present: slices.Clone(a.present), size: a.size}
	idx := key - a.min
	if !clone.present[idx] {
		clone.size++
	}
	clone.present[idx] = true
	clone.vals[idx] = val
	return clone
}
func (a arrayEdgeMap[T]) Remove(key int) EdgeMap[T] {
	if key < a.min || key > a.max || !a.present[key-a.min] {
		return a
	}
	clone := arrayEdgeMap[T]{min: a.min, max: a.max, vals: slices.Clone(a.vals), present: slices.Clone(a.present), size: a.size - 1}
	var zero T
	clone.present[key-a.min] = false
	clone.vals[key-a.min] = zero
	return clone
}
func (a arrayEdgeMap[T]) Size() int { return a.size }
func (a arrayEdgeMap[T]) ToMap() map[int]T {
	m := make(map[int]T, a.size)
	for i, present := range a.present {
		if present {
			m[a.min+i] = a.vals[i]
		}
	}
	return m
}
func (a arrayEdgeMap[T]) Clear() EdgeMap[T] { return emptyEdgeMap[T]{a.min, a.max} }
func (a arrayEdgeMap[T]) PutAll(other EdgeMap[T]) EdgeMap[T] {
	var out EdgeMap[T] = a
	for k, v := range other.ToMap() {
		out = out.Put(k, v)
	}
	return out
}

// rebuild deterministically reconstructs the smallest-fitting variant from a
// plain map, inserting keys in ascending order so the result depends only on
// the current key/value content, never on how it was reached (§8 property 7:
// add-then-remove must restore an equal map).
func rebuild[T any](min, max int, entries map[int]T) EdgeMap[T] {
	keys := make([]int, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var out EdgeMap[T] = emptyEdgeMap[T]{min, max}
	for _, k := range keys {
		out = out.Put(k, entries[k])
	}
	return out
}
