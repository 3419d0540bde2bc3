// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import (
	"fmt"
	"sort"
	"strings"
)

// Interval is an inclusive [start, stop] range of symbol codes.
type Interval struct {
	Start, Stop int
}

func (i Interval) length() int { return i.Stop - i.Start + 1 }

// IntervalSet is a sorted, non-overlapping, non-adjacent list of Intervals. It
// backs range/set transitions (§3) and the token sets NextTokens/getExpectedTokens
// compute.
type IntervalSet struct {
	intervals []Interval
	readOnly  bool
}

// NewIntervalSet returns an empty set.
func NewIntervalSet() *IntervalSet {
	return &IntervalSet{}
}

// NewIntervalSetFromRanges builds a set from a flat list of (start, stop) pairs.
func NewIntervalSetFromRanges(pairs ...int) *IntervalSet {
	s := NewIntervalSet()
	for i := 0; i+1 < len(pairs); i += 2 {
		s.addRange(pairs[i], pairs[i+1])
	}
	return s
}

func (s *IntervalSet) checkWritable() {
	if s.readOnly {
		panic("IllegalState: IntervalSet is read-only")
	}
}

// AddOne inserts a single symbol.
func (s *IntervalSet) AddOne(v int) {
	s.addRange(v, v)
}

func (s *IntervalSet) addRange(start, stop int) {
	s.checkWritable()
	if stop < start {
		return
	}
	// Find insertion point keeping intervals sorted, merging overlaps/adjacency.
	idx := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].Stop+1 >= start
	})
	if idx == len(s.intervals) {
		s.intervals = append(s.intervals, Interval{start, stop})
		return
	}
	if s.intervals[idx].Start > stop+1 {
		s.intervals = append(s.intervals, Interval{})
		copy(s.intervals[idx+1:], s.intervals[idx:])
		s.intervals[idx] = Interval{start, stop}
		return
	}
	// Overlaps or touches intervals[idx]; merge, and absorb any following overlaps.
	merged := Interval{
		Start: min(start, s.intervals[idx].Start),
		Stop:  max(stop, s.intervals[idx].Stop),
	}
	end := idx + 1
	for end < len(s.intervals) && s.intervals[end].Start <= merged.Stop+1 {
		if s.intervals[end].Stop > merged.Stop {
			merged.Stop = s.intervals[end].Stop
		}
		end++
	}
	s.intervals[idx] = merged
	s.intervals = append(s.intervals[:idx+1], s.intervals[end:]...)
}

// addSet merges another set's intervals into this one.
func (s *IntervalSet) addSet(other *IntervalSet) *IntervalSet {
	s.checkWritable()
	for _, iv := range other.intervals {
		s.addRange(iv.Start, iv.Stop)
	}
	return s
}

// removeOne deletes a single symbol, splitting an interval if necessary.
func (s *IntervalSet) removeOne(v int) {
	s.checkWritable()
	for i, iv := range s.intervals {
		if v < iv.Start || v > iv.Stop {
			continue
		}
		switch {
		case iv.Start == iv.Stop:
			s.intervals = append(s.intervals[:i], s.intervals[i+1:]...)
		case v == iv.Start:
			s.intervals[i].Start++
		case v == iv.Stop:
			s.intervals[i].Stop--
		default:
			right := Interval{v + 1, iv.Stop}
			s.intervals[i].Stop = v - 1
			s.intervals = append(s.intervals, Interval{})
			copy(s.intervals[i+2:], s.intervals[i+1:])
			s.intervals[i+1] = right
		}
		return
	}
}

// Contains reports whether v falls in the set.
func (s *IntervalSet) Contains(v int) bool {
	idx := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].Stop >= v
	})
	return idx < len(s.intervals) && s.intervals[idx].Start <= v
}

// IsEmpty reports whether the set has no members.
func (s *IntervalSet) IsEmpty() bool { return len(s.intervals) == 0 }

// Len returns the total number of symbols represented (not the interval count).
func (s *IntervalSet) Len() int {
	n := 0
	for _, iv := range s.intervals {
		n += iv.length()
	}
	return n
}

// Intervals exposes the underlying sorted, merged intervals for iteration.
func (s *IntervalSet) Intervals() []Interval {
	return s.intervals
}

func (s *IntervalSet) String() string {
	parts := make([]string, 0, len(s.intervals))
	for _, iv := range s.intervals {
		if iv.Start == iv.Stop {
			parts = append(parts, fmt.Sprintf("%d", iv.Start))
		} else {
			parts = append(parts, fmt.Sprintf("%d..%d", iv.Start, iv.Stop))
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
