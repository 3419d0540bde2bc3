// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// ConflictInfo records which alternatives tied on some input prefix, and
// whether that conflict is exact (every tied alternative's surviving context set
// is identical, §4.6.2 Conflict detection).
type ConflictInfo struct {
	AltBitset *bitSet
	Exact     bool
}

// configKey packs (stateNumber, alt) the way §3 specifies: the low 12 bits hold
// the alt (masking keeps the key small and collision-tolerant for grammars with
// fewer than 4096 alternatives in one rule; anything larger just spills into the
// overflow list, which is still correct, only slower).
func configKey(stateNumber, alt int) int64 {
	return int64(stateNumber)<<12 | int64(alt&0xFFF)
}

// ATNConfigSet is the mutable-then-sealable config collection of §3/§4.3: a
// hash table from (state,alt) to a representative config, an overflow list for
// same-key-different-semantics configs, and the total ordered list used for
// iteration and, once sealed, for identity/equality of the owning DFAState.
type ATNConfigSet struct {
	configs []*ATNConfig // total order, append-only until sealed

	mergedConfigs map[int64]*ATNConfig // representative per key, cleared on seal
	unmerged      []*ATNConfig         // overflow: same key, different semantics

	HasSemanticContext  bool
	DipsIntoOuterContext bool
	OutermostConfigSet  bool
	uniqueAlt           int
	ConflictInfo        *ConflictInfo

	sealed     bool
	cachedHash int
	fullCtx    bool
}

// NewATNConfigSet returns an empty, mutable set. fullCtx records whether this
// set is being built under full-context (LL) or SLL prediction — callers use it
// to decide how contexts get merged during closure (§4.6.2).
func NewATNConfigSet(fullCtx bool) *ATNConfigSet {
	return &ATNConfigSet{
		mergedConfigs: make(map[int64]*ATNConfig),
		fullCtx:       fullCtx,
	}
}

func (s *ATNConfigSet) checkWritable() {
	if s.sealed {
		panic("IllegalState: ATNConfigSet is sealed")
	}
}

func (s *ATNConfigSet) FullContext() bool { return s.fullCtx }

// Size returns the number of distinct configs (the total ordered list's length).
func (s *ATNConfigSet) Size() int { return len(s.configs) }

// Configs returns the set's configs in insertion order. Callers must not mutate
// the returned slice.
func (s *ATNConfigSet) Configs() []*ATNConfig { return s.configs }

func (s *ATNConfigSet) IsEmpty() bool { return len(s.configs) == 0 }

// UniqueAlt returns the sole alternative predicted by every config in the set,
// or ATNInvalidAltNumber if more than one alternative is represented.
func (s *ATNConfigSet) UniqueAlt() int { return s.uniqueAlt }

func canMerge(e *ATNConfig, rep *ATNConfig) bool {
	return e.State.GetStateNumber() == rep.State.GetStateNumber() &&
		e.Alt == rep.Alt &&
		e.SemCtx.equals(rep.SemCtx)
}

// Add runs the three-tier add algorithm of §4.3, merging contexts via jc when a
// mergeable config already occupies e's slot. It reports whether the set
// changed (false means e was absorbed into an existing, unchanged entry).
func (s *ATNConfigSet) Add(e *ATNConfig, jc *JoinCache) bool {
	s.checkWritable()

	if e.SemCtx != SemanticContextNone {
		s.HasSemanticContext = true
	}
	if e.OuterContextDepth() > 0 {
		s.DipsIntoOuterContext = true
	}

	key := configKey(e.State.GetStateNumber(), e.Alt)
	changed := false

	if rep, ok := s.mergedConfigs[key]; ok && canMerge(e, rep) {
		changed = s.mergeInto(rep, e, jc)
	} else {
		merged := false
		for i, o := range s.unmerged {
			if canMerge(e, o) {
				changed = s.mergeInto(o, e, jc)
				merged = true
				if _, exists := s.mergedConfigs[key]; !exists {
					// Promote the overflow entry so future lookups at this key
					// hit the fast path (§4.3 step 2: "promote ... if no entry
					// with k exists").
					s.mergedConfigs[key] = o
					s.unmerged = append(s.unmerged[:i], s.unmerged[i+1:]...)
				}
				break
			}
		}
		if !merged {
			s.configs = append(s.configs, e)
			if _, exists := s.mergedConfigs[key]; !exists {
				s.mergedConfigs[key] = e
			} else {
				s.unmerged = append(s.unmerged, e)
			}
			changed = true
			s.trackUniqueAlt(e.Alt)
		}
	}

	tracer().Debugf("config-set add state=%d alt=%d changed=%v size=%d", e.State.GetStateNumber(), e.Alt, changed, len(s.configs))
	return changed
}

// mergeInto joins rep's context with e's context in place (rep is a pointer
// already present in s.configs) and returns whether the join actually changed
// anything observable.
func (s *ATNConfigSet) mergeInto(rep, e *ATNConfig, jc *JoinCache) bool {
	maxDepth := rep.OuterContextDepth()
	if e.OuterContextDepth() > maxDepth {
		maxDepth = e.OuterContextDepth()
	}
	joined := jc.Join(rep.Context, e.Context)
	unchanged := joined == rep.Context

	rep.outerContextDepth = int8(maxDepth)
	rep.precedenceFilterSuppressed = rep.precedenceFilterSuppressed || e.precedenceFilterSuppressed
	rep.Context = joined

	return !unchanged
}

func (s *ATNConfigSet) trackUniqueAlt(alt int) {
	if s.uniqueAlt == invalidAltNumber && len(s.configs) == 1 {
		s.uniqueAlt = alt
	} else if s.uniqueAlt != alt {
		s.uniqueAlt = invalidAltNumber
	}
}

// GetRepresentedAlternatives returns the set of alternatives any config in this
// set predicts, preferring the precomputed ConflictInfo bitset when present
// (§4.3). The scan path builds an ordered gods/treeset first so iteration order
// (and therefore, e.g., "return the minimum alt" in §4.6.2 step 4) is
// deterministic regardless of map/slice iteration order upstream.
func (s *ATNConfigSet) GetRepresentedAlternatives() *bitSet {
	if s.ConflictInfo != nil {
		return s.ConflictInfo.AltBitset.clone()
	}
	ts := treeset.NewWith(utils.IntComparator)
	for _, c := range s.configs {
		ts.Add(c.Alt)
	}
	out := newBitSet()
	for _, v := range ts.Values() {
		out.add(v.(int))
	}
	return out
}

// Seal freezes the set: mergedConfigs/unmerged are discarded and the hash is
// precomputed, so every downstream comparison (DFAState identity) works off the
// frozen representation (§3, §9 "Sealable sets").
func (s *ATNConfigSet) Seal() {
	if s.sealed {
		return
	}
	if s.OutermostConfigSet && s.DipsIntoOuterContext {
		panic("IllegalState: an outermost config set must not dip into outer context")
	}
	s.mergedConfigs = nil
	s.unmerged = nil
	s.sealed = true
	// Summed per config so the hash, like Equals, ignores insertion order.
	h := 1
	for _, c := range s.configs {
		h += c.State.GetStateNumber()*7 + c.Alt*13 + c.Context.hash()
	}
	s.cachedHash = h
}

func (s *ATNConfigSet) Sealed() bool { return s.sealed }

func (s *ATNConfigSet) hash() int {
	if !s.sealed {
		panic("IllegalState: hash requires a sealed ATNConfigSet")
	}
	return s.cachedHash
}

// Equals is the config-set equality that defines DFAState identity (§3: "sealed
// sets cache their hash code"; equality ignores order, it is a set comparison).
func (s *ATNConfigSet) Equals(other *ATNConfigSet) bool {
	if s == other {
		return true
	}
	if other == nil || s.Size() != other.Size() || s.hash() != other.hash() {
		return false
	}
	for _, c := range s.configs {
		found := false
		for _, oc := range other.configs {
			if c.equalPosition(oc) && c.SemCtx.equals(oc.SemCtx) && c.Context.equals(oc.Context) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
