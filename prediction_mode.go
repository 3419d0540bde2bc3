// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

// detectConflict implements §4.6.2's Conflict detection: two or more configs
// predict distinct alternatives whose prediction contexts are structurally
// equal, meaning no further input can tell them apart at this position. It
// groups the (already alt-merged, one-representative-per-state-per-alt)
// configs by state, and for any state where two alternatives carry an equal
// context, folds them into one ConflictInfo.
//
// This is a deliberately simplified stand-in for the reference algorithm's
// full partial-order ("is config A's context a superset of B's") conflict
// test — see DESIGN.md's C6 section for why equality, rather than a
// covers-style superset test, is sufficient here.
//
// exactAmbiguityDetection gates the further exact-vs-non-exact classification
// (WithExactAmbiguityDetection); when false, a detected conflict is always
// reported non-exact, skipping isExactConflict's extra context-set walk.
func detectConflict(configs *ATNConfigSet, exactAmbiguityDetection bool) *ConflictInfo {
	if configs.UniqueAlt() != invalidAltNumber {
		return nil
	}

	type perState struct {
		alts     []int
		contexts []*PredictionContext
	}
	byState := make(map[int]*perState)
	var order []int
	for _, c := range configs.Configs() {
		sn := c.State.GetStateNumber()
		ps, ok := byState[sn]
		if !ok {
			ps = &perState{}
			byState[sn] = ps
			order = append(order, sn)
		}
		ps.alts = append(ps.alts, c.Alt)
		ps.contexts = append(ps.contexts, c.Context)
	}

	conflicting := newBitSet()
	for _, sn := range order {
		ps := byState[sn]
		for i := 0; i < len(ps.alts); i++ {
			for j := i + 1; j < len(ps.alts); j++ {
				if ps.alts[i] == ps.alts[j] {
					continue
				}
				if ps.contexts[i].equals(ps.contexts[j]) {
					conflicting.add(ps.alts[i])
					conflicting.add(ps.alts[j])
				}
			}
		}
	}

	if conflicting.cardinality() == 0 {
		return nil
	}

	exact := false
	if exactAmbiguityDetection {
		exact = isExactConflict(configs, conflicting)
	}
	return &ConflictInfo{AltBitset: conflicting, Exact: exact}
}

// isExactConflict reports whether every conflicting alternative's configs,
// taken together, cover exactly the same set of contexts — i.e. the ambiguity
// is not an artifact of one alternative merely having extra, non-conflicting
// paths (§4.6.2: "Exact iff all configs' alt-keyed partitions have identical
// context unions").
func isExactConflict(configs *ATNConfigSet, conflicting *bitSet) bool {
	byAlt := make(map[int][]*PredictionContext)
	for _, c := range configs.Configs() {
		if conflicting.contains(c.Alt) {
			byAlt[c.Alt] = append(byAlt[c.Alt], c.Context)
		}
	}
	var reference []*PredictionContext
	first := true
	for _, alt := range conflicting.values() {
		ctxs := byAlt[alt]
		if first {
			reference = ctxs
			first = false
			continue
		}
		if !sameContextSet(reference, ctxs) {
			return false
		}
	}
	return true
}

func sameContextSet(a, b []*PredictionContext) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, ca := range a {
		found := false
		for j, cb := range b {
			if !used[j] && ca.equals(cb) {
				used[j] = true
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

// resolveToMinAlt picks the minimum alternative among a conflict's candidates,
// per §4.6.2 step 4 ("Resolve to min alternative among survivors").
func resolveToMinAlt(alts *bitSet) int {
	m := alts.minValue()
	if m < 0 {
		return invalidAltNumber
	}
	return m
}
