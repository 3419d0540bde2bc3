// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import "sync"

// PredicateGuard is one disjunct of an accept state's predicate table: "if
// predicate holds, the prediction is alt" (§4.6.2 Predicate evaluation).
type PredicateGuard struct {
	Pred SemanticContext
	Alt  int
}

// AcceptInfo is installed on a DFAState once it is known to commit a prediction
// (§3 DFAState). Predicates is nil unless the accepting config set carries
// semantic context; evaluation tries disjuncts in order and the first true one
// wins.
type AcceptInfo struct {
	PredictedAlt        int
	Predicates          []PredicateGuard
	LexerActionExecutor *LexerActionExecutor
}

// DFAState is a node of the lazily-built DFA (§3, §4.5). Its identity is
// entirely the sealed config set it was built from; StateNumber is assigned at
// insertion purely for diagnostics and is explicitly excluded from equality
// (§9 Open Question: "DFAState.equals explicitly ignores state number").
type DFAState struct {
	StateNumber int
	Configs     *ATNConfigSet

	mu           sync.RWMutex
	edges        EdgeMap[*DFAState]
	contextEdges EdgeMap[*DFAState]

	acceptMu   sync.Mutex
	acceptInfo *AcceptInfo

	contextSensitiveSymbols *bitSet
}

// NewDFAState wraps a sealed config set, with edge maps spanning
// [minSymbol,maxSymbol] and context edges spanning [-1, numATNStates-1]
// (§4.5; -1 is the EMPTY_FULL_STATE_KEY sentinel).
func NewDFAState(configs *ATNConfigSet, minSymbol, maxSymbol, numATNStates int) *DFAState {
	if !configs.Sealed() {
		configs.Seal()
	}
	return &DFAState{
		Configs:      configs,
		edges:        NewEdgeMap[*DFAState](minSymbol, maxSymbol),
		contextEdges: NewEdgeMap[*DFAState](-1, numATNStates-1),
	}
}

// GetTarget returns the DFAState reached by consuming symbol from this state,
// or nil if that edge hasn't been computed yet.
func (d *DFAState) GetTarget(symbol int) *DFAState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if t, ok := d.edges.Get(symbol); ok {
		return t
	}
	return nil
}

// SetTarget installs (or overwrites) the outgoing edge for symbol. Adding an
// edge is weakly ordered (§5): a concurrent reader may miss it and recompute,
// which must converge on an identical DFAState by construction.
func (d *DFAState) SetTarget(symbol int, target *DFAState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.edges = d.edges.Put(symbol, target)
}

// GetContextTarget returns the context-sensitive edge for invokingState, or nil.
// The EMPTY_FULL_STATE_KEY sentinel (-1) is used by callers for a context
// lacking any invoking state.
func (d *DFAState) GetContextTarget(invokingState int) *DFAState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if t, ok := d.contextEdges.Get(invokingState); ok {
		return t
	}
	return nil
}

func (d *DFAState) SetContextTarget(invokingState int, target *DFAState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.contextEdges = d.contextEdges.Put(invokingState, target)
}

// AcceptInfo returns the state's accept info, or nil if it is not an accept
// state.
func (d *DFAState) AcceptInfo() *AcceptInfo {
	d.acceptMu.Lock()
	defer d.acceptMu.Unlock()
	return d.acceptInfo
}

// SetAcceptInfo installs accept info once. A second call with an inconsistent
// value would indicate two threads computed different predictions for the same
// config set, which cannot happen if construction is deterministic (§5
// Idempotence) — so this simply overwrites, a last-writer-wins publication
// discipline for derived, supposedly-identical data.
func (d *DFAState) SetAcceptInfo(info *AcceptInfo) {
	d.acceptMu.Lock()
	defer d.acceptMu.Unlock()
	d.acceptInfo = info
}

func (d *DFAState) IsAcceptState() bool { return d.AcceptInfo() != nil }

// MarkContextSensitive flags symbol as requiring full-context disambiguation
// from this state (§9 Open Question notes the upstream method this mirrors —
// `setContextSensitive` — never atomically published a visibility flag; here
// the bitset itself is guarded by the same edge monitor so at least this
// implementation's own readers see a consistent view).
func (d *DFAState) MarkContextSensitive(symbol int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.contextSensitiveSymbols == nil {
		d.contextSensitiveSymbols = newBitSet()
	}
	d.contextSensitiveSymbols.add(symbol)
}

func (d *DFAState) IsContextSensitive(symbol int) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.contextSensitiveSymbols != nil && d.contextSensitiveSymbols.contains(symbol)
}

// Equals is config-set equality; StateNumber is deliberately excluded.
func (d *DFAState) Equals(other *DFAState) bool {
	if d == other {
		return true
	}
	if other == nil {
		return false
	}
	return d.Configs.Equals(other.Configs)
}

func (d *DFAState) hash() int { return d.Configs.hash() }

func (d *DFAState) snapshotEdges() (edges, contextEdges EdgeMap[*DFAState]) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.edges, d.contextEdges
}
