// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import (
	"sync"
	"sync/atomic"
)

// PrecedenceMax bounds the precedence levels a precedence DFA's placeholder
// start states index by (§4.5).
const PrecedenceMax = 200

// DFA is a single decision's lazily-built, thread-safe automaton (§3). Multiple
// parser instances may consult the same DFA concurrently (§5); all mutation
// goes through addState (CAS-like put-if-absent by config-set identity) or a
// DFAState's own edge monitor.
type DFA struct {
	ATNStartState DecisionState
	DecisionIndex int

	statesMu sync.Mutex
	buckets  map[int][]*DFAState
	nextNum  int32

	s0     atomic.Pointer[DFAState]
	s0full atomic.Pointer[DFAState]

	MinDfaEdge, MaxDfaEdge         int
	MinContextEdge, MaxContextEdge int

	PrecedenceDfa bool
}

// NewDFA constructs an empty DFA for one decision. numATNStates sizes the
// context-edge key range ([-1, numATNStates-1], §4.5). PrecedenceDfa is
// normally inferred from start's type; opts can override that (see
// WithForcePrecedenceDfa).
func NewDFA(start DecisionState, decisionIndex, minSymbol, maxSymbol, numATNStates int, opts ...DFAOption) *DFA {
	d := &DFA{
		ATNStartState:  start,
		DecisionIndex:  decisionIndex,
		buckets:        make(map[int][]*DFAState),
		MinDfaEdge:     minSymbol,
		MaxDfaEdge:     maxSymbol,
		MinContextEdge: -1,
		MaxContextEdge: numATNStates - 1,
	}
	if sl, ok := start.(*StarLoopEntryState); ok && sl.PrecedenceRuleDecision {
		d.PrecedenceDfa = true
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	if d.PrecedenceDfa {
		placeholder := NewDFAState(NewATNConfigSet(false), minSymbol, maxSymbol, numATNStates)
		placeholder.edges = NewEdgeMap[*DFAState](0, PrecedenceMax)
		placeholderFull := NewDFAState(NewATNConfigSet(true), minSymbol, maxSymbol, numATNStates)
		placeholderFull.edges = NewEdgeMap[*DFAState](0, PrecedenceMax)
		d.s0.Store(placeholder)
		d.s0full.Store(placeholderFull)
	}
	return d
}

// NewDFAState allocates a state sized to this DFA's symbol/context ranges.
func (d *DFA) NewDFAState(configs *ATNConfigSet) *DFAState {
	return NewDFAState(configs, d.MinDfaEdge, d.MaxDfaEdge, d.MaxContextEdge+1)
}

// S0 returns the SLL start state, or nil if not yet computed.
func (d *DFA) S0() *DFAState { return d.s0.Load() }

// SetS0 installs the SLL start state if one hasn't been installed yet
// (first-writer-wins, matching a one-shot atomic reference, §9 DESIGN NOTES).
func (d *DFA) SetS0(s *DFAState) *DFAState {
	if d.s0.CompareAndSwap(nil, s) {
		return s
	}
	return d.s0.Load()
}

// S0Full returns the LL (full-context) start state, or nil.
func (d *DFA) S0Full() *DFAState { return d.s0full.Load() }

func (d *DFA) SetS0Full(s *DFAState) *DFAState {
	if d.s0full.CompareAndSwap(nil, s) {
		return s
	}
	return d.s0full.Load()
}

// GetPrecedenceStartState resolves the real start state for the given parser
// precedence through the placeholder's precedence-indexed edge (§4.5).
func (d *DFA) GetPrecedenceStartState(precedence int, fullCtx bool) *DFAState {
	if !d.PrecedenceDfa {
		panic("IllegalState: GetPrecedenceStartState on a non-precedence DFA")
	}
	placeholder := d.s0
	if fullCtx {
		placeholder = d.s0full
	}
	p := placeholder.Load()
	if p == nil {
		return nil
	}
	return p.GetTarget(precedence)
}

// SetPrecedenceStartState atomically installs target as the start state for
// precedence.
func (d *DFA) SetPrecedenceStartState(precedence int, fullCtx bool, target *DFAState) {
	if !d.PrecedenceDfa {
		panic("IllegalState: SetPrecedenceStartState on a non-precedence DFA")
	}
	placeholder := d.s0
	if fullCtx {
		placeholder = d.s0full
	}
	placeholder.Load().SetTarget(precedence, target)
}

// AddState interns s by its config-set identity: if an equal state already
// exists, it is returned unchanged (put-if-absent); otherwise s is assigned the
// next sequential number and published (§4.5, §5 happens-before on publication).
func (d *DFA) AddState(s *DFAState) *DFAState {
	d.statesMu.Lock()
	defer d.statesMu.Unlock()

	key := s.hash()
	for _, existing := range d.buckets[key] {
		if existing.Equals(s) {
			return existing
		}
	}
	s.StateNumber = int(atomic.AddInt32(&d.nextNum, 1)) - 1
	d.buckets[key] = append(d.buckets[key], s)
	dfaTracer().Debugf("dfa[%d] interned new state #%d (size now %d)", d.DecisionIndex, s.StateNumber, d.numStatesLocked())
	return s
}

func (d *DFA) numStatesLocked() int {
	n := 0
	for _, b := range d.buckets {
		n += len(b)
	}
	return n
}

// NumStates returns the number of distinct states interned so far (§6 DFA
// introspection).
func (d *DFA) NumStates() int {
	d.statesMu.Lock()
	defer d.statesMu.Unlock()
	return d.numStatesLocked()
}

// States returns a snapshot slice of every interned state, for diagnostics.
func (d *DFA) States() []*DFAState {
	d.statesMu.Lock()
	defer d.statesMu.Unlock()
	out := make([]*DFAState, 0, d.numStatesLocked())
	for _, b := range d.buckets {
		out = append(out, b...)
	}
	return out
}
