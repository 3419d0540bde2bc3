// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

// TokenEOF is the reserved token type signaling end of input, shared between
// IntStream.LA's EOF sentinel (§4.7) and the token-set vocabulary ATN.getExpectedTokens
// walks (SPEC_FULL.md supplemented feature #1).
const TokenEOF = -1

// TokenEpsilon is the reserved token type Look() inserts into a computed set to
// mean "a path through this state matches no token, i.e. falls through to
// whatever follows the rule" (SPEC_FULL.md supplemented feature #1).
const TokenEpsilon = -2

// LL1Analyzer computes the set of tokens reachable from an ATN state, without
// attempting any actual ambiguity resolution — it is the LL(1) lookahead
// computation generated parsers use for getExpectedTokens and error-reporting
// follow sets, distinct from the full adaptive SLL/LL prediction machinery in
// atn_simulator.go (SPEC_FULL.md supplemented feature #1).
type LL1Analyzer struct {
	atn *ATN
}

func NewLL1Analyzer(atn *ATN) *LL1Analyzer {
	return &LL1Analyzer{atn: atn}
}

// lookKey keys the busy set that guards against infinite recursion through ATN cycles that loop back
// to the same (state, context-frame) pair without consuming input.
type lookKey struct {
	state ATNState
	ctx   *PredictionContext
}

// Look computes the set of tokens reachable from s, optionally staying within
// the rule of s (ctx == nil) or following ctx to compute what can follow once
// the enclosing rule(s) return. stopState, when non-nil, truncates the walk
// early where it is reached; the ATN's NextTokens* helpers always pass nil.
func (la *LL1Analyzer) Look(s ATNState, stopState ATNState, ctx RuleContext) *IntervalSet {
	r := NewIntervalSet()
	var lookContext *PredictionContext
	if ctx != nil {
		lookContext = FromRuleContext(la.atn, ctx, false)
	}
	busy := make(map[lookKey]bool)
	la.look(s, stopState, lookContext, r, busy, newBitSet(), true, true)
	return r
}

func (la *LL1Analyzer) look(s, stopState ATNState, ctx *PredictionContext, r *IntervalSet, busy map[lookKey]bool, calledRuleStack *bitSet, seeThruPreds, addEOF bool) {
	key := lookKey{s, ctx}
	if busy[key] {
		return
	}
	busy[key] = true

	if s == stopState {
		la.addFollowing(ctx, r, addEOF)
		return
	}

	if _, ok := s.(*RuleStopState); ok {
		if ctx == nil {
			r.AddOne(TokenEpsilon)
			return
		}
		if ctx.isEmpty() {
			if addEOF {
				r.AddOne(TokenEOF)
			} else {
				r.AddOne(TokenEpsilon)
			}
			return
		}
		for i := 0; i < ctx.size(); i++ {
			if ctx.getReturnState(i) == EmptyReturnState {
				if addEOF {
					r.AddOne(TokenEOF)
				}
				continue
			}
			returnState := la.atn.states[ctx.getReturnState(i)]
			la.look(returnState, stopState, ctx.getParent(i), r, busy, calledRuleStack, seeThruPreds, addEOF)
		}
		return
	}

	for _, t := range s.GetTransitions() {
		switch tt := t.(type) {
		case *RuleTransition:
			if calledRuleStack.contains(tt.ruleIndex) {
				continue
			}
			newContext := ctx.getChildSafe(tt.FollowState().GetStateNumber())
			calledRuleStack.add(tt.ruleIndex)
			la.look(tt.GetTarget(), stopState, newContext, r, busy, calledRuleStack, seeThruPreds, addEOF)
			calledRuleStack.remove(tt.ruleIndex)
		case *PredicateTransition:
			if seeThruPreds {
				la.look(tt.GetTarget(), stopState, ctx, r, busy, calledRuleStack, seeThruPreds, addEOF)
			}
			// !seeThruPreds: the predicate's truth isn't known statically, so this
			// path contributes nothing rather than over- or under-reporting.
		case *PrecedencePredicateTransition:
			if seeThruPreds {
				la.look(tt.GetTarget(), stopState, ctx, r, busy, calledRuleStack, seeThruPreds, addEOF)
			}
		case *WildcardTransition:
			r.addRange(la.minSymbol(), la.atn.GetMaxTokenType())
		default:
			if t.IsEpsilon() {
				la.look(t.GetTarget(), stopState, ctx, r, busy, calledRuleStack, seeThruPreds, addEOF)
				continue
			}
			label := t.Label()
			if label != nil {
				if _, ok := t.(*NotSetTransition); ok {
					r.addSet(label.complement(la.minSymbol(), la.atn.GetMaxTokenType()))
				} else {
					r.addSet(label)
				}
			}
		}
	}
}

func (la *LL1Analyzer) minSymbol() int { return 0 }

func (la *LL1Analyzer) addFollowing(ctx *PredictionContext, r *IntervalSet, addEOF bool) {
	if ctx == nil || ctx.isEmpty() {
		if addEOF {
			r.AddOne(TokenEOF)
		}
		return
	}
	for i := 0; i < ctx.size(); i++ {
		r.AddOne(ctx.getReturnState(i))
	}
}

// getChildSafe is getChild but tolerant of a nil receiver (an un-seeded local
// context, e.g. when Look is called with ctx == nil).
func (c *PredictionContext) getChildSafe(returnState int) *PredictionContext {
	if c == nil {
		return nil
	}
	return c.getChild(returnState)
}

// complement returns the symbols in [minSymbol, maxSymbol] not present in s.
func (s *IntervalSet) complement(minSymbol, maxSymbol int) *IntervalSet {
	out := NewIntervalSetFromRanges(minSymbol, maxSymbol)
	for _, iv := range s.intervals {
		for v := iv.Start; v <= iv.Stop; v++ {
			out.removeOne(v)
		}
	}
	return out
}
