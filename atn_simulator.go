// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

// ATNSimulatorBase carries the fields shared by the lexer and parser
// simulators (§4.6): the frozen ATN they walk, and the parser-lifetime context
// cache used to hash-cons PredictionContext nodes across many predict() calls.
type ATNSimulatorBase struct {
	Atn                *ATN
	SharedContextCache *PredictionContextCache
}

// closureConfig bundles the parameters threaded through every recursive
// closure() call, so the recursive signature stays short.
type closureConfig struct {
	jc              *JoinCache
	recog           Recognizer
	outerContext    RuleContext
	fullCtx         bool
	evalPredsNow    bool // true for lexer closure (§4.6.1); false defers to accept-time disjuncts (§4.6.2)
	lexerActions    []LexerAction
	depth           int
}

const maxClosureDepth = 2000

// closure computes the epsilon closure of a single config into configs,
// recursing only through configs that actually changed the set (§9: "a
// greedy-guard replaces pure epsilon loops via config-set de-duplication").
func closure(configs *ATNConfigSet, c *ATNConfig, cc *closureConfig) {
	if cc.depth > maxClosureDepth {
		tracer().Errorf("closure recursion depth exceeded at state %d; treating as a dead end", c.State.GetStateNumber())
		return
	}

	if _, ok := c.State.(*RuleStopState); ok {
		closureRuleStop(configs, c, cc)
		return
	}

	if !configs.Add(c, cc.jc) {
		return
	}

	child := *cc
	child.depth++

	for _, t := range c.State.GetTransitions() {
		if !t.IsEpsilon() {
			continue
		}
		next := closureEpsilon(c, t, &child)
		if next != nil {
			closure(configs, next, &child)
		}
	}
}

func closureRuleStop(configs *ATNConfigSet, c *ATNConfig, cc *closureConfig) {
	ctx := c.Context
	if ctx.isEmpty() {
		if ctx.kind == emptyFullKind {
			// Reached the outermost invocation's stop state with full context
			// known: this config is a genuine, final prediction candidate.
			configs.OutermostConfigSet = true
			configs.Add(c, cc.jc)
			return
		}
		// EMPTY_LOCAL: SLL closure popped past the bottom of what it knows
		// about the caller chain. The config still represents a real parse,
		// just one whose continuation outside the decision isn't visible to
		// SLL; record the dip and keep it as a terminal candidate.
		c.bumpOuterContextDepth()
		configs.DipsIntoOuterContext = true
		configs.Add(c, cc.jc)
		return
	}

	child := *cc
	child.depth++
	for i := 0; i < ctx.size(); i++ {
		returnState := ctx.getReturnState(i)
		parent := ctx.getParent(i)
		if returnState == EmptyReturnState {
			terminal := c.Transform(c.State, EmptyFull, false)
			configs.Add(terminal, cc.jc)
			continue
		}
		follow := cc.recogAtn(c.State).states[returnState]
		if parent == nil {
			parent = EmptyLocal
		}
		next := c.Transform(follow, parent, true)
		closure(configs, next, &child)
	}
}

// recogAtn is a tiny convenience so closureRuleStop can reach the owning ATN
// without threading it separately: every ATNState already points back at it.
func (cc *closureConfig) recogAtn(s ATNState) *ATN { return s.GetATN() }

// closureEpsilon applies one epsilon-like transition to c, returning the config
// to recurse into, or nil if the path dies here (a false predicate).
func closureEpsilon(c *ATNConfig, t Transition, cc *closureConfig) *ATNConfig {
	switch tt := t.(type) {
	case *RuleTransition:
		newContext := c.Context.getChild(tt.FollowState().GetStateNumber())
		return c.Transform(tt.GetTarget(), newContext, true)

	case *PredicateTransition:
		if cc.evalPredsNow {
			if cc.recog == nil || cc.recog.Sempred(cc.outerContext, tt.RuleIndex, tt.PredIndex) {
				return c.Transform(tt.GetTarget(), nil, true)
			}
			return nil
		}
		sem := SemanticContextAnd(c.SemCtx, tt.Predicate())
		return c.Transform(tt.GetTarget(), nil, true).WithSemCtx(sem)

	case *PrecedencePredicateTransition:
		if cc.evalPredsNow {
			if cc.recog == nil || cc.recog.Precpred(cc.outerContext, tt.Precedence) {
				return c.Transform(tt.GetTarget(), nil, true)
			}
			return nil
		}
		sem := SemanticContextAnd(c.SemCtx, tt.Predicate())
		return c.Transform(tt.GetTarget(), nil, true).WithSemCtx(sem)

	case *ActionTransition:
		next := c.Transform(tt.GetTarget(), nil, true)
		if cc.lexerActions != nil && tt.ActionIndex >= 0 && tt.ActionIndex < len(cc.lexerActions) {
			next = next.WithLexerActionExecutor(AppendLexerActionExecutor(next.LexerActionExecutor, cc.lexerActions[tt.ActionIndex]))
		}
		return next

	default: // plain EpsilonTransition
		return c.Transform(t.GetTarget(), nil, true)
	}
}

// reach computes the set of configs reachable from configs by consuming
// exactly symbol, then closes the result (§4.6.2 Reach).
func reach(configs *ATNConfigSet, symbol, minSymbol, maxSymbol int, cc *closureConfig) *ATNConfigSet {
	out := NewATNConfigSet(cc.fullCtx)
	for _, c := range configs.Configs() {
		for _, t := range c.State.GetTransitions() {
			if t.IsEpsilon() || !t.Matches(symbol, minSymbol, maxSymbol) {
				continue
			}
			moved := c.Transform(t.GetTarget(), nil, true)
			closure(out, moved, cc)
		}
	}
	return out
}
