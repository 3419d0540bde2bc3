// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

// invalidAltNumber marks an ATNConfig's alt as not-yet-computed or not
// applicable (§3: "Alternative 0 is reserved as invalid").
const invalidAltNumber = 0

const maxOuterContextDepth = 127

// ATNConfig is the tuple (state, alt, semantic context, prediction context,
// flags) described in §3. The type itself always carries every field; §4.2 notes
// that a systems language should prefer this over the reference implementation's
// four inheritance-based memory variants, which exist there purely to economize
// on per-config allocation. A single struct with zero-valued optional fields is
// the idiomatic Go equivalent SPEC_FULL.md's DESIGN NOTES call for.
type ATNConfig struct {
	State   ATNState
	Alt     int
	Context *PredictionContext
	SemCtx  SemanticContext

	outerContextDepth int8 // saturates at maxOuterContextDepth

	precedenceFilterSuppressed    bool
	passedThroughNonGreedyDecision bool

	// LexerActionExecutor is only ever non-nil for lexer-mode configs.
	LexerActionExecutor *LexerActionExecutor
}

// NewATNConfig builds a config at state/alt with the given context, defaulting
// its semantic context to SemanticContextNone.
func NewATNConfig(state ATNState, alt int, context *PredictionContext) *ATNConfig {
	return &ATNConfig{State: state, Alt: alt, Context: context, SemCtx: SemanticContextNone}
}

// NewATNConfigWithSemCtx is NewATNConfig plus an explicit semantic context.
func NewATNConfigWithSemCtx(state ATNState, alt int, context *PredictionContext, semCtx SemanticContext) *ATNConfig {
	if semCtx == nil {
		semCtx = SemanticContextNone
	}
	return &ATNConfig{State: state, Alt: alt, Context: context, SemCtx: semCtx}
}

func (c *ATNConfig) OuterContextDepth() int { return int(c.outerContextDepth) }

func (c *ATNConfig) bumpOuterContextDepth() {
	if int(c.outerContextDepth) < maxOuterContextDepth {
		c.outerContextDepth++
	}
}

func (c *ATNConfig) PrecedenceFilterSuppressed() bool    { return c.precedenceFilterSuppressed }
func (c *ATNConfig) PassedThroughNonGreedyDecision() bool { return c.passedThroughNonGreedyDecision }

// Transform produces a new config at target, optionally replacing the context
// and/or semantic context, and (when checkNonGreedy) propagating the
// passed-through-non-greedy-decision flag if target is itself a non-greedy
// decision state (§4.2).
func (c *ATNConfig) Transform(target ATNState, newContext *PredictionContext, checkNonGreedy bool) *ATNConfig {
	ctx := c.Context
	if newContext != nil {
		ctx = newContext
	}
	clone := &ATNConfig{
		State:                          target,
		Alt:                            c.Alt,
		Context:                        ctx,
		SemCtx:                         c.SemCtx,
		outerContextDepth:              c.outerContextDepth,
		precedenceFilterSuppressed:     c.precedenceFilterSuppressed,
		passedThroughNonGreedyDecision: c.passedThroughNonGreedyDecision,
		LexerActionExecutor:            c.LexerActionExecutor,
	}
	if checkNonGreedy {
		if d, ok := target.(DecisionState); ok && !d.isGreedy() {
			clone.passedThroughNonGreedyDecision = true
		}
	}
	return clone
}

// WithSemCtx returns a copy of c with a different semantic context.
func (c *ATNConfig) WithSemCtx(semCtx SemanticContext) *ATNConfig {
	clone := *c
	clone.SemCtx = semCtx
	return &clone
}

// WithLexerActionExecutor returns a copy of c carrying exec.
func (c *ATNConfig) WithLexerActionExecutor(exec *LexerActionExecutor) *ATNConfig {
	clone := *c
	clone.LexerActionExecutor = exec
	return &clone
}

// WithPrecedenceFilterSuppressed returns a copy of c with the precedence filter
// suppression flag forced to v (§4.6.2 closure, precedence decisions).
func (c *ATNConfig) WithPrecedenceFilterSuppressed(v bool) *ATNConfig {
	clone := *c
	clone.precedenceFilterSuppressed = v
	return &clone
}

// equalPosition reports whether c and other occupy the same (state, alt),
// ignoring context and semantics — the position §4.2 Contains requires to
// match before comparing contexts.
func (c *ATNConfig) equalPosition(other *ATNConfig) bool {
	return c.State.GetStateNumber() == other.State.GetStateNumber() && c.Alt == other.Alt
}

// Contains reports whether c conservatively covers sub: same position, and c's
// context structurally covers sub's (§4.2; §8 property 8 allows false negatives
// only, never false positives).
func (c *ATNConfig) Contains(sub *ATNConfig) bool {
	if !c.equalPosition(sub) {
		return false
	}
	if !c.SemCtx.equals(sub.SemCtx) {
		return false
	}
	return c.Context.covers(sub.Context)
}

// equals reports full structural equality: same position, semantic context,
// context and non-greedy flag. (ATNConfigSet's overflow scan uses canMerge,
// which ignores the context.)
func (c *ATNConfig) equals(other *ATNConfig) bool {
	if c == other {
		return true
	}
	return c.equalPosition(other) &&
		c.SemCtx.equals(other.SemCtx) &&
		c.Context.equals(other.Context) &&
		c.passedThroughNonGreedyDecision == other.passedThroughNonGreedyDecision
}
