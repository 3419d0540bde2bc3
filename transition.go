// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

// TransitionType enumerates the edge kinds listed in spec §3.
type TransitionType int

const (
	TransitionEpsilon TransitionType = iota
	TransitionAtom
	TransitionRange
	TransitionSet
	TransitionNotSet
	TransitionWildcard
	TransitionRule
	TransitionPredicate
	TransitionAction
	TransitionPrecedencePredicate
)

// Transition is a directed, typed edge between two ATNStates.
type Transition interface {
	GetTarget() ATNState
	SetTarget(ATNState)
	GetTransitionType() TransitionType
	IsEpsilon() bool
	// Matches reports whether the transition consumes symbol, given the
	// minimum/maximum possible symbol value (used by set/not-set transitions to
	// bound their complement).
	Matches(symbol, minSymbol, maxSymbol int) bool
	// Label returns the set of symbols this transition consumes, or nil for
	// transitions with no fixed symbol range (epsilon, rule, predicate, action).
	Label() *IntervalSet
}

type baseTransition struct {
	target ATNState
}

func (t *baseTransition) GetTarget() ATNState   { return t.target }
func (t *baseTransition) SetTarget(s ATNState)  { t.target = s }

// EpsilonTransition consumes no input.
type EpsilonTransition struct {
	baseTransition
	outermostPrecedenceReturn int // -1 unless this epsilon leaves a left-recursive rule's outermost precedence
}

func NewEpsilonTransition(target ATNState) *EpsilonTransition {
	return &EpsilonTransition{baseTransition{target}, -1}
}
func (t *EpsilonTransition) GetTransitionType() TransitionType { return TransitionEpsilon }
func (t *EpsilonTransition) IsEpsilon() bool                   { return true }
func (t *EpsilonTransition) Matches(int, int, int) bool        { return false }
func (t *EpsilonTransition) Label() *IntervalSet               { return nil }

// RuleTransition invokes another rule, pushing FollowState onto the prediction
// context (§4.6.2 Closure).
type RuleTransition struct {
	baseTransition
	followState ATNState
	ruleIndex   int
	precedence  int
}

func NewRuleTransition(ruleStart ATNState, ruleIndex, precedence int, followState ATNState) *RuleTransition {
	return &RuleTransition{baseTransition{ruleStart}, followState, ruleIndex, precedence}
}
func (t *RuleTransition) GetTransitionType() TransitionType { return TransitionRule }
func (t *RuleTransition) IsEpsilon() bool                   { return true }
func (t *RuleTransition) Matches(int, int, int) bool        { return false }
func (t *RuleTransition) Label() *IntervalSet               { return nil }
func (t *RuleTransition) FollowState() ATNState             { return t.followState }

// PredicateTransition carries a semantic predicate that must be evaluated to
// follow the edge (§4.6.2 predicate evaluation).
type PredicateTransition struct {
	baseTransition
	RuleIndex, PredIndex int
	IsCtxDependent       bool
}

func NewPredicateTransition(target ATNState, ruleIndex, predIndex int, isCtxDependent bool) *PredicateTransition {
	return &PredicateTransition{baseTransition{target}, ruleIndex, predIndex, isCtxDependent}
}
func (t *PredicateTransition) GetTransitionType() TransitionType { return TransitionPredicate }
func (t *PredicateTransition) IsEpsilon() bool                   { return true }
func (t *PredicateTransition) Matches(int, int, int) bool        { return false }
func (t *PredicateTransition) Label() *IntervalSet               { return nil }
func (t *PredicateTransition) Predicate() *PredicateSemanticContext {
	return &PredicateSemanticContext{RuleIndex: t.RuleIndex, PredIndex: t.PredIndex, IsCtxDependent: t.IsCtxDependent}
}

// PrecedencePredicateTransition implements the implicit `{precedence >= N}?`
// predicate guarding each alternative of a left-recursive rule.
type PrecedencePredicateTransition struct {
	baseTransition
	Precedence int
}

func NewPrecedencePredicateTransition(target ATNState, precedence int) *PrecedencePredicateTransition {
	return &PrecedencePredicateTransition{baseTransition{target}, precedence}
}
func (t *PrecedencePredicateTransition) GetTransitionType() TransitionType {
	return TransitionPrecedencePredicate
}
func (t *PrecedencePredicateTransition) IsEpsilon() bool            { return true }
func (t *PrecedencePredicateTransition) Matches(int, int, int) bool { return false }
func (t *PrecedencePredicateTransition) Label() *IntervalSet        { return nil }
func (t *PrecedencePredicateTransition) Predicate() *PrecedencePredicateSemanticContext {
	return &PrecedencePredicateSemanticContext{Precedence: t.Precedence}
}

// ActionTransition fires a lexer/parser action during closure; it never blocks
// prediction, but contributes the action index so lexer mode can replay it.
type ActionTransition struct {
	baseTransition
	RuleIndex, ActionIndex int
	IsCtxDependent         bool
}

func NewActionTransition(target ATNState, ruleIndex, actionIndex int, isCtxDependent bool) *ActionTransition {
	return &ActionTransition{baseTransition{target}, ruleIndex, actionIndex, isCtxDependent}
}
func (t *ActionTransition) GetTransitionType() TransitionType { return TransitionAction }
func (t *ActionTransition) IsEpsilon() bool                   { return true }
func (t *ActionTransition) Matches(int, int, int) bool        { return false }
func (t *ActionTransition) Label() *IntervalSet               { return nil }

// AtomTransition matches exactly one symbol.
type AtomTransition struct {
	baseTransition
	Symbol int
}

func NewAtomTransition(target ATNState, symbol int) *AtomTransition {
	return &AtomTransition{baseTransition{target}, symbol}
}
func (t *AtomTransition) GetTransitionType() TransitionType { return TransitionAtom }
func (t *AtomTransition) IsEpsilon() bool                   { return false }
func (t *AtomTransition) Matches(symbol, _, _ int) bool     { return symbol == t.Symbol }
func (t *AtomTransition) Label() *IntervalSet {
	s := NewIntervalSet()
	s.AddOne(t.Symbol)
	return s
}

// RangeTransition matches a contiguous inclusive range of symbols.
type RangeTransition struct {
	baseTransition
	Start, Stop int
}

func NewRangeTransition(target ATNState, start, stop int) *RangeTransition {
	return &RangeTransition{baseTransition{target}, start, stop}
}
func (t *RangeTransition) GetTransitionType() TransitionType { return TransitionRange }
func (t *RangeTransition) IsEpsilon() bool                   { return false }
func (t *RangeTransition) Matches(symbol, _, _ int) bool {
	return symbol >= t.Start && symbol <= t.Stop
}
func (t *RangeTransition) Label() *IntervalSet {
	s := NewIntervalSet()
	s.addRange(t.Start, t.Stop)
	return s
}

// SetTransition matches any symbol in an arbitrary IntervalSet.
type SetTransition struct {
	baseTransition
	set *IntervalSet
}

func NewSetTransition(target ATNState, set *IntervalSet) *SetTransition {
	if set == nil {
		set = NewIntervalSet()
	}
	return &SetTransition{baseTransition{target}, set}
}
func (t *SetTransition) GetTransitionType() TransitionType { return TransitionSet }
func (t *SetTransition) IsEpsilon() bool                   { return false }
func (t *SetTransition) Matches(symbol, _, _ int) bool     { return t.set.Contains(symbol) }
func (t *SetTransition) Label() *IntervalSet               { return t.set }

// NotSetTransition matches any symbol in [minSymbol, maxSymbol] that is NOT in
// set (the complement is bounded by the caller's symbol range, since the ATN
// itself has no fixed alphabet size).
type NotSetTransition struct {
	baseTransition
	set *IntervalSet
}

func NewNotSetTransition(target ATNState, set *IntervalSet) *NotSetTransition {
	if set == nil {
		set = NewIntervalSet()
	}
	return &NotSetTransition{baseTransition{target}, set}
}
func (t *NotSetTransition) GetTransitionType() TransitionType { return TransitionNotSet }
func (t *NotSetTransition) IsEpsilon() bool                   { return false }
func (t *NotSetTransition) Matches(symbol, minSymbol, maxSymbol int) bool {
	return symbol >= minSymbol && symbol <= maxSymbol && !t.set.Contains(symbol)
}
func (t *NotSetTransition) Label() *IntervalSet { return t.set }

// WildcardTransition matches any symbol in [minSymbol, maxSymbol].
type WildcardTransition struct{ baseTransition }

func NewWildcardTransition(target ATNState) *WildcardTransition {
	return &WildcardTransition{baseTransition{target}}
}
func (t *WildcardTransition) GetTransitionType() TransitionType { return TransitionWildcard }
func (t *WildcardTransition) IsEpsilon() bool                   { return false }
func (t *WildcardTransition) Matches(symbol, minSymbol, maxSymbol int) bool {
	return symbol >= minSymbol && symbol <= maxSymbol
}
func (t *WildcardTransition) Label() *IntervalSet { return nil }
