// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

// LexerActionExecutor bundles the ordered LexerActions an accepting lexer config
// carries, and caches whether any of them is position-dependent (§4.6.1: position
// is anchored at the start of the current token for predicate evaluation; the
// same anchoring applies to position-dependent actions, which must be replayed
// against the live input rather than cached by value).
type LexerActionExecutor struct {
	LexerActions        []LexerAction
	cachedHash          int
	positionDependent   bool
}

// NewLexerActionExecutor builds an executor over actions, in firing order.
func NewLexerActionExecutor(actions []LexerAction) *LexerActionExecutor {
	e := &LexerActionExecutor{LexerActions: actions}
	h := 1
	for _, a := range actions {
		h = h*31 + a.hash()
		if a.IsPositionDependent() {
			e.positionDependent = true
		}
	}
	e.cachedHash = h
	return e
}

// AppendLexerActionExecutor returns a new executor with action appended. The
// actions are copied into a fresh slice (the action values themselves are
// shared), so exec is left unchanged.
func AppendLexerActionExecutor(exec *LexerActionExecutor, action LexerAction) *LexerActionExecutor {
	var actions []LexerAction
	if exec != nil {
		actions = append(actions, exec.LexerActions...)
	}
	actions = append(actions, action)
	return NewLexerActionExecutor(actions)
}

// Execute runs every action against lexer, in order.
func (e *LexerActionExecutor) Execute(lexer LexerActionExecutorTarget) {
	for _, a := range e.LexerActions {
		a.Execute(lexer)
	}
}

func (e *LexerActionExecutor) hash() int { return e.cachedHash }

func (e *LexerActionExecutor) equals(other *LexerActionExecutor) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	if len(e.LexerActions) != len(other.LexerActions) {
		return false
	}
	for i, a := range e.LexerActions {
		if !a.equals(other.LexerActions[i]) {
			return false
		}
	}
	return true
}
