// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestATNGetRuleToTokenTypeBounds(t *testing.T) {
	a := NewATN(GrammarTypeLexer, 10)
	a.ruleToTokenType = []int{5, 6}

	assert.Equal(t, 5, a.GetRuleToTokenType(0))
	assert.Equal(t, 6, a.GetRuleToTokenType(1))
	assert.Equal(t, 0, a.GetRuleToTokenType(-1))
	assert.Equal(t, 0, a.GetRuleToTokenType(2))
}

func TestATNGetLexerActionBounds(t *testing.T) {
	a := NewATN(GrammarTypeLexer, 10)
	skip := NewLexerSkipAction()
	a.lexerActions = []LexerAction{skip}

	assert.Same(t, skip, a.GetLexerAction(0))
	assert.Nil(t, a.GetLexerAction(-1))
	assert.Nil(t, a.GetLexerAction(1))
}

func TestATNRemoveStateFreesSlotWithoutShifting(t *testing.T) {
	a := NewATN(GrammarTypeParser, 10)
	s0 := NewBasicState()
	a.addState(s0)
	s1 := NewBasicState()
	a.addState(s1)

	a.removeState(s0)
	assert.Nil(t, a.states[0])
	assert.Same(t, s1, a.states[1])
	assert.Equal(t, 1, s1.GetStateNumber())
}

func TestATNGetExpectedTokensWalksInvokingContextChain(t *testing.T) {
	a := NewATN(GrammarTypeParser, 10)

	calleeBody := NewBasicState()
	a.addState(calleeBody)
	calleeStop := NewRuleStopState()
	a.addState(calleeStop)
	calleeBody.AddTransition(NewAtomTransition(calleeStop, 7))

	callerAfterCall := NewBasicState()
	a.addState(callerAfterCall)
	callerAfterCall.AddTransition(NewAtomTransition(callerAfterCall, 9)) // arbitrary sink so NextTokens(followState) == {9}

	invokingState := NewBasicState()
	a.addState(invokingState)
	invokingState.AddTransition(NewRuleTransition(calleeBody, 0, 0, callerAfterCall))

	ctx := &stubRuleContext{invokingState: invokingState.GetStateNumber(), parent: nil}

	expected := a.getExpectedTokens(calleeStop.GetStateNumber(), ctx)
	assert.True(t, expected.Contains(9))
}

type stubRuleContext struct {
	invokingState int
	parent        RuleContext
}

func (s *stubRuleContext) GetParent() RuleContext { return s.parent }
func (s *stubRuleContext) GetInvokingState() int  { return s.invokingState }
func (s *stubRuleContext) GetRuleIndex() int      { return 0 }
func (s *stubRuleContext) IsEmpty() bool          { return false }
