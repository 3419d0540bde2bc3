// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLexerTarget struct {
	channel, mode, typ int
	pushed, popped     []int
	moreCalls, skipCalls int
}

func (r *recordingLexerTarget) SetChannel(c int) { r.channel = c }
func (r *recordingLexerTarget) SetMode(m int)    { r.mode = m }
func (r *recordingLexerTarget) SetType(t int)    { r.typ = t }
func (r *recordingLexerTarget) PushMode(m int)   { r.pushed = append(r.pushed, m) }
func (r *recordingLexerTarget) PopMode() int {
	m := r.mode
	r.popped = append(r.popped, m)
	return m
}
func (r *recordingLexerTarget) More() { r.moreCalls++ }
func (r *recordingLexerTarget) Skip() { r.skipCalls++ }

func TestLexerActionsExecuteAgainstTarget(t *testing.T) {
	target := &recordingLexerTarget{}

	NewLexerChannelAction(3).Execute(target)
	assert.Equal(t, 3, target.channel)

	NewLexerModeAction(2).Execute(target)
	assert.Equal(t, 2, target.mode)

	NewLexerTypeAction(99).Execute(target)
	assert.Equal(t, 99, target.typ)

	NewLexerPushModeAction(5).Execute(target)
	assert.Equal(t, []int{5}, target.pushed)

	NewLexerPopModeAction().Execute(target)
	assert.Len(t, target.popped, 1)

	NewLexerMoreAction().Execute(target)
	assert.Equal(t, 1, target.moreCalls)

	NewLexerSkipAction().Execute(target)
	assert.Equal(t, 1, target.skipCalls)
}

func TestLexerCustomActionInvokesRunCallback(t *testing.T) {
	var gotRule, gotAction int
	action := NewLexerCustomAction(7, 2, func(ruleIndex, actionIndex int) {
		gotRule, gotAction = ruleIndex, actionIndex
	})
	action.Execute(&recordingLexerTarget{})
	assert.Equal(t, 7, gotRule)
	assert.Equal(t, 2, gotAction)
	assert.True(t, action.IsPositionDependent())
}

func TestLexerActionEqualsComparesPayload(t *testing.T) {
	assert.True(t, NewLexerTypeAction(1).equals(NewLexerTypeAction(1)))
	assert.False(t, NewLexerTypeAction(1).equals(NewLexerTypeAction(2)))
	assert.False(t, NewLexerTypeAction(1).equals(NewLexerModeAction(1)))
}

func TestLexerActionExecutorRunsActionsInOrder(t *testing.T) {
	target := &recordingLexerTarget{}
	exec := NewLexerActionExecutor([]LexerAction{
		NewLexerModeAction(4),
		NewLexerTypeAction(11),
	})
	exec.Execute(target)
	assert.Equal(t, 4, target.mode)
	assert.Equal(t, 11, target.typ)
}

func TestLexerActionExecutorPositionDependentPropagates(t *testing.T) {
	plain := NewLexerActionExecutor([]LexerAction{NewLexerSkipAction()})
	assert.False(t, plain.positionDependent)

	withCustom := NewLexerActionExecutor([]LexerAction{
		NewLexerSkipAction(),
		NewLexerCustomAction(0, 0, nil),
	})
	assert.True(t, withCustom.positionDependent)
}

func TestAppendLexerActionExecutorPreservesOrderAndLeavesOriginalUnchanged(t *testing.T) {
	base := NewLexerActionExecutor([]LexerAction{NewLexerModeAction(1)})
	appended := AppendLexerActionExecutor(base, NewLexerTypeAction(2))

	require.Len(t, appended.LexerActions, 2)
	assert.Same(t, base.LexerActions[0], appended.LexerActions[0])
	require.Len(t, base.LexerActions, 1, "appending must not mutate the original executor")
}

func TestLexerActionExecutorEqualsComparesActionSequence(t *testing.T) {
	a := NewLexerActionExecutor([]LexerAction{NewLexerModeAction(1), NewLexerTypeAction(2)})
	b := NewLexerActionExecutor([]LexerAction{NewLexerModeAction(1), NewLexerTypeAction(2)})
	c := NewLexerActionExecutor([]LexerAction{NewLexerTypeAction(2), NewLexerModeAction(1)})

	assert.True(t, a.equals(b))
	assert.False(t, a.equals(c))
	assert.False(t, a.equals(nil))
}
