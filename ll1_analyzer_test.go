// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLL1AnalyzerLookReturnsDirectAtomLabels(t *testing.T) {
	a := NewATN(GrammarTypeParser, 10)
	s := NewBasicState()
	a.addState(s)
	end := NewBasicState()
	a.addState(end)
	s.AddTransition(NewAtomTransition(end, 5))

	set := NewLL1Analyzer(a).Look(s, nil, nil)
	assert.True(t, set.Contains(5))
	assert.Equal(t, 1, set.Len())
}

func TestLL1AnalyzerLookAtRuleStopWithNilContextYieldsEpsilon(t *testing.T) {
	a := NewATN(GrammarTypeParser, 10)
	s := NewBasicState()
	a.addState(s)
	stop := NewRuleStopState()
	a.addState(stop)
	s.AddTransition(NewEpsilonTransition(stop))

	set := NewLL1Analyzer(a).Look(s, nil, nil)
	assert.True(t, set.Contains(TokenEpsilon))
}

func TestLL1AnalyzerLookThroughWildcard(t *testing.T) {
	a := NewATN(GrammarTypeParser, 5)
	s := NewBasicState()
	a.addState(s)
	end := NewBasicState()
	a.addState(end)
	s.AddTransition(NewWildcardTransition(end))

	set := NewLL1Analyzer(a).Look(s, nil, nil)
	assert.True(t, set.Contains(0))
	assert.True(t, set.Contains(5))
}

func TestLL1AnalyzerLookThroughNotSetComplements(t *testing.T) {
	a := NewATN(GrammarTypeParser, 5)
	s := NewBasicState()
	a.addState(s)
	end := NewBasicState()
	a.addState(end)
	excluded := NewIntervalSetFromRanges(2, 2)
	s.AddTransition(NewNotSetTransition(end, excluded))

	set := NewLL1Analyzer(a).Look(s, nil, nil)
	assert.True(t, set.Contains(0))
	assert.False(t, set.Contains(2))
	assert.True(t, set.Contains(5))
}

// mutually recursive rules must not send Look into an infinite loop: the
// (state, context) busy set catches the cycle on the second visit.
func TestLL1AnalyzerLookTerminatesOnMutualRuleRecursion(t *testing.T) {
	a := NewATN(GrammarTypeParser, 10)

	startA := NewRuleStartState()
	a.addState(startA)
	startA.SetRuleIndex(0)
	stopA := NewRuleStopState()
	a.addState(stopA)

	startB := NewRuleStartState()
	a.addState(startB)
	startB.SetRuleIndex(1)
	stopB := NewRuleStopState()
	a.addState(stopB)

	startA.AddTransition(NewRuleTransition(startB, 1, 0, stopA))
	startB.AddTransition(NewRuleTransition(startA, 0, 0, stopB))

	done := make(chan *IntervalSet, 1)
	go func() { done <- NewLL1Analyzer(a).Look(startA, nil, nil) }()

	select {
	case set := <-done:
		require.NotNil(t, set)
	case <-time.After(2 * time.Second):
		t.Fatal("Look did not terminate on mutually recursive rules")
	}
}

func TestLL1AnalyzerAddFollowingViaStopState(t *testing.T) {
	a := NewATN(GrammarTypeParser, 10)
	s := NewBasicState()
	a.addState(s)

	la := NewLL1Analyzer(a)
	ctx := EmptyLocal.getChild(42)
	r := NewIntervalSet()
	la.look(s, s, ctx, r, make(map[lookKey]bool), newBitSet(), true, true)
	assert.True(t, r.Contains(42))
}

func TestATNGetExpectedTokensFoldsEOFWhenRuleFallsThrough(t *testing.T) {
	a := NewATN(GrammarTypeParser, 10)
	s := NewBasicState()
	a.addState(s)
	stop := NewRuleStopState()
	a.addState(stop)
	s.AddTransition(NewEpsilonTransition(stop))

	expected := a.getExpectedTokens(s.GetStateNumber(), nil)
	assert.True(t, expected.Contains(TokenEOF))
}
