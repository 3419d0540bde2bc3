// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

// Accepted lexer actions run against the Recognizer when it implements
// LexerActionExecutorTarget, which is declared in lexer_action.go.

// LexerATNSimulator drives §4.6.1: for one input mode, walk a per-mode DFA
// (building it lazily from the ATN exactly like the parser simulator builds
// its per-decision DFA), tracking the longest match seen so far so that a
// dead end after some accept position still resolves to that earlier token.
type LexerATNSimulator struct {
	ATNSimulatorBase

	// DecisionToDFA holds one DFA per lexer mode, indexed the same way
	// ATN.modeToStartState is.
	DecisionToDFA []*DFA

	Recog Recognizer

	mode int

	config simulatorConfig
}

// NewLexerATNSimulator builds a simulator over atn, with one DFA per mode.
func NewLexerATNSimulator(atn *ATN, cache *PredictionContextCache, opts ...SimulatorOption) *LexerATNSimulator {
	dfas := make([]*DFA, len(atn.modeToStartState))
	for i, start := range atn.modeToStartState {
		dfas[i] = NewDFA(start, i, 0, atn.maxTokenType, len(atn.states))
	}
	return &LexerATNSimulator{
		ATNSimulatorBase: ATNSimulatorBase{Atn: atn, SharedContextCache: cache},
		DecisionToDFA:    dfas,
		config:           newSimulatorConfig(opts),
	}
}

// Lexer configs all carry invalidAltNumber as their alt; the rule a match
// belongs to is read from the rule index of the accepting RuleStopState when
// the accept info is built (see computeTargetState).

// Match runs the lexer DFA for one mode starting at input's current position,
// returning the rule index of the longest match and leaving input positioned
// just past it (or returns a *NoViableAltError and leaves input untouched).
func (l *LexerATNSimulator) Match(input CharStream, mode int) (int, error) {
	l.mode = mode
	dfa := l.DecisionToDFA[mode]

	s0 := dfa.S0()
	if s0 == nil {
		startIndex := input.Index()
		configs := NewATNConfigSet(false)
		cc := &closureConfig{jc: NewJoinCache(), recog: l.Recog, fullCtx: false, evalPredsNow: true, lexerActions: l.Atn.lexerActions}
		seed := NewATNConfig(dfa.ATNStartState, invalidAltNumber, EmptyLocal)
		closure(configs, seed, cc)
		configs.Seal()
		s0 = dfa.SetS0(dfa.NewDFAState(configs))
		input.Seek(startIndex)
	}

	return l.execATN(input, s0)
}

func (l *LexerATNSimulator) execATN(input CharStream, s0 *DFAState) (int, error) {
	startIndex := input.Index()
	prevAcceptIndex := -1
	var prevAcceptInfo *AcceptInfo

	if ai := s0.AcceptInfo(); ai != nil {
		prevAcceptIndex = input.Index()
		prevAcceptInfo = ai
	}

	cur := s0
	for {
		if l.config.checkDeadline() {
			return 0, &DeadlineExceededError{Decision: l.mode, Index: input.Index()}
		}
		symbol := input.LA(1)
		target := cur.GetTarget(symbol)
		if target == nil {
			var err error
			target, err = l.computeTargetState(cur, symbol, input)
			if err != nil {
				return 0, err
			}
			cur.SetTarget(symbol, target)
		}
		if target == nil {
			break
		}
		if symbol != EOF {
			input.Consume()
		}
		if ai := target.AcceptInfo(); ai != nil {
			prevAcceptIndex = input.Index()
			prevAcceptInfo = ai
		}
		cur = target
		if symbol == EOF {
			break
		}
	}

	if prevAcceptInfo == nil {
		lexerTracer().Debugf("no viable token starting at input index %d", startIndex)
		offending := input.Index()
		input.Seek(startIndex)
		return 0, &NoViableAltError{Decision: l.mode, StartIndex: startIndex, OffendingIndex: offending}
	}

	input.Seek(prevAcceptIndex)
	if prevAcceptInfo.LexerActionExecutor != nil {
		if target, ok := l.Recog.(LexerActionExecutorTarget); ok {
			prevAcceptInfo.LexerActionExecutor.Execute(target)
		}
	}
	return prevAcceptInfo.PredictedAlt, nil
}

// computeTargetState builds the DFAState reached by consuming symbol from cur,
// interning it into cur's owning DFA. A dead end (no config survives) returns
// a nil target.
func (l *LexerATNSimulator) computeTargetState(cur *DFAState, symbol int, input CharStream) (*DFAState, error) {
	cc := &closureConfig{jc: NewJoinCache(), recog: l.Recog, fullCtx: false, evalPredsNow: true, lexerActions: l.Atn.lexerActions}
	reached := reach(cur.Configs, symbol, 0, l.Atn.maxTokenType, cc)
	if reached.IsEmpty() {
		return nil, nil
	}
	reached.Seal()
	dfa := l.DecisionToDFA[l.mode]
	target := dfa.AddState(dfa.NewDFAState(reached))
	if accept := firstRuleStopConfig(reached); accept != nil {
		target.SetAcceptInfo(&AcceptInfo{
			PredictedAlt:        accept.State.GetRuleIndex(),
			LexerActionExecutor: accept.LexerActionExecutor,
		})
	}
	return target, nil
}

// firstRuleStopConfig returns the first config (in insertion order) whose
// state is a RuleStopState — lexer rules are tried in declaration order, so
// the earliest rule to reach its stop state wins (§4.6.1, greedy semantics).
func firstRuleStopConfig(configs *ATNConfigSet) *ATNConfig {
	for _, c := range configs.Configs() {
		if _, ok := c.State.(*RuleStopState); ok {
			return c
		}
	}
	return nil
}
