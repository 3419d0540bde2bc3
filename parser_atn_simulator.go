// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

// ParserATNSimulator implements adaptive LL(*) prediction (§4.6.2): try SLL
// first, and only fail over to the expensive full-context LL walk when SLL's
// own config sets can't agree on a unique alternative. Every DFA it builds is
// owned by the caller (typically one per parser-generated decision, shared
// across every parse using that grammar, §5) and is safe for concurrent use by
// multiple simulators predicting different decisions, or the same decision
// from different input, at once.
type ParserATNSimulator struct {
	ATNSimulatorBase

	Recog         Recognizer
	DecisionToDFA []*DFA
	Listener      *ProxyErrorListener

	config   simulatorConfig
	observer simulatorObserver
}

// simulatorObserver receives fine-grained prediction events for profiling
// (§6) without either exec loop needing to know profiling exists beyond this
// one optional hook — same shape as Listener, but for events that aren't
// themselves diagnostics.
type simulatorObserver interface {
	onTransition(dfa *DFA, fromDFA bool)
	onPredicateEval(dfa *DFA, hasContext bool, alt int, result bool)
	onConflictDetected(dfa *DFA)
}

// SetObserver installs o to receive transition, predicate-evaluation, and
// conflict events as prediction runs. Only ProfilingATNSimulator calls this;
// a nil observer (the default) costs one nil check per event.
func (p *ParserATNSimulator) SetObserver(o simulatorObserver) {
	p.observer = o
}

// NewParserATNSimulator builds a simulator over atn with one DFA per decision.
func NewParserATNSimulator(atn *ATN, cache *PredictionContextCache, recog Recognizer, opts ...SimulatorOption) *ParserATNSimulator {
	dfas := make([]*DFA, len(atn.DecisionToState))
	for i, ds := range atn.DecisionToState {
		dfas[i] = NewDFA(ds, i, TokenEOF, atn.maxTokenType, len(atn.states))
	}
	return &ParserATNSimulator{
		ATNSimulatorBase: ATNSimulatorBase{Atn: atn, SharedContextCache: cache},
		Recog:            recog,
		DecisionToDFA:    dfas,
		Listener:         NewProxyErrorListener(),
		config:           newSimulatorConfig(opts),
	}
}

// AdaptivePredict resolves decision against input, starting at input's current
// position and leaving it there on return (the caller drives actual
// consumption once the chosen alternative is known). precedence is the
// parser's current precedence level, consulted only when the decision is a
// left-recursive rule's precedence DFA (§4.5); pass 0 otherwise.
func (p *ParserATNSimulator) AdaptivePredict(input IntStream, decision, precedence int, outerContext RuleContext) (int, error) {
	if outerContext == nil {
		outerContext = EmptyRuleContext{}
	}
	dfa := p.DecisionToDFA[decision]
	predictTracer().Debugf("adaptivePredict decision=%d precedence=%d at input index %d", decision, precedence, input.Index())

	startIndex := input.Index()
	mark := input.Mark()
	defer func() {
		input.Seek(startIndex)
		input.Release(mark)
	}()

	s0 := p.startState(dfa, precedence, false, outerContext)
	if s0 == nil {
		configs := p.computeStartState(dfa.ATNStartState, outerContext, false, precedence)
		s0 = p.installStartState(dfa, precedence, false, configs)
	}

	alt, conflictState, conflictSymbol, err := p.execSLL(input, dfa, s0)
	if err != nil {
		return 0, err
	}
	if conflictState == nil {
		return alt, nil
	}

	// SLL couldn't settle it on its own; retry with full context from the mark
	// the caller's position was at (§4.6.2 step 4 "Mark input position" / "Reset
	// input to mark").
	input.Seek(startIndex)
	llAlt, err := p.execFullContext(input, dfa, precedence, outerContext, alt)
	if err != nil {
		return 0, err
	}
	if llAlt != alt {
		conflictState.MarkContextSensitive(conflictSymbol)
	}
	return llAlt, nil
}

func (p *ParserATNSimulator) startState(dfa *DFA, precedence int, fullCtx bool, outerContext RuleContext) *DFAState {
	if dfa.PrecedenceDfa {
		return dfa.GetPrecedenceStartState(precedence, fullCtx)
	}
	if fullCtx {
		return dfa.S0Full()
	}
	return dfa.S0()
}

func (p *ParserATNSimulator) installStartState(dfa *DFA, precedence int, fullCtx bool, configs *ATNConfigSet) *DFAState {
	if ci := detectConflict(configs, p.config.exactAmbiguityDetection); ci != nil {
		configs.ConflictInfo = ci
	}
	configs.Seal()
	s := dfa.NewDFAState(configs)
	p.attachAccept(s, configs)
	s = dfa.AddState(s)
	if dfa.PrecedenceDfa {
		dfa.SetPrecedenceStartState(precedence, fullCtx, s)
		return s
	}
	if fullCtx {
		return dfa.SetS0Full(s)
	}
	return dfa.SetS0(s)
}

// computeStartState seeds one config per alternative leaving decisionState,
// under the given context regime, then closes the set.
func (p *ParserATNSimulator) computeStartState(decisionState ATNState, outerContext RuleContext, fullCtx bool, precedence int) *ATNConfigSet {
	var rootCtx *PredictionContext
	if fullCtx {
		rootCtx = FromRuleContext(p.Atn, outerContext, true)
	} else {
		rootCtx = EmptyLocal
	}
	configs := NewATNConfigSet(fullCtx)
	cc := &closureConfig{jc: NewJoinCache(), recog: p.Recog, outerContext: outerContext, fullCtx: fullCtx}
	for alt, t := range decisionState.GetTransitions() {
		altNum := alt + 1
		if dfaStart, ok := decisionState.(*StarLoopEntryState); ok && dfaStart.PrecedenceRuleDecision {
			// Each alternative of a left-recursive rule implicitly guards on
			// precedence; configs whose required precedence already fails are
			// dropped here rather than surviving to be filtered later (§4.5).
			if !p.precedenceSatisfied(t, precedence) {
				continue
			}
		}
		seed := NewATNConfig(t.GetTarget(), altNum, rootCtx)
		closure(configs, seed, cc)
	}
	return configs
}

// precedenceSatisfied reports whether t's target, if it leads immediately
// through a PrecedencePredicateTransition, already admits precedence — a cheap
// static check; the dynamic predicate is still attached and re-checked at
// accept time for paths this can't resolve statically.
func (p *ParserATNSimulator) precedenceSatisfied(t Transition, precedence int) bool {
	target := t.GetTarget()
	for _, ot := range target.GetTransitions() {
		if pt, ok := ot.(*PrecedencePredicateTransition); ok {
			return precedence >= pt.Precedence
		}
	}
	return true
}

// execSLL walks the DFA under SLL semantics. When a conflict surfaces that SLL
// can't resolve on its own, it returns the DFAState it was sitting on and the
// pending input symbol there, alongside its best-guess (minimum) alternative,
// so the caller can retry under full context and compare; conflictState is nil
// whenever alt was settled directly.
func (p *ParserATNSimulator) execSLL(input IntStream, dfa *DFA, s0 *DFAState) (alt int, conflictState *DFAState, conflictSymbol int, err error) {
	cur := s0
	startIndex := input.Index()
	for {
		if p.config.checkDeadline() {
			return 0, nil, 0, &DeadlineExceededError{Decision: dfa.DecisionIndex, Index: input.Index()}
		}
		if ai := cur.AcceptInfo(); ai != nil {
			a, ok := p.resolvePredicates(dfa, ai, EmptyRuleContext{})
			if ok {
				return a, nil, 0, nil
			}
		}
		if cur.Configs.ConflictInfo != nil {
			if p.observer != nil {
				p.observer.onConflictDetected(dfa)
			}
			return resolveToMinAlt(cur.Configs.ConflictInfo.AltBitset), cur, input.LA(1), nil
		}

		symbol := input.LA(1)
		target := cur.GetTarget(symbol)
		if target == nil {
			var terr error
			target, terr = p.computeTargetState(dfa, cur, symbol, false, EmptyRuleContext{}, 0)
			if terr != nil {
				return 0, nil, 0, terr
			}
			cur.SetTarget(symbol, target)
			if p.observer != nil {
				p.observer.onTransition(dfa, false)
			}
		} else if p.observer != nil {
			p.observer.onTransition(dfa, true)
		}
		if target == nil {
			return 0, nil, 0, &NoViableAltError{Decision: dfa.DecisionIndex, StartIndex: startIndex, OffendingIndex: input.Index(), Configs: cur.Configs}
		}
		if symbol != TokenEOF {
			input.Consume()
		}
		cur = target
		if symbol == TokenEOF && cur.AcceptInfo() == nil {
			// Input is exhausted and no alternative settled on its own: resolve to
			// the minimum surviving alternative rather than report failure outright
			// (§4.6.2 step 4's "resolve to min alt" applies even without a formally
			// detected conflict once there is no more input left to disambiguate with).
			return resolveToMinAlt(cur.Configs.GetRepresentedAlternatives()), nil, 0, nil
		}
	}
}

// execFullContext re-runs prediction from scratch under full-context LL,
// starting over at startIndex with outerContext actually wired into the root
// prediction context (§4.6.2 step 4). sllAlt is the alternative SLL's conflict
// resolution had guessed; whenever full context settles on something else,
// that is a context sensitivity rather than a genuine ambiguity (§4.6.2 step
// 5), and is reported as such.
func (p *ParserATNSimulator) execFullContext(input IntStream, dfa *DFA, precedence int, outerContext RuleContext, sllAlt int) (int, error) {
	startIndex := input.Index()
	mark := input.Mark()
	defer input.Release(mark)
	input.Seek(startIndex)

	s0 := p.startState(dfa, precedence, true, outerContext)
	if s0 == nil {
		configs := p.computeStartState(dfa.ATNStartState, outerContext, true, precedence)
		s0 = p.installStartState(dfa, precedence, true, configs)
	}

	cur := s0
	for {
		if p.config.checkDeadline() {
			return 0, &DeadlineExceededError{Decision: dfa.DecisionIndex, Index: input.Index()}
		}
		if ai := cur.AcceptInfo(); ai != nil {
			alt, ok := p.resolvePredicates(dfa, ai, outerContext)
			if ok {
				p.reportIfContextSensitive(dfa, alt, sllAlt, cur.Configs, startIndex, input.Index())
				return alt, nil
			}
		}
		if ci := cur.Configs.ConflictInfo; ci != nil {
			if !ci.Exact {
				p.Listener.ReportAttemptingFullContext(dfa, cur.Configs, startIndex, input.Index())
			} else {
				p.Listener.ReportAmbiguity(dfa, startIndex, input.Index(), ci.AltBitset, cur.Configs)
			}
			return resolveToMinAlt(ci.AltBitset), nil
		}

		symbol := input.LA(1)
		target := cur.GetTarget(symbol)
		if target == nil {
			var err error
			target, err = p.computeTargetState(dfa, cur, symbol, true, outerContext, startIndex)
			if err != nil {
				return 0, err
			}
			cur.SetTarget(symbol, target)
			if p.observer != nil {
				p.observer.onTransition(dfa, false)
			}
		} else if p.observer != nil {
			p.observer.onTransition(dfa, true)
		}
		if target == nil {
			return 0, &NoViableAltError{Decision: dfa.DecisionIndex, StartIndex: startIndex, OffendingIndex: input.Index(), Configs: cur.Configs}
		}
		if symbol != TokenEOF {
			input.Consume()
		}
		cur = target
		if symbol == TokenEOF && cur.AcceptInfo() == nil {
			alt := resolveToMinAlt(cur.Configs.GetRepresentedAlternatives())
			p.reportIfContextSensitive(dfa, alt, sllAlt, cur.Configs, startIndex, input.Index())
			return alt, nil
		}
	}
}

// reportIfContextSensitive fires ReportContextSensitivity when the alternative
// full-context LL actually settled on differs from the one SLL's conflict
// resolution had guessed — the decision needed the extra context to get
// right, unlike a genuine ambiguity that no amount of context would resolve.
func (p *ParserATNSimulator) reportIfContextSensitive(dfa *DFA, llAlt, sllAlt int, configs *ATNConfigSet, startIndex, stopIndex int) {
	if llAlt != sllAlt {
		p.Listener.ReportContextSensitivity(dfa, llAlt, configs, startIndex, stopIndex)
	}
}

func (p *ParserATNSimulator) computeTargetState(dfa *DFA, cur *DFAState, symbol int, fullCtx bool, outerContext RuleContext, startIndex int) (*DFAState, error) {
	cc := &closureConfig{jc: NewJoinCache(), recog: p.Recog, outerContext: outerContext, fullCtx: fullCtx}
	reached := reach(cur.Configs, symbol, TokenEOF, p.Atn.maxTokenType, cc)
	if reached.IsEmpty() {
		return nil, nil
	}
	if ci := detectConflict(reached, p.config.exactAmbiguityDetection); ci != nil {
		reached.ConflictInfo = ci
		if !fullCtx {
			p.Listener.ReportAttemptingFullContext(dfa, reached, startIndex, 0)
		}
	}
	reached.Seal()
	target := dfa.NewDFAState(reached)
	p.attachAccept(target, reached)
	return dfa.AddState(target), nil
}

// attachAccept installs AcceptInfo on s when configs is non-empty, carries no
// ConflictInfo, and every config predicts the same alternative. When the set
// carries semantic context, the accept info also gets a predicate table to
// check at accept time.
func (p *ParserATNSimulator) attachAccept(s *DFAState, configs *ATNConfigSet) {
	if configs.ConflictInfo != nil || configs.IsEmpty() {
		return
	}
	alt := configs.UniqueAlt()
	if alt == invalidAltNumber {
		// More than one alternative still survives and no conflict was detected:
		// further lookahead could still disambiguate, so this state is not an
		// accept state yet (the exec loop keeps consuming input).
		return
	}
	if !configs.HasSemanticContext {
		s.SetAcceptInfo(&AcceptInfo{PredictedAlt: alt})
		return
	}
	var guards []PredicateGuard
	seen := newBitSet()
	for _, c := range configs.Configs() {
		if seen.contains(c.Alt) {
			continue
		}
		seen.add(c.Alt)
		guards = append(guards, PredicateGuard{Pred: c.SemCtx, Alt: c.Alt})
	}
	s.SetAcceptInfo(&AcceptInfo{PredictedAlt: alt, Predicates: guards})
}

// resolvePredicates evaluates an accept state's predicate disjuncts in order,
// returning the first alternative whose guard holds (§4.6.2 "Predicate
// evaluation"). A state with no predicate table always resolves immediately.
func (p *ParserATNSimulator) resolvePredicates(dfa *DFA, ai *AcceptInfo, outerContext RuleContext) (int, bool) {
	if len(ai.Predicates) == 0 {
		return ai.PredictedAlt, true
	}
	for _, g := range ai.Predicates {
		result := g.Pred == nil || g.Pred == SemanticContextNone || g.Pred.Eval(p.Recog, outerContext)
		if p.observer != nil {
			p.observer.onPredicateEval(dfa, g.Pred != nil && g.Pred != SemanticContextNone, g.Alt, result)
		}
		if result {
			return g.Alt, true
		}
	}
	return invalidAltNumber, false
}
