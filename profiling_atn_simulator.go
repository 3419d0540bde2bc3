// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import "time"

// DecisionInfo accumulates per-decision statistics across the lifetime of a
// ProfilingATNSimulator (§6 Profiling). Lookahead is the number of input
// symbols AdaptivePredict examined before the decision settled, summed over
// the SLL pass and, when one runs, the full-context LL pass;
// ContextSensitivities and Ambiguities distinguish the two outcomes that
// matter for the SLL/LL failover rate an author tuning a grammar cares about.
// Conflicts counts every time SLL hit a structural conflict and had to retry
// under full context, whether that retry eventually settled quietly (neither
// Ambiguities nor ContextSensitivities fires), resolved a context sensitivity,
// or surfaced a genuine ambiguity — Conflicts is always >= the other two's sum.
type DecisionInfo struct {
	Decision int

	Invocations  int64
	TimeNs       int64
	Lookahead    int64
	MinLookahead int64
	MaxLookahead int64

	DFATransitions int64
	ATNTransitions int64

	PredicateEvals []PredicateEvalInfo

	Conflicts            int64
	ContextSensitivities int64
	Ambiguities          int64
	Errors               int64
}

// PredicateEvalInfo records one semantic-predicate evaluation (§4.6.2
// "Predicate evaluation"): which alternative its guard belonged to, whether
// the guard was a real predicate rather than the always-true placeholder
// (HasContext), and whether it held.
type PredicateEvalInfo struct {
	Alt        int
	HasContext bool
	Result     bool
}

// ProfilingATNSimulator wraps a ParserATNSimulator, recording one DecisionInfo
// per decision without altering the predicted result (§6: "a profiling
// decorator wraps the parser simulator").
type ProfilingATNSimulator struct {
	*ParserATNSimulator

	Decisions []*DecisionInfo
}

// NewProfilingATNSimulator wraps inner, allocating one DecisionInfo slot per
// decision inner's ATN defines, and registers a listener and an observer on
// inner so ambiguity, context-sensitivity, transition, and predicate-eval
// counts all land on the right decision's DecisionInfo without this type
// having to re-detect any of them, or reimplement prediction, itself.
func NewProfilingATNSimulator(inner *ParserATNSimulator) *ProfilingATNSimulator {
	decisions := make([]*DecisionInfo, len(inner.DecisionToDFA))
	for i := range decisions {
		decisions[i] = &DecisionInfo{Decision: i}
	}
	p := &ProfilingATNSimulator{ParserATNSimulator: inner, Decisions: decisions}
	l := &profilingListener{p: p}
	inner.Listener.AddListener(l)
	inner.SetObserver(l)
	return p
}

// profilingListener is both the ErrorListener and the simulatorObserver this
// type registers on the wrapped simulator, tallying everything §6 asks for
// per decision without either interface needing to know the other exists.
type profilingListener struct {
	p *ProfilingATNSimulator
}

func (l *profilingListener) SyntaxError(Recognizer, interface{}, int, int, string) {}

func (l *profilingListener) ReportAmbiguity(dfa *DFA, startIndex, stopIndex int, ambigAlts *bitSet, configs *ATNConfigSet) {
	l.p.Decisions[dfa.DecisionIndex].Ambiguities++
}

func (l *profilingListener) ReportAttemptingFullContext(dfa *DFA, configs *ATNConfigSet, startIndex, stopIndex int) {
}

func (l *profilingListener) ReportContextSensitivity(dfa *DFA, prediction int, configs *ATNConfigSet, startIndex, stopIndex int) {
	l.p.Decisions[dfa.DecisionIndex].ContextSensitivities++
}

func (l *profilingListener) onTransition(dfa *DFA, fromDFA bool) {
	info := l.p.Decisions[dfa.DecisionIndex]
	if fromDFA {
		info.DFATransitions++
	} else {
		info.ATNTransitions++
	}
}

func (l *profilingListener) onPredicateEval(dfa *DFA, hasContext bool, alt int, result bool) {
	info := l.p.Decisions[dfa.DecisionIndex]
	info.PredicateEvals = append(info.PredicateEvals, PredicateEvalInfo{Alt: alt, HasContext: hasContext, Result: result})
}

func (l *profilingListener) onConflictDetected(dfa *DFA) {
	l.p.Decisions[dfa.DecisionIndex].Conflicts++
}

// AdaptivePredict times and records one prediction, then delegates to the
// wrapped simulator for the actual algorithm — this type never reimplements
// prediction, only observes it (§9 DESIGN NOTES: "never reimplement the
// prediction loop a second time for profiling").
func (p *ProfilingATNSimulator) AdaptivePredict(input IntStream, decision, precedence int, outerContext RuleContext) (int, error) {
	info := p.Decisions[decision]
	transitionsBefore := info.DFATransitions + info.ATNTransitions
	started := monotonicNow()

	alt, err := p.ParserATNSimulator.AdaptivePredict(input, decision, precedence, outerContext)

	elapsed := monotonicNow() - started
	info.Invocations++
	info.TimeNs += elapsed

	// AdaptivePredict restores the input position, so lookahead is taken from
	// the symbol transitions the exec loops reported during this call.
	look := info.DFATransitions + info.ATNTransitions - transitionsBefore
	if look < 0 {
		look = 0
	}
	recordLookahead(&info.Lookahead, &info.MinLookahead, &info.MaxLookahead, look, info.Invocations)

	if err != nil {
		info.Errors++
	}
	return alt, err
}

func recordLookahead(total, min, max *int64, look, invocations int64) {
	*total += look
	if invocations == 1 || look < *min {
		*min = look
	}
	if look > *max {
		*max = look
	}
}

// monotonicNow is the sole clock read in the package, isolated so a caller
// embedding this module somewhere Date.now()-style wall-clock substitution
// matters (e.g. deterministic replay) has one place to override (§9 Open
// Question: "profiling's clock source makes no monotonicity promise beyond
// what time.Since already gives").
func monotonicNow() int64 {
	return time.Now().UnixNano()
}
