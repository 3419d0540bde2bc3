// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

// ErrorListener receives diagnostic callbacks from prediction (§7): none of
// these abort the parse — they are purely observational, fired for an IDE,
// logger, or test harness to record or display.
type ErrorListener interface {
	SyntaxError(recognizer Recognizer, offendingSymbol interface{}, line, column int, msg string)
	ReportAmbiguity(dfa *DFA, startIndex, stopIndex int, ambigAlts *bitSet, configs *ATNConfigSet)
	ReportAttemptingFullContext(dfa *DFA, configs *ATNConfigSet, startIndex, stopIndex int)
	ReportContextSensitivity(dfa *DFA, prediction int, configs *ATNConfigSet, startIndex, stopIndex int)
}

// ProxyErrorListener fans callbacks out to every registered delegate, in
// registration order, swallowing a delegate panic so one misbehaving listener
// never aborts prediction for every other listener — or the parse itself
// (§7: diagnostics must be best-effort).
type ProxyErrorListener struct {
	delegates []ErrorListener
}

func NewProxyErrorListener() *ProxyErrorListener {
	return &ProxyErrorListener{}
}

func (p *ProxyErrorListener) AddListener(l ErrorListener) {
	if l != nil {
		p.delegates = append(p.delegates, l)
	}
}

func (p *ProxyErrorListener) dispatch(f func(ErrorListener)) {
	for _, d := range p.delegates {
		p.safeCall(d, f)
	}
}

func (p *ProxyErrorListener) safeCall(d ErrorListener, f func(ErrorListener)) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("error listener panicked, ignoring: %v", r)
		}
	}()
	f(d)
}

func (p *ProxyErrorListener) SyntaxError(recognizer Recognizer, offendingSymbol interface{}, line, column int, msg string) {
	p.dispatch(func(d ErrorListener) { d.SyntaxError(recognizer, offendingSymbol, line, column, msg) })
}

func (p *ProxyErrorListener) ReportAmbiguity(dfa *DFA, startIndex, stopIndex int, ambigAlts *bitSet, configs *ATNConfigSet) {
	predictTracer().Infof("ambiguity at decision %d, input[%d:%d], alts=%s", dfa.DecisionIndex, startIndex, stopIndex, ambigAlts)
	p.dispatch(func(d ErrorListener) { d.ReportAmbiguity(dfa, startIndex, stopIndex, ambigAlts, configs) })
}

func (p *ProxyErrorListener) ReportAttemptingFullContext(dfa *DFA, configs *ATNConfigSet, startIndex, stopIndex int) {
	predictTracer().Debugf("attempting full context at decision %d, input[%d:%d]", dfa.DecisionIndex, startIndex, stopIndex)
	p.dispatch(func(d ErrorListener) { d.ReportAttemptingFullContext(dfa, configs, startIndex, stopIndex) })
}

func (p *ProxyErrorListener) ReportContextSensitivity(dfa *DFA, prediction int, configs *ATNConfigSet, startIndex, stopIndex int) {
	predictTracer().Debugf("context sensitivity at decision %d, input[%d:%d], alt=%d", dfa.DecisionIndex, startIndex, stopIndex, prediction)
	p.dispatch(func(d ErrorListener) { d.ReportContextSensitivity(dfa, prediction, configs, startIndex, stopIndex) })
}
