// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import "github.com/npillmayer/schuko/tracing"

// tracer returns the trace sink for the config/context subsystem: construction,
// merging, and interning of prediction contexts and configs.
func tracer() tracing.Trace {
	return tracing.Select("atn.config")
}

// dfaTracer returns the trace sink for DFA construction and state interning.
func dfaTracer() tracing.Trace {
	return tracing.Select("atn.dfa")
}

// predictTracer returns the trace sink for the adaptive prediction loop itself:
// SLL attempts, LL failover, conflict/ambiguity detection.
func predictTracer() tracing.Trace {
	return tracing.Select("atn.predict")
}

// lexerTracer returns the trace sink for lexer-mode DFA simulation.
func lexerTracer() tracing.Trace {
	return tracing.Select("atn.lexer")
}
