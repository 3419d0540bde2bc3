// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

// SimulatorOption configures a ParserATNSimulator or LexerATNSimulator at
// construction: exact-ambiguity detection and an optional deadline hook,
// each its own small With... func mutating a private config rather than
// global state, so multiple simulators in one process never interfere.
type SimulatorOption func(*simulatorConfig)

// simulatorConfig holds the tunables every SimulatorOption mutates.
type simulatorConfig struct {
	exactAmbiguityDetection bool
	deadline                func() bool
}

func newSimulatorConfig(opts []SimulatorOption) simulatorConfig {
	cfg := simulatorConfig{exactAmbiguityDetection: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithExactAmbiguityDetection toggles whether a detected conflict is further
// classified as exact vs. non-exact (§4.6.2 step 5). Disabled, every conflict
// is treated as non-exact: ReportAmbiguity never fires, and a conflict that
// would have been reported exact instead keeps driving full-context retries
// like any other. Exact-ambiguity detection costs an extra context-set
// comparison per conflict (see isExactConflict in prediction_mode.go); a
// caller that only cares about the SLL/LL failover rate, not the ambiguity
// vs. context-sensitivity distinction, can skip it. Enabled by default.
func WithExactAmbiguityDetection(enabled bool) SimulatorOption {
	return func(c *simulatorConfig) { c.exactAmbiguityDetection = enabled }
}

// WithDeadline installs a hook polled once per symbol the prediction loop
// consumes; once it reports true, prediction aborts with a
// DeadlineExceededError instead of continuing to grind on pathological
// input. A nil hook (the default) disables the check entirely.
func WithDeadline(hook func() bool) SimulatorOption {
	return func(c *simulatorConfig) { c.deadline = hook }
}

// checkDeadline reports whether cfg's deadline hook, if any, has fired.
func (cfg *simulatorConfig) checkDeadline() bool {
	return cfg.deadline != nil && cfg.deadline()
}

// DFAOption configures a DFA at construction.
type DFAOption func(*DFA)

// WithForcePrecedenceDfa overrides a DFA's automatic precedence-DFA
// detection, which otherwise infers PrecedenceDfa from whether start is a
// precedence-rule *StarLoopEntryState. A generated parser that already knows
// the answer can skip that type assertion.
func WithForcePrecedenceDfa(isPrecedenceDfa bool) DFAOption {
	return func(d *DFA) { d.PrecedenceDfa = isPrecedenceDfa }
}
