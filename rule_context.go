// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

// RuleContext is the minimal view of a parser's rule-invocation stack the core
// needs in order to lift it into a PredictionContext (§4.1 fromRuleContext) or to
// walk it for getExpectedTokens/precedence-predicate evaluation. Full parse-tree
// construction, listeners, and error recovery are out of scope (§1) and live on
// richer types outside this module that satisfy this interface.
type RuleContext interface {
	GetParent() RuleContext
	GetInvokingState() int
	GetRuleIndex() int
	IsEmpty() bool
}

// EmptyRuleContext is the canonical zero-value RuleContext: no parent, no
// invoking state. fromRuleContext treats it as the outermost frame.
type EmptyRuleContext struct{}

func (EmptyRuleContext) GetParent() RuleContext { return nil }
func (EmptyRuleContext) GetInvokingState() int  { return -1 }
func (EmptyRuleContext) GetRuleIndex() int      { return -1 }
func (EmptyRuleContext) IsEmpty() bool          { return true }
