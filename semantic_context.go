// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import "fmt"

// Recognizer is the minimal collaborator a predicate/precedence-predicate
// evaluation needs from the surrounding parser (SPEC_FULL.md "SUPPLEMENTED
// FEATURES" #5). Production parsers implement it; the core never constructs one.
type Recognizer interface {
	// Sempred evaluates the semantic predicate ruleIndex/predIndex against ctx.
	Sempred(ctx RuleContext, ruleIndex, predIndex int) bool
	// Precpred evaluates a left-recursion precedence guard: is the parser's
	// current precedence >= the alternative's required precedence?
	Precpred(ctx RuleContext, precedence int) bool
}

// SemanticContext is a boolean expression over predicates, attached to an
// ATNConfig when `hasSemanticContext` (§3). The none/always-true context is the
// shared singleton SemanticContextNone.
type SemanticContext interface {
	Eval(recog Recognizer, outerContext RuleContext) bool
	// evalPrecedence specializes away any precedence-predicate leaf given the
	// parser's current precedence, folding to SemanticContextNone when it holds
	// or to nil when it fails. Non-precedence contexts return themselves
	// unchanged.
	evalPrecedence(recog Recognizer, outerContext RuleContext) SemanticContext
	String() string
	hash() int
	equals(other SemanticContext) bool
}

// semanticContextNone is the trivially-true context; most configs carry this
// (never allocated per-config; see SemanticContextNone below).
type semanticContextNone struct{}

func (semanticContextNone) Eval(Recognizer, RuleContext) bool { return true }
func (s semanticContextNone) evalPrecedence(Recognizer, RuleContext) SemanticContext {
	return s
}
func (semanticContextNone) String() string { return "" }
func (semanticContextNone) hash() int      { return 1 }
func (s semanticContextNone) equals(other SemanticContext) bool {
	_, ok := other.(semanticContextNone)
	return ok
}

// SemanticContextNone is the canonical "no predicate" leaf.
var SemanticContextNone SemanticContext = semanticContextNone{}

// PredicateSemanticContext wraps a single {...}? semantic predicate.
type PredicateSemanticContext struct {
	RuleIndex, PredIndex int
	IsCtxDependent       bool
}

func (p *PredicateSemanticContext) Eval(recog Recognizer, outerContext RuleContext) bool {
	var ctx RuleContext
	if p.IsCtxDependent {
		ctx = outerContext
	}
	return recog.Sempred(ctx, p.RuleIndex, p.PredIndex)
}
func (p *PredicateSemanticContext) evalPrecedence(Recognizer, RuleContext) SemanticContext {
	return p
}
func (p *PredicateSemanticContext) String() string {
	return fmt.Sprintf("{%d:%d}?", p.RuleIndex, p.PredIndex)
}
func (p *PredicateSemanticContext) hash() int {
	return p.RuleIndex*31 + p.PredIndex
}
func (p *PredicateSemanticContext) equals(other SemanticContext) bool {
	o, ok := other.(*PredicateSemanticContext)
	return ok && o.RuleIndex == p.RuleIndex && o.PredIndex == p.PredIndex && o.IsCtxDependent == p.IsCtxDependent
}

// PrecedencePredicateSemanticContext implements `{precedence >= N}?` guards on
// left-recursive alternatives (SPEC_FULL.md supplemented feature #4).
type PrecedencePredicateSemanticContext struct {
	Precedence int
}

func (p *PrecedencePredicateSemanticContext) Eval(recog Recognizer, outerContext RuleContext) bool {
	return recog.Precpred(outerContext, p.Precedence)
}
func (p *PrecedencePredicateSemanticContext) evalPrecedence(recog Recognizer, outerContext RuleContext) SemanticContext {
	if recog.Precpred(outerContext, p.Precedence) {
		return SemanticContextNone
	}
	return nil
}
func (p *PrecedencePredicateSemanticContext) String() string {
	return fmt.Sprintf("{%d>=prec}?", p.Precedence)
}
func (p *PrecedencePredicateSemanticContext) hash() int { return p.Precedence * 37 }
func (p *PrecedencePredicateSemanticContext) equals(other SemanticContext) bool {
	o, ok := other.(*PrecedencePredicateSemanticContext)
	return ok && o.Precedence == p.Precedence
}

// AndSemanticContext requires every operand to hold.
type AndSemanticContext struct{ Opnds []SemanticContext }

// SemanticContextAnd builds the conjunction of a and b, flattening nested Ands
// and dropping SemanticContextNone operands (it contributes nothing).
func SemanticContextAnd(a, b SemanticContext) SemanticContext {
	return combine(a, b, func(o []SemanticContext) SemanticContext {
		if len(o) == 1 {
			return o[0]
		}
		return &AndSemanticContext{Opnds: o}
	}, func(ctx SemanticContext) ([]SemanticContext, bool) {
		and, ok := ctx.(*AndSemanticContext)
		if !ok {
			return nil, false
		}
		return and.Opnds, true
	})
}

func (a *AndSemanticContext) Eval(recog Recognizer, outerContext RuleContext) bool {
	for _, o := range a.Opnds {
		if !o.Eval(recog, outerContext) {
			return false
		}
	}
	return true
}
func (a *AndSemanticContext) evalPrecedence(recog Recognizer, outerContext RuleContext) SemanticContext {
	changed := false
	out := make([]SemanticContext, 0, len(a.Opnds))
	for _, o := range a.Opnds {
		r := o.evalPrecedence(recog, outerContext)
		changed = changed || r != o
		if r == nil {
			return nil // a conjunct failed outright: the whole conjunction fails
		}
		if r != SemanticContextNone {
			out = append(out, r)
		}
	}
	if !changed {
		return a
	}
	if len(out) == 0 {
		return SemanticContextNone
	}
	result := out[0]
	for _, o := range out[1:] {
		result = SemanticContextAnd(result, o)
	}
	return result
}
func (a *AndSemanticContext) String() string { return joinOpnds(a.Opnds, "&&") }
func (a *AndSemanticContext) hash() int      { return hashOpnds(a.Opnds, 7) }
func (a *AndSemanticContext) equals(other SemanticContext) bool {
	o, ok := other.(*AndSemanticContext)
	return ok && opndsEqual(a.Opnds, o.Opnds)
}

// OrSemanticContext requires at least one operand to hold.
type OrSemanticContext struct{ Opnds []SemanticContext }

func SemanticContextOr(a, b SemanticContext) SemanticContext {
	return combine(a, b, func(o []SemanticContext) SemanticContext {
		if len(o) == 1 {
			return o[0]
		}
		return &OrSemanticContext{Opnds: o}
	}, func(ctx SemanticContext) ([]SemanticContext, bool) {
		or, ok := ctx.(*OrSemanticContext)
		if !ok {
			return nil, false
		}
		return or.Opnds, true
	})
}

func (o *OrSemanticContext) Eval(recog Recognizer, outerContext RuleContext) bool {
	for _, opnd := range o.Opnds {
		if opnd.Eval(recog, outerContext) {
			return true
		}
	}
	return false
}
func (o *OrSemanticContext) evalPrecedence(recog Recognizer, outerContext RuleContext) SemanticContext {
	changed := false
	out := make([]SemanticContext, 0, len(o.Opnds))
	for _, opnd := range o.Opnds {
		r := opnd.evalPrecedence(recog, outerContext)
		changed = changed || r != opnd
		if r == SemanticContextNone {
			return SemanticContextNone // a disjunct always holds: the whole disjunction holds
		}
		if r != nil {
			out = append(out, r)
		}
	}
	if !changed {
		return o
	}
	if len(out) == 0 {
		return nil
	}
	result := out[0]
	for _, opnd := range out[1:] {
		result = SemanticContextOr(result, opnd)
	}
	return result
}
func (o *OrSemanticContext) String() string { return joinOpnds(o.Opnds, "||") }
func (o *OrSemanticContext) hash() int      { return hashOpnds(o.Opnds, 13) }
func (o *OrSemanticContext) equals(other SemanticContext) bool {
	oo, ok := other.(*OrSemanticContext)
	return ok && opndsEqual(o.Opnds, oo.Opnds)
}

func combine(a, b SemanticContext, build func([]SemanticContext) SemanticContext, unwrap func(SemanticContext) ([]SemanticContext, bool)) SemanticContext {
	if a == SemanticContextNone || a == nil {
		return b
	}
	if b == SemanticContextNone || b == nil {
		return a
	}
	if a.equals(b) {
		return a
	}
	var out []SemanticContext
	if opnds, ok := unwrap(a); ok {
		out = append(out, opnds...)
	} else {
		out = append(out, a)
	}
	if opnds, ok := unwrap(b); ok {
		out = append(out, opnds...)
	} else {
		out = append(out, b)
	}
	return build(dedupe(out))
}

func dedupe(in []SemanticContext) []SemanticContext {
	out := make([]SemanticContext, 0, len(in))
	for _, c := range in {
		dup := false
		for _, o := range out {
			if c.equals(o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}

func joinOpnds(opnds []SemanticContext, sep string) string {
	s := ""
	for i, o := range opnds {
		if i > 0 {
			s += sep
		}
		s += o.String()
	}
	return s
}

func hashOpnds(opnds []SemanticContext, seed int) int {
	h := seed
	for _, o := range opnds {
		h = h*31 + o.hash()
	}
	return h
}

func opndsEqual(a, b []SemanticContext) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].equals(b[i]) {
			return false
		}
	}
	return true
}
