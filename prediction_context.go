// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import "golang.org/x/exp/slices"

// EmptyReturnState is the sentinel return-state value used for an "empty
// alternative" slot inside an otherwise non-empty array context: a rule-stop
// config whose caller popped all the way out to an empty terminator, merged
// alongside sibling alternatives that still have real return states (§4.1 join:
// "insert an empty alternative into the other").
const EmptyReturnState = 1<<31 - 1

type emptyKind uint8

const (
	notEmpty emptyKind = iota
	emptyLocalKind
	emptyFullKind
)

// PredictionContext is one node of the graph-structured prediction stack (§3).
// A node with kind != notEmpty is one of the two distinguished empty terminators;
// every other node is a list of (parent, returnState) pairs sorted by return state.
type PredictionContext struct {
	kind         emptyKind
	parents      []*PredictionContext
	returnStates []int
	cachedHash   int
}

// EmptyLocal is the rule-local empty terminator: the bottom of an SLL-only
// prediction-context stack, used when the parser invocation chain is not known
// (or deliberately ignored, as in SLL prediction).
var EmptyLocal = &PredictionContext{kind: emptyLocalKind, cachedHash: hashEmpty(emptyLocalKind)}

// EmptyFull is the outermost-context empty terminator: the bottom of a stack
// that represents the real, fully-known parser call chain (used once prediction
// fails over to full-context LL, §4.6.2 step 4).
var EmptyFull = &PredictionContext{kind: emptyFullKind, cachedHash: hashEmpty(emptyFullKind)}

func hashEmpty(k emptyKind) int { return 1 + int(k)*977 }

func newSingletonContext(parent *PredictionContext, returnState int) *PredictionContext {
	c := &PredictionContext{
		parents:      []*PredictionContext{parent},
		returnStates: []int{returnState},
	}
	c.cachedHash = computeHash(c)
	return c
}

func newArrayContext(parents []*PredictionContext, returnStates []int) *PredictionContext {
	c := &PredictionContext{parents: parents, returnStates: returnStates}
	c.cachedHash = computeHash(c)
	return c
}

func computeHash(c *PredictionContext) int {
	h := 1
	for i := range c.returnStates {
		ph := 0
		if c.parents[i] != nil {
			ph = c.parents[i].cachedHash
		}
		h = h*31 + ph
		h = h*31 + c.returnStates[i]
	}
	return h
}

// size returns the number of parent/return-state pairs (0 for an empty terminator).
func (c *PredictionContext) size() int { return len(c.returnStates) }

func (c *PredictionContext) getReturnState(i int) int { return c.returnStates[i] }

func (c *PredictionContext) getParent(i int) *PredictionContext { return c.parents[i] }

// findReturnState returns the index of returnState among c's edges, or -1.
func (c *PredictionContext) findReturnState(returnState int) int {
	idx, found := slices.BinarySearch(c.returnStates, returnState)
	if !found {
		return -1
	}
	return idx
}

func (c *PredictionContext) isEmpty() bool { return c.kind != notEmpty }

// hasEmpty reports whether c itself is an empty terminator, or carries an empty
// alternative among its edges (an EmptyReturnState slot produced by join's
// "insert an empty alternative" case).
func (c *PredictionContext) hasEmpty() bool {
	if c.isEmpty() {
		return true
	}
	_, found := slices.BinarySearch(c.returnStates, EmptyReturnState)
	return found
}

// getChild returns a new singleton context whose sole parent is c.
func (c *PredictionContext) getChild(returnState int) *PredictionContext {
	return newSingletonContext(c, returnState)
}

func (c *PredictionContext) hash() int { return c.cachedHash }

// equals is structural equality: the semantic equality required by §3's
// invariant. Pointer identity is checked first as a conservative fast path.
func (c *PredictionContext) equals(other *PredictionContext) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	if c.isEmpty() || other.isEmpty() {
		return c.isEmpty() && other.isEmpty() && c.kind == other.kind
	}
	if c.cachedHash != other.cachedHash || c.size() != other.size() {
		return false
	}
	for i := range c.returnStates {
		if c.returnStates[i] != other.returnStates[i] {
			return false
		}
		if !c.parents[i].equals(other.parents[i]) {
			return false
		}
	}
	return true
}

// --- fromRuleContext (§4.1) -------------------------------------------------

// FromRuleContext lifts a parser's live rule-invocation stack into a
// PredictionContext. An empty (root) rule context becomes EmptyFull when
// fullContext is requested, else EmptyLocal.
func FromRuleContext(atn *ATN, outer RuleContext, fullContext bool) *PredictionContext {
	if outer == nil || outer.IsEmpty() {
		if fullContext {
			return EmptyFull
		}
		return EmptyLocal
	}
	parent := FromRuleContext(atn, outer.GetParent(), fullContext)
	state := atn.states[outer.GetInvokingState()]
	rt := state.GetTransitions()[0].(*RuleTransition)
	return parent.getChild(rt.FollowState().GetStateNumber())
}

// --- join (§4.1) -------------------------------------------------------------

// JoinCache memoizes join(a,b) results within the scope of a single prediction
// call (one SLL or LL closure run), keyed by pointer identity of the operands.
type JoinCache struct {
	entries map[joinKey]*PredictionContext
}

type joinKey struct{ a, b *PredictionContext }

func NewJoinCache() *JoinCache { return &JoinCache{entries: make(map[joinKey]*PredictionContext)} }

// Join computes the structural merge of a and b per §4.1.
func (jc *JoinCache) Join(a, b *PredictionContext) *PredictionContext {
	if a == b {
		return a
	}
	key := joinKey{a, b}
	if r, ok := jc.entries[key]; ok {
		return r
	}
	var result *PredictionContext
	switch {
	case a.isEmpty() || b.isEmpty():
		result = joinWithEmpty(a, b)
	default:
		result = joinNonEmpty(a, b, jc)
	}
	jc.entries[key] = result
	jc.entries[joinKey{b, a}] = result
	tracer().Debugf("join merged context, size=%d", result.size())
	return result
}

func joinWithEmpty(a, b *PredictionContext) *PredictionContext {
	if a.isEmpty() {
		if a.kind == emptyLocalKind {
			return a
		}
		// a is EmptyFull.
		if b.isEmpty() {
			if b.kind == emptyLocalKind {
				return b
			}
			return a
		}
		return addEmptyAlternative(b)
	}
	// b is empty, a is not.
	if b.kind == emptyLocalKind {
		return b
	}
	return addEmptyAlternative(a)
}

// addEmptyAlternative inserts an EmptyReturnState edge (parent nil) into ctx,
// keeping returnStates sorted.
func addEmptyAlternative(ctx *PredictionContext) *PredictionContext {
	if idx := ctx.findReturnState(EmptyReturnState); idx >= 0 {
		return ctx
	}
	parents := append(slices.Clone(ctx.parents), nil)
	returnStates := append(slices.Clone(ctx.returnStates), EmptyReturnState)
	return newArrayContext(parents, returnStates)
}

func joinNonEmpty(a, b *PredictionContext, jc *JoinCache) *PredictionContext {
	i, j := 0, 0
	var parents []*PredictionContext
	var returnStates []int
	canReturnLeft, canReturnRight := true, true

	for i < a.size() && j < b.size() {
		ar, br := a.returnStates[i], b.returnStates[j]
		switch {
		case ar == br:
			var mergedParent *PredictionContext
			if a.parents[i] == nil || b.parents[j] == nil {
				mergedParent = nil
			} else {
				mergedParent = jc.Join(a.parents[i], b.parents[j])
			}
			if mergedParent != a.parents[i] {
				canReturnLeft = false
			}
			if mergedParent != b.parents[j] {
				canReturnRight = false
			}
			parents = append(parents, mergedParent)
			returnStates = append(returnStates, ar)
			i++
			j++
		case ar < br:
			parents = append(parents, a.parents[i])
			returnStates = append(returnStates, ar)
			canReturnRight = false
			i++
		default:
			parents = append(parents, b.parents[j])
			returnStates = append(returnStates, br)
			canReturnLeft = false
			j++
		}
	}
	for ; i < a.size(); i++ {
		parents = append(parents, a.parents[i])
		returnStates = append(returnStates, a.returnStates[i])
		canReturnRight = false
	}
	for ; j < b.size(); j++ {
		parents = append(parents, b.parents[j])
		returnStates = append(returnStates, b.returnStates[j])
		canReturnLeft = false
	}

	if canReturnLeft {
		return a
	}
	if canReturnRight {
		return b
	}
	if len(returnStates) == 0 {
		return EmptyFull
	}
	if len(returnStates) == 1 {
		return newSingletonContext(parents[0], returnStates[0])
	}
	return newArrayContext(parents, returnStates)
}

// --- appendContext (§4.1) ----------------------------------------------------

// AppendContext replaces every EmptyFull terminator reachable from ctx with
// suffix, memoizing per call so shared sub-DAGs are only rewritten once.
// EmptyLocal terminators and empty-alternative slots (nil parents) are not
// replaced; they stay as they are in the result.
func AppendContext(ctx, suffix *PredictionContext, cache map[*PredictionContext]*PredictionContext) *PredictionContext {
	if ctx.isEmpty() {
		if ctx.kind == emptyFullKind {
			return suffix
		}
		return ctx // a local-empty terminator stays local: SLL frames never splice a suffix below them
	}
	if r, ok := cache[ctx]; ok {
		return r
	}
	parents := make([]*PredictionContext, ctx.size())
	for i, p := range ctx.parents {
		if p == nil {
			parents[i] = nil
			continue
		}
		parents[i] = AppendContext(p, suffix, cache)
	}
	var result *PredictionContext
	if ctx.size() == 1 {
		result = newSingletonContext(parents[0], ctx.returnStates[0])
	} else {
		result = newArrayContext(parents, slices.Clone(ctx.returnStates))
	}
	cache[ctx] = result
	return result
}

// --- covers (used by ATNConfig.contains, §4.2) ------------------------------

// covers reports whether every path reachable from sub is a prefix-subset of
// some path reachable from c — a conservative containment test: it may return
// false negatives (never false positives), matching §8 property 8's contract.
func (c *PredictionContext) covers(sub *PredictionContext) bool {
	if c.equals(sub) {
		return true
	}
	if sub.isEmpty() {
		return c.hasEmpty()
	}
	if c.isEmpty() {
		return false
	}
	for i := range sub.returnStates {
		idx := c.findReturnState(sub.returnStates[i])
		if idx < 0 {
			return false
		}
		subParent, cParent := sub.parents[i], c.parents[idx]
		if subParent == nil {
			continue
		}
		if cParent == nil {
			return false
		}
		if !cParent.covers(subParent) {
			return false
		}
	}
	return true
}

// --- PredictionContextCache (SPEC_FULL.md supplemented feature #3) ---------

// PredictionContextCache hash-conses PredictionContext nodes across the whole
// lifetime of a parser instance (distinct from JoinCache's per-call scope),
// mirroring the real runtime's static, parser-lifetime PredictionContextCache
// that generated parsers construct once (see other_examples' generated
// `*ParserStaticData.PredictionContextCache`).
type PredictionContextCache struct {
	buckets map[int][]*PredictionContext
}

func NewPredictionContextCache() *PredictionContextCache {
	return &PredictionContextCache{buckets: make(map[int][]*PredictionContext)}
}

// GetCachedContext interns ctx and every parent reachable from it, returning the
// canonical shared instance for each (§4.1 getCachedContext). visited memoizes
// per call so shared sub-DAGs are canonicalized once.
func (pcc *PredictionContextCache) GetCachedContext(ctx *PredictionContext, visited map[*PredictionContext]*PredictionContext) *PredictionContext {
	if ctx.isEmpty() {
		return ctx
	}
	if existing, ok := visited[ctx]; ok {
		return existing
	}
	if existing := pcc.find(ctx); existing != nil {
		visited[ctx] = existing
		return existing
	}
	parents := make([]*PredictionContext, ctx.size())
	changed := false
	for i, p := range ctx.parents {
		if p == nil {
			continue
		}
		cp := pcc.GetCachedContext(p, visited)
		parents[i] = cp
		if cp != p {
			changed = true
		}
	}
	canon := ctx
	if changed {
		canon = newArrayContext(parents, slices.Clone(ctx.returnStates))
		if canon.size() == 1 {
			canon = newSingletonContext(parents[0], ctx.returnStates[0])
		}
	}
	if existing := pcc.find(canon); existing != nil {
		visited[ctx] = existing
		return existing
	}
	pcc.add(canon)
	visited[ctx] = canon
	return canon
}

func (pcc *PredictionContextCache) find(ctx *PredictionContext) *PredictionContext {
	for _, cand := range pcc.buckets[ctx.hash()] {
		if cand.equals(ctx) {
			return cand
		}
	}
	return nil
}

func (pcc *PredictionContextCache) add(ctx *PredictionContext) {
	pcc.buckets[ctx.hash()] = append(pcc.buckets[ctx.hash()], ctx)
}
