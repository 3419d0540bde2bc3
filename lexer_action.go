// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

// LexerActionType enumerates the action kinds a lexer ATN's ActionTransitions can
// carry. Actual action bodies (target-language code) are out of the core's scope
// (§1 code generation); the core only needs enough structure to record which
// action fired and replay it in order at accept time (§4.6.1).
type LexerActionType int

const (
	LexerActionTypeChannel LexerActionType = iota
	LexerActionTypeCustom
	LexerActionTypeMode
	LexerActionTypeMore
	LexerActionTypePopMode
	LexerActionTypePushMode
	LexerActionTypeSkip
	LexerActionTypeType
)

// LexerAction is one action a lexer rule may execute when it accepts.
type LexerAction interface {
	GetActionType() LexerActionType
	// IsPositionDependent reports whether re-executing this action at a
	// different input position could change its effect; an executor records
	// whether any of its actions is position-dependent.
	IsPositionDependent() bool
	Execute(lexer LexerActionExecutorTarget)
	hash() int
	equals(other LexerAction) bool
}

// LexerActionExecutorTarget is the minimal lexer surface an action needs to run
// against: channel/mode/type assignment and the more/skip/pop/push primitives.
type LexerActionExecutorTarget interface {
	SetChannel(int)
	SetMode(int)
	SetType(int)
	PushMode(int)
	PopMode() int
	More()
	Skip()
}

type baseLexerAction struct {
	actionType           LexerActionType
	isPositionDependent  bool
}

func (a *baseLexerAction) GetActionType() LexerActionType { return a.actionType }
func (a *baseLexerAction) IsPositionDependent() bool       { return a.isPositionDependent }

// LexerChannelAction assigns the matched token to a channel.
type LexerChannelAction struct {
	baseLexerAction
	Channel int
}

func NewLexerChannelAction(channel int) *LexerChannelAction {
	return &LexerChannelAction{baseLexerAction{LexerActionTypeChannel, false}, channel}
}
func (a *LexerChannelAction) Execute(l LexerActionExecutorTarget) { l.SetChannel(a.Channel) }
func (a *LexerChannelAction) hash() int                           { return int(LexerActionTypeChannel)*31 + a.Channel }
func (a *LexerChannelAction) equals(other LexerAction) bool {
	o, ok := other.(*LexerChannelAction)
	return ok && o.Channel == a.Channel
}

// LexerModeAction switches the lexer's current mode.
type LexerModeAction struct {
	baseLexerAction
	Mode int
}

func NewLexerModeAction(mode int) *LexerModeAction {
	return &LexerModeAction{baseLexerAction{LexerActionTypeMode, false}, mode}
}
func (a *LexerModeAction) Execute(l LexerActionExecutorTarget) { l.SetMode(a.Mode) }
func (a *LexerModeAction) hash() int                           { return int(LexerActionTypeMode)*31 + a.Mode }
func (a *LexerModeAction) equals(other LexerAction) bool {
	o, ok := other.(*LexerModeAction)
	return ok && o.Mode == a.Mode
}

// LexerMoreAction directs the lexer to keep accumulating into the current token.
type LexerMoreAction struct{ baseLexerAction }

func NewLexerMoreAction() *LexerMoreAction {
	return &LexerMoreAction{baseLexerAction{LexerActionTypeMore, false}}
}
func (a *LexerMoreAction) Execute(l LexerActionExecutorTarget) { l.More() }
func (a *LexerMoreAction) hash() int                           { return int(LexerActionTypeMore) }
func (a *LexerMoreAction) equals(other LexerAction) bool {
	_, ok := other.(*LexerMoreAction)
	return ok
}

// LexerPopModeAction pops the lexer's mode stack.
type LexerPopModeAction struct{ baseLexerAction }

func NewLexerPopModeAction() *LexerPopModeAction {
	return &LexerPopModeAction{baseLexerAction{LexerActionTypePopMode, false}}
}
func (a *LexerPopModeAction) Execute(l LexerActionExecutorTarget) { l.PopMode() }
func (a *LexerPopModeAction) hash() int                           { return int(LexerActionTypePopMode) }
func (a *LexerPopModeAction) equals(other LexerAction) bool {
	_, ok := other.(*LexerPopModeAction)
	return ok
}

// LexerPushModeAction pushes the current mode and switches to Mode.
type LexerPushModeAction struct {
	baseLexerAction
	Mode int
}

func NewLexerPushModeAction(mode int) *LexerPushModeAction {
	return &LexerPushModeAction{baseLexerAction{LexerActionTypePushMode, false}, mode}
}
func (a *LexerPushModeAction) Execute(l LexerActionExecutorTarget) { l.PushMode(a.Mode) }
func (a *LexerPushModeAction) hash() int                           { return int(LexerActionTypePushMode)*31 + a.Mode }
func (a *LexerPushModeAction) equals(other LexerAction) bool {
	o, ok := other.(*LexerPushModeAction)
	return ok && o.Mode == a.Mode
}

// LexerSkipAction discards the matched token instead of emitting it.
type LexerSkipAction struct{ baseLexerAction }

func NewLexerSkipAction() *LexerSkipAction {
	return &LexerSkipAction{baseLexerAction{LexerActionTypeSkip, false}}
}
func (a *LexerSkipAction) Execute(l LexerActionExecutorTarget) { l.Skip() }
func (a *LexerSkipAction) hash() int                           { return int(LexerActionTypeSkip) }
func (a *LexerSkipAction) equals(other LexerAction) bool {
	_, ok := other.(*LexerSkipAction)
	return ok
}

// LexerTypeAction overrides the matched token's type.
type LexerTypeAction struct {
	baseLexerAction
	Type int
}

func NewLexerTypeAction(tokenType int) *LexerTypeAction {
	return &LexerTypeAction{baseLexerAction{LexerActionTypeType, false}, tokenType}
}
func (a *LexerTypeAction) Execute(l LexerActionExecutorTarget) { l.SetType(a.Type) }
func (a *LexerTypeAction) hash() int                           { return int(LexerActionTypeType)*31 + a.Type }
func (a *LexerTypeAction) equals(other LexerAction) bool {
	o, ok := other.(*LexerTypeAction)
	return ok && o.Type == a.Type
}

// LexerCustomAction wraps a target-provided action identified by (ruleIndex,
// actionIndex); the core never interprets its body (§1 Out of scope: code
// generation). It is position-dependent because re-running the same custom
// action index at a different offset could observe different matched text.
type LexerCustomAction struct {
	baseLexerAction
	RuleIndex, ActionIndex int
	run                    func(ruleIndex, actionIndex int)
}

func NewLexerCustomAction(ruleIndex, actionIndex int, run func(int, int)) *LexerCustomAction {
	return &LexerCustomAction{baseLexerAction{LexerActionTypeCustom, true}, ruleIndex, actionIndex, run}
}
func (a *LexerCustomAction) Execute(LexerActionExecutorTarget) {
	if a.run != nil {
		a.run(a.RuleIndex, a.ActionIndex)
	}
}
func (a *LexerCustomAction) hash() int { return a.RuleIndex*31 + a.ActionIndex }
func (a *LexerCustomAction) equals(other LexerAction) bool {
	o, ok := other.(*LexerCustomAction)
	return ok && o.RuleIndex == a.RuleIndex && o.ActionIndex == a.ActionIndex
}
