// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import "fmt"

// NoViableAltError reports that no alternative survived SLL or LL prediction
// (§7: reach set empty, or every predicate guarding the surviving alt failed).
type NoViableAltError struct {
	Decision     int
	StartIndex   int
	OffendingIndex int
	Configs      *ATNConfigSet
}

func (e *NoViableAltError) Error() string {
	return fmt.Sprintf("no viable alternative at decision %d, input[%d:%d]", e.Decision, e.StartIndex, e.OffendingIndex)
}

// InputMismatchError reports that the next symbol does not match any
// transition the current parser state expects. The core surfaces this to the
// caller's own error strategy (§1 Out of scope: error-recovery heuristics); it
// does not attempt recovery itself.
type InputMismatchError struct {
	State   ATNState
	Symbol  int
	Index   int
}

func (e *InputMismatchError) Error() string {
	return fmt.Sprintf("mismatched input %d at index %d (state %d)", e.Symbol, e.Index, e.State.GetStateNumber())
}

// DecodingError reports a malformed byte sequence encountered by a CharStream
// constructed under DecodeReport (§4.7, §7).
type DecodingError struct {
	Offset int
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("invalid encoding at byte offset %d", e.Offset)
}

// DeadlineExceededError reports that a simulator's WithDeadline hook fired
// mid-prediction (§5's optional deadline hook).
type DeadlineExceededError struct {
	Decision int
	Index    int
}

func (e *DeadlineExceededError) Error() string {
	return fmt.Sprintf("prediction deadline exceeded at decision %d, input index %d", e.Decision, e.Index)
}
