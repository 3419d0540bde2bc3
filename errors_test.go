// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoViableAltErrorMessage(t *testing.T) {
	err := &NoViableAltError{Decision: 2, StartIndex: 0, OffendingIndex: 3}
	assert.Contains(t, err.Error(), "decision 2")
	assert.Contains(t, err.Error(), "input[0:3]")
}

func TestInputMismatchErrorMessage(t *testing.T) {
	st := NewBasicState()
	st.SetStateNumber(4)
	err := &InputMismatchError{State: st, Symbol: 9, Index: 1}
	assert.Contains(t, err.Error(), "mismatched input 9")
	assert.Contains(t, err.Error(), "state 4")
}

func TestDecodingErrorSurfacedUnderDecodeReport(t *testing.T) {
	_, err := NewRuneStream([]byte{0xff, 'a'}, "t", DecodeReport)
	require.Error(t, err)
	var de *DecodingError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 0, de.Offset)
	assert.Contains(t, err.Error(), "byte offset 0")
}

func TestRuneStreamDecodeReplaceSubstitutesWithoutError(t *testing.T) {
	s, err := NewRuneStream([]byte{0xff, 'a'}, "t", DecodeReplace)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Size())
}
