// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cSkipper = &SimpleSkipper{Quotes: `"'`, Raw: "`", LineComment: "//", BlockStart: "/*", BlockEnd: "*/"}

func TestBalanceInnermost(t *testing.T) {
	src := []byte("f(a[1], {b: (c)}) + g()")
	// pairs: ( 1..16, [ 3..5, { 8..15, ( 12..14, ( 21..22
	pairs := [][2]int{{1, 16}, {3, 5}, {8, 15}, {12, 14}, {21, 22}}
	for caret := 0; caret <= len(src); caret++ {
		wantOpen, wantClose := -1, -1
		for _, p := range pairs {
			if p[0] < caret && caret <= p[1] && (wantOpen < 0 || p[0] > wantOpen) {
				wantOpen, wantClose = p[0], p[1]
			}
		}
		open, close, err := Balance(src, caret, nil)
		if wantOpen < 0 {
			assert.ErrorIs(t, err, ErrUnmatched, "caret %d", caret)
			continue
		}
		require.NoError(t, err, "caret %d", caret)
		assert.Equal(t, wantOpen, open, "caret %d", caret)
		assert.Equal(t, wantClose, close, "caret %d", caret)
	}
}

func TestBalanceSkipsStrings(t *testing.T) {
	src := []byte("call(\"a)(]\", x /* ) */, '(', `)\n]`)") // (")")")
	open, close, err := Balance(src, 8, cSkipper)
	require.NoError(t, err)
	assert.Equal(t, 4, open)
	assert.Equal(t, 34, close)

	open, close, err = Balance(src, 20, cSkipper)
	require.NoError(t, err)
	assert.Equal(t, 4, open)
	assert.Equal(t, 34, close)

	// without skipping, the quoted paren closes first
	open, close, err = Balance(src, 6, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, open)
	assert.Equal(t, 7, close)
}

func TestBalanceUnmatched(t *testing.T) {
	_, _, err := Balance([]byte("(abc"), 2, nil)
	assert.ErrorIs(t, err, ErrUnmatched)
	_, _, err = Balance([]byte("abc)"), 2, nil)
	assert.ErrorIs(t, err, ErrUnmatched)
	_, _, err = Balance([]byte(""), 0, nil)
	assert.ErrorIs(t, err, ErrUnmatched)

	// "]" closes the "[" below the unclosed "(", which is dropped
	open, close, err := Balance([]byte("[(a])"), 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, open)
	assert.Equal(t, 3, close)

	open, close, err = Balance([]byte("([x)]"), 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, open)
	assert.Equal(t, 3, close)
	_, _, err = Balance([]byte("([x)]"), 4, nil)
	assert.ErrorIs(t, err, ErrUnmatched)
}

func TestMatchBracket(t *testing.T) {
	src := []byte("if (a[\"]\"] == '(') { x(); }")
	m, err := MatchBracket(src, 3, cSkipper)
	require.NoError(t, err)
	assert.Equal(t, 17, m)
	m, err = MatchBracket(src, 17, cSkipper)
	require.NoError(t, err)
	assert.Equal(t, 3, m)
	m, err = MatchBracket(src, 5, cSkipper)
	require.NoError(t, err)
	assert.Equal(t, 9, m)
	m, err = MatchBracket(src, 19, cSkipper)
	require.NoError(t, err)
	assert.Equal(t, 26, m)

	_, err = MatchBracket(src, 7, cSkipper)
	assert.ErrorIs(t, err, ErrNotBracket)
	_, err = MatchBracket(src, 0, cSkipper)
	assert.ErrorIs(t, err, ErrNotBracket)
	_, err = MatchBracket([]byte("((x)"), 0, nil)
	assert.ErrorIs(t, err, ErrUnmatched)
}
