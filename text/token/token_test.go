// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategories(t *testing.T) {
	assert.Equal(t, Keyword, KeywordType.Cat())
	assert.Equal(t, Literal, LitStrHeredoc.Cat())
	assert.Equal(t, LitStr, LitStrHeredoc.SubCat())
	assert.Equal(t, LitNum, LitNumHex.SubCat())
	assert.Equal(t, Comment, CommentDoc.Cat())
	assert.Equal(t, Text, TextWhitespace.Cat())
	assert.Equal(t, Name, NameFunction.SubCat())
	assert.Equal(t, None, None.Cat())

	assert.Equal(t, LitStr, LitStrRegex.Parent())
	assert.Equal(t, Literal, LitStr.Parent())
	assert.Equal(t, None, Literal.Parent())
	assert.Equal(t, Name, NameVar.Parent())
}

func TestPunctGp(t *testing.T) {
	assert.True(t, PunctGpFromByte('{').IsPunctGpLeft())
	assert.True(t, PunctGpFromByte(']').IsPunctGpRight())
	assert.Equal(t, PunctGpRParen, PunctGpLParen.PunctGpMatch())
	assert.Equal(t, PunctSep, PunctGpFromByte(';'))
}

func TestNames(t *testing.T) {
	for tk := None; tk < TokensN; tk++ {
		assert.NotEmpty(t, tk.String())
		rt, err := TokensFromString(tk.String())
		assert.NoError(t, err)
		assert.Equal(t, tk, rt)
	}
	var tk Tokens
	assert.Error(t, tk.UnmarshalText([]byte("Nope")))
}
