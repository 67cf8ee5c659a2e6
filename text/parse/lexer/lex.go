// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"fmt"
	"slices"
	"strings"

	"japi.dev/core/text/token"
)

// Lex is a single lexical element, with a token and start and end
// byte positions within a line.
type Lex struct {

	// Token is the kind of token.
	Token token.Tokens

	// Start is the starting byte index within the line.
	Start int

	// End is the ending byte index within the line (exclusive).
	End int
}

// Src returns the source bytes for the lex item.
func (lx *Lex) Src(src []byte) []byte {
	return src[lx.Start:lx.End]
}

// ContainsPos returns true if the element contains the given byte position.
func (lx *Lex) ContainsPos(pos int) bool {
	return pos >= lx.Start && pos < lx.End
}

func (lx Lex) String() string {
	return fmt.Sprintf("[%d:%d:%v]", lx.Start, lx.End, lx.Token)
}

// Line is the sequence of lexical elements of one line, in order.
// Bytes not covered by any element are plain whitespace or text.
type Line []Lex

// Add appends a new element, ignoring empty spans.
func (ln *Line) Add(tok token.Tokens, st, ed int) {
	if ed <= st {
		return
	}
	*ln = append(*ln, Lex{Token: tok, Start: st, End: ed})
}

// AddMerge appends a new element, extending the last one instead when it
// has the same token and ends where this one starts.
func (ln *Line) AddMerge(tok token.Tokens, st, ed int) {
	if ed <= st {
		return
	}
	if n := len(*ln); n > 0 {
		lst := &(*ln)[n-1]
		if lst.Token == tok && lst.End == st {
			lst.End = ed
			return
		}
	}
	*ln = append(*ln, Lex{Token: tok, Start: st, End: ed})
}

// AtPos returns the element containing the given byte position, or nil.
func (ln Line) AtPos(pos int) *Lex {
	i, found := slices.BinarySearchFunc(ln, pos, func(lx Lex, p int) int {
		switch {
		case lx.End <= p:
			return -1
		case lx.Start > p:
			return 1
		}
		return 0
	})
	if !found {
		return nil
	}
	return &ln[i]
}

// TokenAt returns the token at the given byte position, or [token.None].
func (ln Line) TokenAt(pos int) token.Tokens {
	if lx := ln.AtPos(pos); lx != nil {
		return lx.Token
	}
	return token.None
}

// Clone returns a copy of the line.
func (ln Line) Clone() Line {
	return slices.Clone(ln)
}

// Equal returns true if both lines have identical elements.
func (ln Line) Equal(o Line) bool {
	return slices.Equal(ln, o)
}

func (ln Line) String() string {
	var b strings.Builder
	for _, lx := range ln {
		b.WriteString(lx.String())
	}
	return b.String()
}

// TagSrc returns a readable rendering of the line with the source text of
// each element, as in "Keyword:my NameVar:$x".
func (ln Line) TagSrc(src []byte) string {
	var b strings.Builder
	for i, lx := range ln {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(lx.Token.String())
		b.WriteByte(':')
		b.Write(src[min(lx.Start, len(src)):min(lx.End, len(src))])
	}
	return b.String()
}
