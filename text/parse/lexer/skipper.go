// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"bytes"
	"strings"
)

// SimpleSkipper is a [Skipper] for languages whose quoted and commented
// spans are fixed delimiters, as in the C family.
type SimpleSkipper struct {

	// Quotes are the quote bytes whose strings honor backslash escapes
	// and end at the end of the line if unterminated.
	Quotes string

	// Raw are the quote bytes of raw strings, which may span lines.
	Raw string

	// LineComment starts a comment running to the end of the line.
	LineComment string

	// BlockStart and BlockEnd delimit block comments.
	BlockStart, BlockEnd string
}

func (ss *SimpleSkipper) Skip(src []byte, i int) int {
	rest := src[i:]
	switch {
	case ss.LineComment != "" && bytes.HasPrefix(rest, []byte(ss.LineComment)):
		return lineEnd(src, i)
	case ss.BlockStart != "" && bytes.HasPrefix(rest, []byte(ss.BlockStart)):
		j := bytes.Index(src[i+len(ss.BlockStart):], []byte(ss.BlockEnd))
		if j < 0 {
			return len(src)
		}
		return i + len(ss.BlockStart) + j + len(ss.BlockEnd)
	}
	c := src[i]
	switch {
	case strings.IndexByte(ss.Raw, c) >= 0:
		j := bytes.IndexByte(src[i+1:], c)
		if j < 0 {
			return len(src)
		}
		return i + j + 2
	case strings.IndexByte(ss.Quotes, c) >= 0:
		return SkipQuoted(src, i+1, c, true)
	}
	return i
}

// SkipQuoted returns the index just past the close delimiter starting
// the search at i, honoring backslash escapes if esc is set. An
// unterminated span ends at the end of the line.
func SkipQuoted(src []byte, i int, close byte, esc bool) int {
	for ; i < len(src); i++ {
		switch c := src[i]; {
		case c == '\n':
			return i
		case esc && c == '\\':
			i++
		case c == close:
			return i + 1
		}
	}
	return len(src)
}

func lineEnd(src []byte, i int) int {
	if j := bytes.IndexByte(src[i:], '\n'); j >= 0 {
		return i + j
	}
	return len(src)
}
