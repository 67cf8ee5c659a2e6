// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cfamily provides hand-written lexers for C, C++, Java and Go,
// which share one state machine differing in keywords and literal syntax.
package cfamily

import (
	"bytes"

	"japi.dev/core/text/parse/lexer"
	"japi.dev/core/text/token"
)

// Lexer state kinds carried across lines.
const (
	Start = iota

	// BlockComment is inside a /* */ comment.
	BlockComment

	// String is inside a "..." string continued by a trailing backslash.
	String

	// RawString is inside a raw string: a Go `...` string when the close
	// delimiter is set, or else a C++ R"d(...)d" string or a Java text
	// block, whose terminator is identified by its hash.
	RawString

	// Preproc is a preprocessor directive continued by a trailing backslash.
	Preproc

	// LineComment is a // comment continued by a trailing backslash.
	LineComment
)

// Lang is a C-family language lexer.
type Lang struct {
	name     string
	keywords *lexer.Keywords

	// preproc enables # preprocessor directives and backslash line continuation.
	preproc bool

	// rawBacktick enables Go `raw` strings.
	rawBacktick bool

	// rawCpp enables C++ R"delim(raw)delim" strings.
	rawCpp bool

	// textBlocks enables Java """text blocks""".
	textBlocks bool

	// annotations enables Java @Annotation names.
	annotations bool

	// digitSeps enables C++14 1'000 digit separators.
	digitSeps bool

	// imaginary enables the Go imaginary number suffix.
	imaginary bool
}

func (lg *Lang) Name() string { return lg.name }

// LexLine implements [lexer.Lexer].
func (lg *Lang) LexLine(src []byte, st lexer.State) (lexer.Line, lexer.State) {
	ls := &lineState{lg: lg, sc: lexer.NewScanner(src), st: st}
	ls.resume()
	for !ls.sc.EOL() && ls.st.Kind() == Start {
		ls.next()
	}
	return ls.ln, ls.st
}

type lineState struct {
	lg *Lang
	sc *lexer.Scanner
	ln lexer.Line
	st lexer.State

	// first is true until the first token of the line.
	first bool
}

// continued returns whether the line ends with a backslash continuation.
func (ls *lineState) continued() bool {
	src := ls.sc.Src
	return ls.lg.preproc && len(src) > 0 && src[len(src)-1] == '\\'
}

// resume continues a construct carried over from the previous line.
func (ls *lineState) resume() {
	sc := ls.sc
	ls.first = true
	switch ls.st.Kind() {
	case BlockComment:
		ls.blockComment(0)
	case String:
		ls.str(0)
	case RawString:
		ls.rawString(0)
	case Preproc, LineComment:
		tok := token.CommentPreproc
		if ls.st.Kind() == LineComment {
			tok = token.Comment
		}
		sc.ToEOL()
		ls.ln.Add(tok, 0, sc.Pos)
		if !ls.continued() {
			ls.st = 0
		}
	}
}

func (ls *lineState) next() {
	sc := ls.sc
	sc.SkipSpace()
	if sc.EOL() {
		return
	}
	first := ls.first
	ls.first = false
	s := sc.Pos
	c := sc.Ch()
	n := sc.Peek(1)
	lg := ls.lg
	switch {
	case c == '/' && n == '/':
		sc.ToEOL()
		ls.ln.Add(token.Comment, s, sc.Pos)
		if ls.continued() {
			ls.st = ls.st.WithKind(LineComment)
		}
	case c == '/' && n == '*':
		sc.Advance(2)
		ls.blockComment(s)
	case c == '#' && first && lg.preproc:
		ls.preproc(s)
	case c == '"' && lg.textBlocks && sc.HasPrefix(`"""`):
		sc.Advance(3)
		ls.st = ls.st.WithKind(RawString).WithHash(lexer.HashTerminator([]byte(`"""`)))
		ls.rawString(s)
	case c == '"':
		sc.Next()
		ls.str(s)
	case c == 'R' && n == '"' && lg.rawCpp && ls.rawCppStart():
	case c == '`' && lg.rawBacktick:
		sc.Next()
		ls.st = ls.st.WithKind(RawString).WithDelims('`', '`')
		ls.rawString(s)
	case c == '\'':
		sc.Next()
		sc.ReadQuoted('\'', true)
		ls.ln.Add(token.LitStrSingle, s, sc.Pos)
	case lexer.IsDigit(c) || (c == '.' && lexer.IsDigit(n)):
		ls.number(s)
	case c == '@' && lg.annotations && lexer.IsIdentStart(n):
		sc.Next()
		sc.ReadIdent()
		ls.ln.Add(token.NameAttribute, s, sc.Pos)
	case lexer.IsIdentStart(c):
		ls.ident(s)
	case c == ';' || c == ',':
		sc.Next()
		ls.ln.Add(token.PunctSep, s, sc.Pos)
	case bytes.IndexByte([]byte("()[]{}"), c) >= 0:
		sc.Next()
		ls.ln.Add(token.PunctGpFromByte(c), s, sc.Pos)
	default:
		n, _ := operators.Scan(sc.Src, s)
		if n == 0 {
			sc.Next()
			ls.ln.Add(token.Error, s, sc.Pos)
			return
		}
		sc.Advance(n)
		ls.ln.Add(token.Operator, s, sc.Pos)
	}
}

func (ls *lineState) ident(s int) {
	sc := ls.sc
	word := sc.ReadIdent()
	if tok, ok := ls.lg.keywords.Match(word); ok {
		ls.ln.Add(tok, s, sc.Pos)
		return
	}
	tok := token.Name
	if nx := sc.Pos; nx < len(sc.Src) && sc.Src[nx] == '(' {
		tok = token.NameFunction
	}
	ls.ln.Add(tok, s, sc.Pos)
}

func (ls *lineState) number(s int) {
	sc := ls.sc
	tok := sc.ReadNumber()
	for ls.lg.digitSeps && sc.Ch() == '\'' && lexer.IsHexDigit(sc.Peek(1)) {
		sc.Next()
		for lexer.IsHexDigit(sc.Ch()) {
			sc.Next()
		}
	}
	for {
		switch sc.Ch() {
		case 'u', 'U', 'l', 'L', 'f', 'F', 'd', 'D':
			sc.Next()
			continue
		case 'i':
			if ls.lg.imaginary {
				sc.Next()
			}
		}
		break
	}
	ls.ln.Add(tok, s, sc.Pos)
}

// blockComment reads a block comment whose text starts at the current
// position, tagging it from s.
func (ls *lineState) blockComment(s int) {
	sc := ls.sc
	tok := token.Comment
	if bytes.HasPrefix(sc.Src[s:], []byte("/**")) || ls.st.Has(lexer.Interpolate) {
		tok = token.CommentDoc
	}
	if sc.ReadUntil("*/") {
		ls.st = 0
	} else {
		ls.st = lexer.State(0).WithKind(BlockComment).SetFlag(tok == token.CommentDoc, lexer.Interpolate)
	}
	ls.ln.Add(tok, s, sc.Pos)
}

// str reads a string whose text starts at the current position.
func (ls *lineState) str(s int) {
	sc := ls.sc
	if sc.ReadQuoted('"', true) {
		ls.st = 0
	} else if ls.continued() {
		ls.st = lexer.State(0).WithKind(String)
	} else {
		ls.st = 0
	}
	ls.ln.Add(token.LitStrDouble, s, sc.Pos)
}

// rawStringCloses returns the position just past the terminator whose
// hash is h, searching from i, or -1.
func rawStringCloses(src []byte, i int, h uint32) int {
	for p := i; p < len(src); p++ {
		if src[p] != '"' {
			continue
		}
		for l := 1; l <= 18 && p-l+1 >= i; l++ {
			if lexer.HashTerminator(src[p-l+1:p+1]) == h {
				return p + 1
			}
		}
	}
	return -1
}

// rawString reads a raw string whose text starts at the current position.
func (ls *lineState) rawString(s int) {
	sc := ls.sc
	st := ls.st
	tok := token.LitStrBacktick
	if st.Close() != 0 {
		if j := bytes.IndexByte(sc.Rest(), st.Close()); j >= 0 {
			sc.Advance(j + 1)
			ls.st = 0
		} else {
			sc.ToEOL()
		}
	} else {
		tok = token.LitStrDouble
		if e := rawStringCloses(sc.Src, sc.Pos, st.Hash()); e >= 0 {
			sc.Pos = e
			ls.st = 0
		} else {
			sc.ToEOL()
		}
	}
	ls.ln.Add(tok, s, sc.Pos)
}

// rawCppStart handles a C++ R"delim( raw string at the current position.
func (ls *lineState) rawCppStart() bool {
	sc := ls.sc
	s := sc.Pos
	rest := sc.Src[s+2:]
	j := bytes.IndexByte(rest, '(')
	if j < 0 || j > 16 || bytes.ContainsAny(rest[:j], " ()\\\t") {
		return false
	}
	term := make([]byte, 0, j+2)
	term = append(term, ')')
	term = append(term, rest[:j]...)
	term = append(term, '"')
	sc.Advance(j + 3)
	ls.st = lexer.State(0).WithKind(RawString).WithHash(lexer.HashTerminator(term))
	ls.rawString(s)
	return true
}

// preproc reads a preprocessor directive, which runs to the end of the
// line except for a trailing comment.
func (ls *lineState) preproc(s int) {
	sc := ls.sc
	e := len(sc.Src)
	for _, cm := range []string{"//", "/*"} {
		if j := bytes.Index(sc.Src[s:], []byte(cm)); j >= 0 && s+j < e {
			e = s + j
		}
	}
	e = s + len(bytes.TrimRight(sc.Src[s:e], " \t"))
	sc.Pos = e
	ls.ln.Add(token.CommentPreproc, s, e)
	if e == len(sc.Src) && ls.continued() {
		ls.st = lexer.State(0).WithKind(Preproc)
	}
}
