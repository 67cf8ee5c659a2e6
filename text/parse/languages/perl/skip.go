// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perl

import (
	"bytes"

	"japi.dev/core/text/parse/lexer"
	"japi.dev/core/text/token"
)

// Skip implements [lexer.Skipper], recognizing comments, strings,
// quote-like operators, regular expressions, POD blocks and the data
// section. Heredoc bodies are only recognized by the skippers returned
// by [Perl.NewScan], which see their introducers.
func (pl *Perl) Skip(src []byte, i int) int {
	return (&scanSkipper{}).Skip(src, i)
}

// NewScan implements [lexer.ScanSkipper].
func (pl *Perl) NewScan() lexer.Skipper {
	return &scanSkipper{}
}

// scanSkipper is the skipper for one forward scan. It records the
// heredocs introduced in code so that their bodies are skipped at the
// end of the line.
type scanSkipper struct {
	terms   [][]byte
	indents []bool
}

func (sk *scanSkipper) Skip(src []byte, i int) int {
	c := src[i]
	bol := i == 0 || src[i-1] == '\n'
	var prev byte
	if i > 0 {
		prev = src[i-1]
	}
	switch {
	case c == '\n':
		return sk.skipHeredocs(src, i)
	case c == '<' && i+1 < len(src) && src[i+1] == '<' && regexAllowed(src, i):
		e, term, indent := heredocIntro(src, i)
		if e == i {
			return i
		}
		sk.terms = append(sk.terms, term)
		sk.indents = append(sk.indents, indent)
		return e
	case bol && c == '=' && i+1 < len(src) && lexer.IsIdentStart(src[i+1]):
		return skipPod(src, i)
	case c == '#':
		if prev == '$' {
			return i
		}
		return lineEnd(src, i)
	case c == '\'' || c == '"' || c == '`':
		if prev == '$' {
			return i
		}
		return skipDelimited(src, i+1, c, c)
	case c == '/':
		if !regexAllowed(src, i) {
			return i
		}
		return skipModifiers(src, skipDelimited(src, i+1, '/', '/'))
	case lexer.IsIdentStart(c) && !lexer.IsIdent(prev) && !isSigil(prev) && prev != ':':
		return skipWord(src, i, bol)
	}
	return i
}

func isSigil(c byte) bool {
	return c == '$' || c == '@' || c == '%' || c == '&' || c == '*'
}

func lineEnd(src []byte, i int) int {
	if j := bytes.IndexByte(src[i:], '\n'); j >= 0 {
		return i + j
	}
	return len(src)
}

// skipDelimited returns the index just past the close delimiter,
// searching from i, with nesting when the delimiters differ.
func skipDelimited(src []byte, i int, open, close byte) int {
	depth := 1
	for ; i < len(src); i++ {
		switch c := src[i]; {
		case c == '\\':
			i++
		case c == close:
			depth--
			if depth == 0 {
				return i + 1
			}
		case c == open:
			depth++
		}
	}
	return len(src)
}

func skipModifiers(src []byte, i int) int {
	for i < len(src) && src[i] >= 'a' && src[i] <= 'z' {
		i++
	}
	return i
}

// regexAllowed returns whether a / at i starts a regular expression,
// which it does where an operand is expected.
func regexAllowed(src []byte, i int) bool {
	p := i - 1
	for p >= 0 && (lexer.IsSpace(src[p]) || src[p] == '\n') {
		p--
	}
	if p < 0 {
		return true
	}
	c := src[p]
	if bytes.IndexByte([]byte("(,=~!&|;{[?:+-*<>"), c) >= 0 {
		return true
	}
	if !lexer.IsIdent(c) {
		return false
	}
	e := p + 1
	for p >= 0 && lexer.IsIdent(src[p]) {
		p--
	}
	if p >= 0 && (isSigil(src[p]) || src[p] == '>') {
		return false
	}
	tok, ok := keywords.Match(src[p+1 : e])
	return ok && tok != token.NameConstant
}

// skipWord skips a quote-like operator or the data section starting
// with the word at i.
func skipWord(src []byte, i int, bol bool) int {
	e := i
	for e < len(src) && lexer.IsIdent(src[e]) {
		e++
	}
	word := string(src[i:e])
	if len(word) == 1 && i > 0 && src[i-1] == '-' && isFileTest(word[0]) && regexAllowed(src, i-1) {
		return i
	}
	if bol && (word == "__END__" || word == "__DATA__") {
		return len(src)
	}
	op, ok := quoteOps[word]
	if !ok {
		return i
	}
	if p := i - 1; p >= 1 && src[p] == '>' && src[p-1] == '-' {
		return i
	}
	j := e
	for j < len(src) && lexer.IsSpace(src[j]) {
		j++
	}
	if j >= len(src) || (src[j] == '#' && j > e) || !isQuoteDelim(src[j]) {
		return i
	}
	open := src[j]
	close := delimPair(open)
	end := skipDelimited(src, j+1, open, close)
	if op == 's' || op == 't' {
		if open == close {
			end = skipDelimited(src, end, open, close)
		} else {
			k := end
			for k < len(src) && (lexer.IsSpace(src[k]) || src[k] == '\n') {
				k++
			}
			if k < len(src) {
				open = src[k]
				end = skipDelimited(src, k+1, open, delimPair(open))
			}
		}
	}
	if op == 'm' || op == 'r' || op == 's' || op == 't' {
		end = skipModifiers(src, end)
	}
	return end
}

// skipPod skips a POD block starting at i through its =cut line.
func skipPod(src []byte, i int) int {
	for {
		e := lineEnd(src, i)
		if isPodCut(src[i:e]) || e >= len(src) {
			return e
		}
		i = e + 1
	}
}

// skipHeredocs skips the bodies of the heredocs introduced on the line
// ending at the newline at i.
func (sk *scanSkipper) skipHeredocs(src []byte, i int) int {
	if len(sk.terms) == 0 {
		return i
	}
	terms, indents := sk.terms, sk.indents
	sk.terms, sk.indents = nil, nil
	pos := i + 1
	for k, term := range terms {
		for {
			if pos > len(src) {
				return len(src)
			}
			e := lineEnd(src, pos)
			line := src[pos:e]
			if indents[k] {
				line = bytes.TrimLeft(line, " \t")
			}
			pos = e + 1
			if bytes.Equal(line, term) {
				break
			}
			if e >= len(src) {
				return len(src)
			}
		}
	}
	return pos - 1
}

// heredocIntro returns the end and terminator of the heredoc introducer
// <<"T", <<'T', <<T or an indented <<~ form at i, with end i if there
// is none.
func heredocIntro(src []byte, i int) (end int, term []byte, indent bool) {
	j := i + 2
	if j < len(src) && src[j] == '~' {
		indent = true
		j++
	}
	if j >= len(src) {
		return i, nil, false
	}
	switch c := src[j]; {
	case c == '"' || c == '\'':
		e := bytes.IndexByte(src[j+1:lineEnd(src, j)], c)
		if e < 0 {
			return i, nil, false
		}
		return j + e + 2, src[j+1 : j+1+e], indent
	case lexer.IsIdentStart(c):
		e := j
		for e < len(src) && lexer.IsIdent(src[e]) {
			e++
		}
		return e, src[j:e], indent
	}
	return i, nil, false
}
