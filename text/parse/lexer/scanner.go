// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"bytes"

	"japi.dev/core/text/token"
)

// Scanner reads through the bytes of one line for a hand-written lexer.
type Scanner struct {

	// Src is the line being scanned.
	Src []byte

	// Pos is the current byte position.
	Pos int
}

// NewScanner returns a scanner positioned at the start of the line.
func NewScanner(src []byte) *Scanner {
	return &Scanner{Src: src}
}

// EOL returns true when the whole line has been consumed.
func (sc *Scanner) EOL() bool { return sc.Pos >= len(sc.Src) }

// Ch returns the current byte, or 0 at the end of the line.
func (sc *Scanner) Ch() byte { return sc.Peek(0) }

// Peek returns the byte at the given offset from the current position,
// or 0 if that is outside of the line.
func (sc *Scanner) Peek(off int) byte {
	i := sc.Pos + off
	if i < 0 || i >= len(sc.Src) {
		return 0
	}
	return sc.Src[i]
}

// Next advances one byte.
func (sc *Scanner) Next() {
	if sc.Pos < len(sc.Src) {
		sc.Pos++
	}
}

// Advance advances n bytes, stopping at the end of the line.
func (sc *Scanner) Advance(n int) {
	sc.Pos = min(sc.Pos+n, len(sc.Src))
}

// ToEOL moves to the end of the line.
func (sc *Scanner) ToEOL() { sc.Pos = len(sc.Src) }

// HasPrefix returns true if the rest of the line starts with the given string.
func (sc *Scanner) HasPrefix(s string) bool {
	return sc.Pos <= len(sc.Src) && bytes.HasPrefix(sc.Src[sc.Pos:], []byte(s))
}

// Rest returns the unconsumed remainder of the line.
func (sc *Scanner) Rest() []byte { return sc.Src[sc.Pos:] }

// SkipSpace advances over spaces and tabs.
func (sc *Scanner) SkipSpace() {
	for sc.Pos < len(sc.Src) && IsSpace(sc.Src[sc.Pos]) {
		sc.Pos++
	}
}

// ReadIdent reads an identifier starting at the current position and
// returns it. Bytes of multi-byte UTF-8 sequences count as letters.
func (sc *Scanner) ReadIdent() []byte {
	st := sc.Pos
	for sc.Pos < len(sc.Src) && IsIdent(sc.Src[sc.Pos]) {
		sc.Pos++
	}
	return sc.Src[st:sc.Pos]
}

// ReadUntil advances past the next occurrence of delim, returning false
// and stopping at the end of the line if there is none.
func (sc *Scanner) ReadUntil(delim string) bool {
	i := bytes.Index(sc.Src[sc.Pos:], []byte(delim))
	if i < 0 {
		sc.ToEOL()
		return false
	}
	sc.Pos += i + len(delim)
	return true
}

// ReadQuoted advances past the close delimiter, honoring backslash
// escapes if esc is set. It returns false, stopping at the end of the
// line, if the delimiter is not found.
func (sc *Scanner) ReadQuoted(close byte, esc bool) bool {
	for sc.Pos < len(sc.Src) {
		c := sc.Src[sc.Pos]
		sc.Pos++
		switch {
		case esc && c == '\\':
			sc.Next()
		case c == close:
			return true
		}
	}
	return false
}

// ReadNested is like [Scanner.ReadQuoted] for a bracketing delimiter
// pair such as '(' and ')', which nest. depth is the current nesting
// depth, 1 for just after the opening delimiter. It returns the new depth,
// which is 0 when the closing delimiter was found.
func (sc *Scanner) ReadNested(open, close byte, depth int, esc bool) int {
	for sc.Pos < len(sc.Src) && depth > 0 {
		c := sc.Src[sc.Pos]
		sc.Pos++
		switch {
		case esc && c == '\\':
			sc.Next()
		case c == open:
			depth++
		case c == close:
			depth--
		}
	}
	return depth
}

// ReadDelimited reads a quoted span for the given delimiters, nesting
// when they differ. depth is as for [Scanner.ReadNested]; the returned
// depth is 0 when the span was closed.
func (sc *Scanner) ReadDelimited(open, close byte, depth int, esc bool) int {
	if open == close {
		if sc.ReadQuoted(close, esc) {
			return 0
		}
		return max(depth, 1)
	}
	return sc.ReadNested(open, close, depth, esc)
}

// ReadNumber reads a numeric literal starting at the current position,
// which must be a digit or a '.' followed by a digit, and returns its
// token. Underscore digit separators, hex, binary and octal prefixes
// and exponents are accepted. A '.' followed by another '.' is a range
// operator and ends the number.
func (sc *Scanner) ReadNumber() token.Tokens {
	if sc.Ch() == '0' {
		switch sc.Peek(1) | 0x20 {
		case 'x':
			sc.Advance(2)
			for IsHexDigit(sc.Ch()) || sc.Ch() == '_' {
				sc.Next()
			}
			return token.LitNumHex
		case 'b', 'o':
			sc.Advance(2)
			for IsDigit(sc.Ch()) || sc.Ch() == '_' {
				sc.Next()
			}
			return token.LitNumInteger
		}
	}
	tok := token.LitNumInteger
	sc.readDigits()
	if sc.Ch() == '.' && sc.Peek(1) != '.' && !IsIdentStart(sc.Peek(1)) {
		tok = token.LitNumFloat
		sc.Next()
		sc.readDigits()
	}
	if c := sc.Ch() | 0x20; c == 'e' {
		off := 1
		if s := sc.Peek(1); s == '+' || s == '-' {
			off = 2
		}
		if IsDigit(sc.Peek(off)) {
			tok = token.LitNumFloat
			sc.Advance(off)
			sc.readDigits()
		}
	}
	return tok
}

func (sc *Scanner) readDigits() {
	for IsDigit(sc.Ch()) || (sc.Ch() == '_' && IsDigit(sc.Peek(1))) {
		sc.Next()
	}
}

// IsSpace returns true for a space or tab.
func IsSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\f' }

// IsDigit returns true for an ASCII decimal digit.
func IsDigit(c byte) bool { return c >= '0' && c <= '9' }

// IsHexDigit returns true for an ASCII hexadecimal digit.
func IsHexDigit(c byte) bool {
	return IsDigit(c) || (c|0x20 >= 'a' && c|0x20 <= 'f')
}

// IsIdentStart returns true for a byte that can start an identifier.
func IsIdentStart(c byte) bool {
	return (c|0x20 >= 'a' && c|0x20 <= 'z') || c == '_' || c >= 0x80
}

// IsIdent returns true for a byte that can continue an identifier.
func IsIdent(c byte) bool { return IsIdentStart(c) || IsDigit(c) }
