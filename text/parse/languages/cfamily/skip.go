// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfamily

import (
	"bytes"

	"japi.dev/core/text/parse/lexer"
)

var simple = &lexer.SimpleSkipper{
	Quotes:      `"'`,
	LineComment: "//",
	BlockStart:  "/*",
	BlockEnd:    "*/",
}

// Skip implements [lexer.Skipper], recognizing comments, character and
// string literals, and the raw strings of the language.
func (lg *Lang) Skip(src []byte, i int) int {
	c := src[i]
	var prev byte
	if i > 0 {
		prev = src[i-1]
	}
	switch {
	case c == '`' && lg.rawBacktick:
		if j := bytes.IndexByte(src[i+1:], '`'); j >= 0 {
			return i + j + 2
		}
		return len(src)
	case c == '"' && lg.textBlocks && bytes.HasPrefix(src[i:], []byte(`"""`)):
		if j := bytes.Index(src[i+3:], []byte(`"""`)); j >= 0 {
			return i + j + 6
		}
		return len(src)
	case c == 'R' && lg.rawCpp && i+1 < len(src) && src[i+1] == '"' && !lexer.IsIdent(prev):
		return skipRawCpp(src, i)
	case c == '\'' && lg.digitSeps && lexer.IsHexDigit(prev):
		return i
	}
	return simple.Skip(src, i)
}

// skipRawCpp skips a C++ R"delim(...)delim" string starting at i.
func skipRawCpp(src []byte, i int) int {
	j := bytes.IndexByte(src[i+2:], '(')
	if j < 0 || j > 16 || bytes.ContainsAny(src[i+2:i+2+j], " ()\\\t\n") {
		return i
	}
	term := make([]byte, 0, j+2)
	term = append(term, ')')
	term = append(term, src[i+2:i+2+j]...)
	term = append(term, '"')
	body := i + j + 3
	if k := bytes.Index(src[body:], term); k >= 0 {
		return body + k + len(term)
	}
	return len(src)
}
