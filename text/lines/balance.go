// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"japi.dev/core/text/parse/lexer"
	"japi.dev/core/text/textpos"
)

// Balance returns the region from the opening bracket through the
// closing bracket of the innermost balanced pair enclosing the position.
// Brackets in strings, comments and other quoted spans of the language
// are ignored. It returns [lexer.ErrUnmatched] if there is no such pair
// within [Settings.MaxBalanceLines] of the position.
func (ls *Lines) Balance(pos textpos.Pos) (textpos.Region, error) {
	ls.Lock()
	defer ls.Unlock()
	if err := ls.validPos(pos); err != nil {
		return textpos.Region{}, err
	}
	base, src := ls.balanceWindow(pos.Line)
	op, cl, err := lexer.Balance(src, ls.posToOffset(pos)-base, ls.skipper())
	if err != nil {
		return textpos.Region{}, err
	}
	return textpos.Region{Start: ls.offsetToPos(base + op), End: ls.offsetToPos(base + cl + 1)}, nil
}

// MatchBracket returns the position of the partner of the bracket at
// the position, with the same errors as [lexer.MatchBracket].
func (ls *Lines) MatchBracket(pos textpos.Pos) (textpos.Pos, error) {
	ls.Lock()
	defer ls.Unlock()
	if err := ls.validPos(pos); err != nil {
		return textpos.Pos{}, err
	}
	base, src := ls.balanceWindow(pos.Line)
	at, err := lexer.MatchBracket(src, ls.posToOffset(pos)-base, ls.skipper())
	if err != nil {
		return textpos.Pos{}, err
	}
	return ls.offsetToPos(base + at), nil
}

// balanceWindow returns the text within [Settings.MaxBalanceLines] of
// line ln and the offset at which it starts.
func (ls *Lines) balanceWindow(ln int) (int, []byte) {
	st, ed := 0, ls.numLines()-1
	if mx := ls.Settings.MaxBalanceLines; mx > 0 {
		st = max(st, ln-mx)
		ed = min(ed, ln+mx)
	}
	return ls.starts[st], ls.text.Bytes(ls.starts[st], ls.lineEnd(ed))
}

// skipper returns the skipper of the lexer if it has one, otherwise
// that of the registered lexer for the file type, which may be nil.
func (ls *Lines) skipper() lexer.Skipper {
	if sk, ok := ls.Highlighter.Lexer.(lexer.Skipper); ok {
		return sk
	}
	return lexer.SkipperFor(ls.fileInfo.Known)
}
