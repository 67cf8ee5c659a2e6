// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"japi.dev/core/text/parse/lexer"
	"japi.dev/core/text/token"
)

// Run is a span of a line drawn with one style entry, starting at the
// byte Offset and running to the Offset of the next run or the line end.
type Run struct {
	Offset int
	Entry  StyleEntry
	Token  token.Tokens
}

// Runs returns the runs for a line of the given length from its tags.
// Text outside any tag gets the Text entry. Adjacent runs with the same
// entry are merged.
func (hs Style) Runs(tags lexer.Line, lineLen int) []Run {
	def := hs.Tag(token.Text)
	var runs []Run
	add := func(off int, tok token.Tokens, se StyleEntry) {
		if n := len(runs); n > 0 {
			last := &runs[n-1]
			if last.Offset == off {
				*last = Run{Offset: off, Entry: se, Token: tok}
				return
			}
			if last.Entry == se {
				return
			}
		}
		runs = append(runs, Run{Offset: off, Entry: se, Token: tok})
	}
	cp := 0
	for _, lx := range tags {
		st, ed := max(lx.Start, cp), min(lx.End, lineLen)
		if st >= ed {
			continue
		}
		if st > cp {
			add(cp, token.Text, def)
		}
		add(st, lx.Token, hs.Tag(lx.Token))
		cp = ed
	}
	if cp < lineLen {
		add(cp, token.Text, def)
	}
	return runs
}

// RunEnd returns the end offset of run i in runs for a line of the given length.
func RunEnd(runs []Run, i, lineLen int) int {
	if i+1 < len(runs) {
		return runs[i+1].Offset
	}
	return lineLen
}
