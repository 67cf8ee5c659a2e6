// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"bytes"

	"github.com/rivo/uniseg"

	"japi.dev/core/base/indent"
	"japi.dev/core/text/parse/lexer"
	"japi.dev/core/text/textpos"
)

// IndentLine indents the line to the given level of tab stops, using
// tabs or spaces per the settings, returning the edits that took place.
func (ls *Lines) IndentLine(ln, level int) ([]*textpos.Edit, error) {
	ls.Lock()
	defer ls.unlock()
	if !ls.isValidLine(ln) {
		return nil, ls.validPos(textpos.Pos{Line: ln})
	}
	return ls.indentLine(ln, level), nil
}

// AutoIndent indents the line to the level of the prior non-blank line,
// one more if that line leaves a bracket open, and one less if the line
// starts with a closing bracket. It returns the edits, the level and the
// byte position just after the indentation.
func (ls *Lines) AutoIndent(ln int) (eds []*textpos.Edit, level, char int, err error) {
	ls.Lock()
	defer ls.unlock()
	if !ls.isValidLine(ln) {
		return nil, 0, 0, ls.validPos(textpos.Pos{Line: ln})
	}
	level = ls.autoIndentLevel(ln)
	eds = ls.indentLine(ln, level)
	char = len(indent.Prefix(ls.line(ln)))
	return
}

// DisplayColumn returns the display column of the position, expanding
// tabs to [Settings.TabSize] and counting wide characters as two columns.
func (ls *Lines) DisplayColumn(pos textpos.Pos) int {
	ls.Lock()
	defer ls.Unlock()
	if !ls.isValidPos(pos) {
		return 0
	}
	return DisplayColumn(ls.line(pos.Line)[:pos.Char], ls.Settings.TabSize)
}

// DisplayColumn returns the display width of the text, with tab stops
// every tabSize columns.
func DisplayColumn(txt []byte, tabSize int) int {
	tabSize = max(tabSize, 1)
	col := 0
	state := -1
	for len(txt) > 0 {
		var cl []byte
		var w int
		cl, txt, w, state = uniseg.FirstGraphemeCluster(txt, state)
		if len(cl) == 1 && cl[0] == '\t' {
			col += tabSize - col%tabSize
			continue
		}
		col += w
	}
	return col
}

//////// unexported api

// indentChar returns the indent character of the settings.
func (ls *Lines) indentChar() indent.Character {
	if ls.Settings.SpaceIndent {
		return indent.Space
	}
	return indent.Tab
}

// indentLine replaces the leading whitespace of line ln with that of
// the level, if it differs.
func (ls *Lines) indentLine(ln, level int) []*textpos.Edit {
	cur := indent.Prefix(ls.line(ln))
	want := indent.Bytes(ls.indentChar(), max(level, 0), ls.Settings.TabSize)
	if bytes.Equal(cur, want) {
		return nil
	}
	eds := ls.replaceImpl(ls.starts[ln], len(cur), want)
	for _, ed := range eds {
		ls.editDone(ed)
	}
	return eds
}

// autoIndentLevel returns the indent level for line ln from the prior
// non-blank line.
func (ls *Lines) autoIndentLevel(ln int) int {
	pl := ln - 1
	for pl >= 0 && len(bytes.TrimSpace(ls.line(pl))) == 0 {
		pl--
	}
	if pl < 0 {
		return 0
	}
	prev := ls.line(pl)
	level, _ := indent.LineIndent(prev, ls.Settings.TabSize)
	if bracketDepth(prev, ls.skipper()) > 0 {
		level++
	}
	cur := bytes.TrimLeft(ls.line(ln), " \t")
	if len(cur) > 0 {
		if _, right := lexer.BracePair(cur[0]); right {
			level--
		}
	}
	return max(level, 0)
}

// bracketDepth returns the net number of brackets the line leaves open,
// skipping the spans recognized by sk, which may be nil.
func bracketDepth(line []byte, sk lexer.Skipper) int {
	depth := 0
	sk = lexer.StartScan(sk)
	for i := 0; i < len(line); {
		if sk != nil {
			if j := sk.Skip(line, i); j > i {
				i = j
				continue
			}
		}
		if match, right := lexer.BracePair(line[i]); match != 0 {
			if right {
				depth--
			} else {
				depth++
			}
		}
		i++
	}
	return depth
}
