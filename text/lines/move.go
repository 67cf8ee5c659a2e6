// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"unicode/utf8"

	"japi.dev/core/text/textpos"
)

// MoveForward moves the position forward the given number of runes,
// crossing line ends.
func (ls *Lines) MoveForward(pos textpos.Pos, steps int) textpos.Pos {
	ls.Lock()
	defer ls.Unlock()
	return ls.moveForward(pos, steps)
}

// MoveBackward moves the position backward the given number of runes.
func (ls *Lines) MoveBackward(pos textpos.Pos, steps int) textpos.Pos {
	ls.Lock()
	defer ls.Unlock()
	return ls.moveBackward(pos, steps)
}

// MoveForwardWord moves the position forward the given number of words.
func (ls *Lines) MoveForwardWord(pos textpos.Pos, steps int) textpos.Pos {
	ls.Lock()
	defer ls.Unlock()
	return ls.moveForwardWord(pos, steps)
}

// MoveBackwardWord moves the position backward the given number of words.
func (ls *Lines) MoveBackwardWord(pos textpos.Pos, steps int) textpos.Pos {
	ls.Lock()
	defer ls.Unlock()
	return ls.moveBackwardWord(pos, steps)
}

// MoveDown moves the position down the given number of lines, to the
// byte at the same display column, or the line end if it is shorter.
func (ls *Lines) MoveDown(pos textpos.Pos, steps int) textpos.Pos {
	ls.Lock()
	defer ls.Unlock()
	return ls.moveVertical(pos, steps)
}

// MoveUp moves the position up the given number of lines.
func (ls *Lines) MoveUp(pos textpos.Pos, steps int) textpos.Pos {
	ls.Lock()
	defer ls.Unlock()
	return ls.moveVertical(pos, -steps)
}

//////// unexported api

func (ls *Lines) moveForward(pos textpos.Pos, steps int) textpos.Pos {
	if !ls.isValidPos(pos) {
		return pos
	}
	txt := ls.line(pos.Line)
	for range steps {
		if pos.Char >= len(txt) {
			if pos.Line >= ls.numLines()-1 {
				break
			}
			pos.Line++
			pos.Char = 0
			txt = ls.line(pos.Line)
			continue
		}
		_, sz := utf8.DecodeRune(txt[pos.Char:])
		pos.Char += sz
	}
	return pos
}

func (ls *Lines) moveBackward(pos textpos.Pos, steps int) textpos.Pos {
	if !ls.isValidPos(pos) {
		return pos
	}
	txt := ls.line(pos.Line)
	for range steps {
		if pos.Char == 0 {
			if pos.Line == 0 {
				break
			}
			pos.Line--
			txt = ls.line(pos.Line)
			pos.Char = len(txt)
			continue
		}
		_, sz := utf8.DecodeLastRune(txt[:pos.Char])
		pos.Char -= sz
	}
	return pos
}

func (ls *Lines) moveForwardWord(pos textpos.Pos, steps int) textpos.Pos {
	if !ls.isValidPos(pos) {
		return pos
	}
	nstep := 0
	for nstep < steps {
		op := pos.Char
		np, ns := textpos.ForwardWord(ls.line(pos.Line), op, steps-nstep)
		nstep += ns
		pos.Char = np
		if pos.Line >= ls.numLines()-1 {
			break
		}
		if nstep < steps {
			pos.Line++
			pos.Char = 0
		}
	}
	return pos
}

func (ls *Lines) moveBackwardWord(pos textpos.Pos, steps int) textpos.Pos {
	if !ls.isValidPos(pos) {
		return pos
	}
	nstep := 0
	for nstep < steps {
		np, ns := textpos.BackwardWord(ls.line(pos.Line), pos.Char, steps-nstep)
		nstep += ns
		pos.Char = np
		if pos.Line == 0 {
			break
		}
		if nstep < steps {
			pos.Line--
			pos.Char = ls.lineLen(pos.Line)
		}
	}
	return pos
}

// moveVertical moves the position by dl lines, keeping the display column.
func (ls *Lines) moveVertical(pos textpos.Pos, dl int) textpos.Pos {
	if !ls.isValidPos(pos) {
		return pos
	}
	col := DisplayColumn(ls.line(pos.Line)[:pos.Char], ls.Settings.TabSize)
	pos.Line = min(max(pos.Line+dl, 0), ls.numLines()-1)
	txt := ls.line(pos.Line)
	pos.Char = 0
	for pos.Char < len(txt) {
		_, sz := utf8.DecodeRune(txt[pos.Char:])
		if DisplayColumn(txt[:pos.Char+sz], ls.Settings.TabSize) > col {
			break
		}
		pos.Char += sz
	}
	return pos
}
