// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lines provides [Lines], a line-indexed text buffer that keeps
// syntax highlighting tags, undo records and file state in sync with
// edits to the text.
package lines

import (
	"bytes"
	"fmt"
	"slices"
	"sync"
	"time"

	"japi.dev/core/base/errors"
	"japi.dev/core/base/fileinfo"
	"japi.dev/core/text/highlighting"
	"japi.dev/core/text/parse/lexer"
	"japi.dev/core/text/textpos"
)

// ErrInvalidPos is returned for offsets and positions outside the text.
var ErrInvalidPos = errors.New("invalid position")

// Lines manages multi-line text as UTF-8 bytes in a gap buffer, with an
// index of line start offsets that is repaired incrementally on each
// edit. Line terminators are stored as '\n'; the line ending of the file
// is restored on save.
//
// All of the exported methods lock the mutex, so a Lines can be shared
// between goroutines. Listeners are called after it is unlocked.
type Lines struct {

	// Settings are the settings of the document.
	Settings Settings

	// Highlighter does the syntax highlighting.
	Highlighter highlighting.Highlighter

	// use Lock(), Unlock() directly for overall mutex on any content updates
	sync.Mutex

	// filename is the file the text was opened from or saved to.
	filename string

	// fileInfo is the information about the file.
	fileInfo fileinfo.FileInfo

	// hasBOM records whether the file had a byte order mark.
	hasBOM bool

	// modTime is the modification time of the file when it was last
	// opened or saved.
	modTime time.Time

	// changed is whether the text has been edited since it was last
	// opened or saved.
	changed bool

	text gapBuffer

	// starts holds the byte offset of the start of each line.
	// starts[0] == 0 and len(starts) is one more than the number of '\n'.
	starts []int

	// tags are the lexer tags of each line.
	tags []lexer.Line

	// states are the lexer states at the start of each line.
	states []lexer.State

	// dirty marks the lines that must be lexed again.
	dirty []bool

	// ndirty is the number of dirty lines.
	ndirty int

	undos Undo

	listeners listeners

	// pending are the events to send after unlocking.
	pending []Event

	relexTimer *time.Timer
}

// numLines returns the number of lines.
func (ls *Lines) numLines() int {
	return len(ls.starts)
}

// isValidLine returns whether ln is a line number.
func (ls *Lines) isValidLine(ln int) bool {
	return ln >= 0 && ln < len(ls.starts)
}

// lineEnd returns the offset of the end of line ln, before its '\n'.
func (ls *Lines) lineEnd(ln int) int {
	if ln+1 < len(ls.starts) {
		return ls.starts[ln+1] - 1
	}
	return ls.text.Len()
}

// lineLen returns the length of line ln in bytes.
func (ls *Lines) lineLen(ln int) int {
	return ls.lineEnd(ln) - ls.starts[ln]
}

// line returns a copy of line ln without its terminator.
func (ls *Lines) line(ln int) []byte {
	return ls.text.Bytes(ls.starts[ln], ls.lineEnd(ln))
}

// lineBytes returns a copy of every line.
func (ls *Lines) lineBytes() [][]byte {
	lns := make([][]byte, ls.numLines())
	for ln := range lns {
		lns[ln] = ls.line(ln)
	}
	return lns
}

// bytes returns a copy of all of the text.
func (ls *Lines) bytes() []byte {
	return ls.text.Bytes(0, ls.text.Len())
}

// endPos returns the position at the end of the text.
func (ls *Lines) endPos() textpos.Pos {
	ln := ls.numLines() - 1
	return textpos.Pos{Line: ln, Char: ls.lineLen(ln)}
}

// isValidPos returns whether pos is within the text.
func (ls *Lines) isValidPos(pos textpos.Pos) bool {
	return ls.isValidLine(pos.Line) && pos.Char >= 0 && pos.Char <= ls.lineLen(pos.Line)
}

func (ls *Lines) validPos(pos textpos.Pos) error {
	if !ls.isValidPos(pos) {
		return fmt.Errorf("%w: %v", ErrInvalidPos, pos)
	}
	return nil
}

func (ls *Lines) validOffset(off int) error {
	if off < 0 || off > ls.text.Len() {
		return fmt.Errorf("%w: offset %d of %d", ErrInvalidPos, off, ls.text.Len())
	}
	return nil
}

// offsetToPos returns the position of a valid offset.
func (ls *Lines) offsetToPos(off int) textpos.Pos {
	ln, found := slices.BinarySearch(ls.starts, off)
	if !found {
		ln--
	}
	return textpos.Pos{Line: ln, Char: off - ls.starts[ln]}
}

// posToOffset returns the offset of a valid position.
func (ls *Lines) posToOffset(pos textpos.Pos) int {
	return ls.starts[pos.Line] + pos.Char
}

// setText replaces all of the text, which must use '\n' line
// terminators, and rebuilds the line index, tags and undo records.
func (ls *Lines) setText(txt []byte) {
	ls.stopDelayedRelex()
	ls.text.Set(txt)
	ls.starts = append(ls.starts[:0], 0)
	for i, c := range txt {
		if c == '\n' {
			ls.starts = append(ls.starts, i+1)
		}
	}
	n := len(ls.starts)
	ls.tags = make([]lexer.Line, n)
	ls.states = make([]lexer.State, n)
	ls.dirty = make([]bool, n)
	ls.undos.Reset()
	ls.markAllDirty()
	ls.relex()
}

// markAllDirty marks every line for lexing from the start state.
func (ls *Lines) markAllDirty() {
	for ln := range ls.dirty {
		ls.dirty[ln] = true
	}
	ls.ndirty = len(ls.dirty)
	ls.states[0] = ls.Highlighter.StartState()
}

func (ls *Lines) setDirty(ln int) {
	if !ls.dirty[ln] {
		ls.dirty[ln] = true
		ls.ndirty++
	}
}

// insertImpl inserts text at a valid offset, repairing the line index,
// and returns the edit record. It does not save undo records.
func (ls *Lines) insertImpl(off int, text []byte) *textpos.Edit {
	if len(text) == 0 {
		return nil
	}
	st := ls.offsetToPos(off)
	ls.text.Insert(off, text)
	ln := st.Line
	for i := ln + 1; i < len(ls.starts); i++ {
		ls.starts[i] += len(text)
	}
	var nst []int
	for i, c := range text {
		if c == '\n' {
			nst = append(nst, off+i+1)
		}
	}
	if k := len(nst); k > 0 {
		ls.starts = slices.Insert(ls.starts, ln+1, nst...)
		ls.tags = slices.Insert(ls.tags, ln+1, make([]lexer.Line, k)...)
		ls.states = slices.Insert(ls.states, ln+1, make([]lexer.State, k)...)
		ls.dirty = slices.Insert(ls.dirty, ln+1, make([]bool, k)...)
	}
	for i := ln; i <= ln+len(nst); i++ {
		ls.setDirty(i)
	}
	ls.changed = true
	return &textpos.Edit{
		Region: textpos.Region{Start: st, End: textpos.EndPosOf(st, text)},
		Offset: off,
		Text:   bytes.Clone(text),
		Time:   time.Now(),
	}
}

// deleteImpl deletes n bytes at a valid offset, repairing the line
// index, and returns the edit record. It does not save undo records.
func (ls *Lines) deleteImpl(off, n int) *textpos.Edit {
	if n <= 0 {
		return nil
	}
	st := ls.offsetToPos(off)
	ed := ls.offsetToPos(off + n)
	del := ls.text.Delete(off, n)
	if ed.Line > st.Line {
		ls.starts = slices.Delete(ls.starts, st.Line+1, ed.Line+1)
		ls.tags = slices.Delete(ls.tags, st.Line+1, ed.Line+1)
		ls.states = slices.Delete(ls.states, st.Line+1, ed.Line+1)
		for _, d := range ls.dirty[st.Line+1 : ed.Line+1] {
			if d {
				ls.ndirty--
			}
		}
		ls.dirty = slices.Delete(ls.dirty, st.Line+1, ed.Line+1)
	}
	for i := st.Line + 1; i < len(ls.starts); i++ {
		ls.starts[i] -= n
	}
	ls.setDirty(st.Line)
	ls.changed = true
	return &textpos.Edit{
		Region: textpos.Region{Start: st, End: ed},
		Offset: off,
		Text:   del,
		Delete: true,
		Time:   time.Now(),
	}
}

// replaceImpl replaces n bytes at a valid offset with text, returning
// the edits that took place.
func (ls *Lines) replaceImpl(off, n int, text []byte) []*textpos.Edit {
	var eds []*textpos.Edit
	if de := ls.deleteImpl(off, n); de != nil {
		eds = append(eds, de)
	}
	if ie := ls.insertImpl(off, text); ie != nil {
		eds = append(eds, ie)
	}
	return eds
}

// insert inserts text, saving undo and sending an input event.
func (ls *Lines) insert(off int, text []byte) (*textpos.Edit, error) {
	if err := ls.validOffset(off); err != nil {
		return nil, err
	}
	ed := ls.insertImpl(off, text)
	ls.editDone(ed)
	return ed, nil
}

// delete deletes text, saving undo and sending an input event.
func (ls *Lines) delete(off, n int) (*textpos.Edit, error) {
	if err := ls.validOffset(off); err != nil {
		return nil, err
	}
	if n < 0 || off+n > ls.text.Len() {
		return nil, fmt.Errorf("%w: delete %d bytes at %d of %d", ErrInvalidPos, n, off, ls.text.Len())
	}
	ed := ls.deleteImpl(off, n)
	ls.editDone(ed)
	return ed, nil
}

// replace replaces text, saving undo and sending input events.
func (ls *Lines) replace(off, n int, text []byte) ([]*textpos.Edit, error) {
	if err := ls.validOffset(off); err != nil {
		return nil, err
	}
	if n < 0 || off+n > ls.text.Len() {
		return nil, fmt.Errorf("%w: replace %d bytes at %d of %d", ErrInvalidPos, n, off, ls.text.Len())
	}
	ls.undos.BeginGroup()
	defer ls.undos.EndGroup()
	eds := ls.replaceImpl(off, n, text)
	for _, ed := range eds {
		ls.editDone(ed)
	}
	return eds, nil
}

// editDone saves the undo record for an edit, queues an input event and
// schedules any delayed relex.
func (ls *Lines) editDone(ed *textpos.Edit) {
	if ed == nil {
		return
	}
	ls.undos.Save(ed, time.Duration(ls.Settings.UndoGroupDelay))
	ls.sendInput(ed)
	ls.startDelayedRelex()
}
