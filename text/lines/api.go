// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"fmt"
	"time"

	"japi.dev/core/base/fileinfo"
	"japi.dev/core/text/encoding"
	"japi.dev/core/text/highlighting"
	"japi.dev/core/text/parse/lexer"
	"japi.dev/core/text/textpos"
)

// this file contains the exported API for Lines

// NewLines returns a new empty Lines, with default settings.
func NewLines() *Lines {
	ls := &Lines{}
	ls.Defaults()
	ls.Highlighter.Init(nil)
	ls.setText(nil)
	return ls
}

// NewLinesFromBytes returns a new Lines with the given text, setting up
// highlighting for the given filename, which is not read.
func NewLinesFromBytes(filename string, src []byte) *Lines {
	ls := &Lines{}
	ls.Defaults()
	ls.filename = filename
	ls.fileInfo = fileinfo.FileInfo{Name: filename, Known: fileinfo.KnownFromName(filename)}
	if ls.fileInfo.Known == fileinfo.Unknown {
		ls.fileInfo.Known = fileinfo.KnownFromShebang(src)
	}
	ls.Highlighter.Init(&ls.fileInfo)
	ls.Settings.LineEnding = encoding.DetectLineEnding(src)
	ls.setText(encoding.NormalizeLineEndings(src))
	return ls
}

// Defaults sets the default settings and highlighting style.
func (ls *Lines) Defaults() {
	ls.Settings.Defaults()
	ls.Highlighter.StyleName = ls.Settings.Highlighting
}

// SetText sets the text to the given bytes. Any line ending is
// converted to '\n'. The undo records are cleared.
func (ls *Lines) SetText(txt []byte) *Lines {
	ls.Lock()
	ls.setText(encoding.NormalizeLineEndings(txt))
	ls.sendChange()
	ls.unlock()
	return ls
}

// SetString sets the text to the given string.
func (ls *Lines) SetString(txt string) *Lines {
	return ls.SetText([]byte(txt))
}

// Text returns a copy of all of the text.
func (ls *Lines) Text() []byte {
	ls.Lock()
	defer ls.Unlock()
	return ls.bytes()
}

// String returns all of the text as a string.
func (ls *Lines) String() string {
	return string(ls.Text())
}

// Bytes returns a copy of the text between the start and end offsets.
func (ls *Lines) Bytes(st, ed int) ([]byte, error) {
	ls.Lock()
	defer ls.Unlock()
	if err := ls.validOffset(st); err != nil {
		return nil, err
	}
	if err := ls.validOffset(ed); err != nil {
		return nil, err
	}
	if ed < st {
		return nil, fmt.Errorf("%w: end %d before start %d", ErrInvalidPos, ed, st)
	}
	return ls.text.Bytes(st, ed), nil
}

// Region returns a copy of the text in the region.
func (ls *Lines) Region(reg textpos.Region) ([]byte, error) {
	ls.Lock()
	defer ls.Unlock()
	if err := ls.validPos(reg.Start); err != nil {
		return nil, err
	}
	if err := ls.validPos(reg.End); err != nil {
		return nil, err
	}
	return ls.text.Bytes(ls.posToOffset(reg.Start), max(ls.posToOffset(reg.Start), ls.posToOffset(reg.End))), nil
}

// Len returns the length of the text in bytes.
func (ls *Lines) Len() int {
	ls.Lock()
	defer ls.Unlock()
	return ls.text.Len()
}

// NumLines returns the number of lines, which is always at least one.
func (ls *Lines) NumLines() int {
	ls.Lock()
	defer ls.Unlock()
	return ls.numLines()
}

// Line returns a copy of the given line without its terminator,
// or nil if it is not a valid line.
func (ls *Lines) Line(ln int) []byte {
	ls.Lock()
	defer ls.Unlock()
	if !ls.isValidLine(ln) {
		return nil
	}
	return ls.line(ln)
}

// Lines returns a copy of every line.
func (ls *Lines) Lines() [][]byte {
	ls.Lock()
	defer ls.Unlock()
	return ls.lineBytes()
}

// LineLen returns the length of the given line in bytes, or 0 if it
// is not a valid line.
func (ls *Lines) LineLen(ln int) int {
	ls.Lock()
	defer ls.Unlock()
	if !ls.isValidLine(ln) {
		return 0
	}
	return ls.lineLen(ln)
}

// LineStart returns the byte offset of the start of the given line.
func (ls *Lines) LineStart(ln int) (int, error) {
	ls.Lock()
	defer ls.Unlock()
	if !ls.isValidLine(ln) {
		return 0, ls.validPos(textpos.Pos{Line: ln})
	}
	return ls.starts[ln], nil
}

// OffsetToPos returns the position of the given byte offset.
func (ls *Lines) OffsetToPos(off int) (textpos.Pos, error) {
	ls.Lock()
	defer ls.Unlock()
	if err := ls.validOffset(off); err != nil {
		return textpos.Pos{}, err
	}
	return ls.offsetToPos(off), nil
}

// PosToOffset returns the byte offset of the given position.
func (ls *Lines) PosToOffset(pos textpos.Pos) (int, error) {
	ls.Lock()
	defer ls.Unlock()
	if err := ls.validPos(pos); err != nil {
		return 0, err
	}
	return ls.posToOffset(pos), nil
}

// IsValidPos returns whether the position is within the text.
func (ls *Lines) IsValidPos(pos textpos.Pos) bool {
	ls.Lock()
	defer ls.Unlock()
	return ls.isValidPos(pos)
}

// ValidPos returns the position clipped to be within the text.
func (ls *Lines) ValidPos(pos textpos.Pos) textpos.Pos {
	ls.Lock()
	defer ls.Unlock()
	pos.Line = min(max(pos.Line, 0), ls.numLines()-1)
	pos.Char = min(max(pos.Char, 0), ls.lineLen(pos.Line))
	return pos
}

// EndPos returns the position at the end of the text.
func (ls *Lines) EndPos() textpos.Pos {
	ls.Lock()
	defer ls.Unlock()
	return ls.endPos()
}

//////// Edits

// Insert inserts the text at the given byte offset, returning the edit.
// The text must use '\n' line terminators.
func (ls *Lines) Insert(off int, text []byte) (*textpos.Edit, error) {
	ls.Lock()
	defer ls.unlock()
	return ls.insert(off, text)
}

// InsertAt inserts the text at the given position.
func (ls *Lines) InsertAt(pos textpos.Pos, text []byte) (*textpos.Edit, error) {
	ls.Lock()
	defer ls.unlock()
	if err := ls.validPos(pos); err != nil {
		return nil, err
	}
	return ls.insert(ls.posToOffset(pos), text)
}

// Delete deletes n bytes at the given byte offset, returning the edit,
// which holds the deleted text.
func (ls *Lines) Delete(off, n int) (*textpos.Edit, error) {
	ls.Lock()
	defer ls.unlock()
	return ls.delete(off, n)
}

// DeleteRegion deletes the text in the region.
func (ls *Lines) DeleteRegion(reg textpos.Region) (*textpos.Edit, error) {
	ls.Lock()
	defer ls.unlock()
	if err := ls.validPos(reg.Start); err != nil {
		return nil, err
	}
	if err := ls.validPos(reg.End); err != nil {
		return nil, err
	}
	st := ls.posToOffset(reg.Start)
	return ls.delete(st, max(ls.posToOffset(reg.End)-st, 0))
}

// Replace replaces n bytes at the given byte offset with the text,
// returning the deletion and insertion edits that took place.
func (ls *Lines) Replace(off, n int, text []byte) ([]*textpos.Edit, error) {
	ls.Lock()
	defer ls.unlock()
	return ls.replace(off, n, text)
}

//////// Undo

// Undo undoes the last group of edits, returning the edits that were
// done to undo them, nil if there was nothing to undo.
func (ls *Lines) Undo() []*textpos.Edit {
	ls.Lock()
	defer ls.unlock()
	return ls.undo()
}

// Redo redoes the last group of undone edits, returning them.
func (ls *Lines) Redo() []*textpos.Edit {
	ls.Lock()
	defer ls.unlock()
	return ls.redo()
}

// NewUndoGroup makes the next edit start a new undo group.
func (ls *Lines) NewUndoGroup() {
	ls.Lock()
	defer ls.Unlock()
	ls.undos.NewGroup()
}

// SetUndoOn turns undo records on or off.
func (ls *Lines) SetUndoOn(on bool) {
	ls.Lock()
	defer ls.Unlock()
	ls.undos.Off = !on
}

// UndoReset clears the undo records.
func (ls *Lines) UndoReset() {
	ls.Lock()
	defer ls.Unlock()
	ls.undos.Reset()
}

// AdjustRegion adjusts the region for the edits that have been made
// since the given time.
func (ls *Lines) AdjustRegion(reg textpos.Region, since time.Time) textpos.Region {
	ls.Lock()
	defer ls.Unlock()
	return ls.undos.AdjustRegion(reg, since)
}

//////// Highlighting

// IsDirty returns whether the given line must be lexed again.
func (ls *Lines) IsDirty(ln int) bool {
	ls.Lock()
	defer ls.Unlock()
	return ls.isValidLine(ln) && ls.dirty[ln]
}

// DirtyLines returns the line numbers of the lines that must be lexed again.
func (ls *Lines) DirtyLines() []int {
	ls.Lock()
	defer ls.Unlock()
	return ls.dirtyLines()
}

// Relex lexes the dirty lines and returns the range of lines whose
// tags changed, for redrawing. The range is empty if none did.
func (ls *Lines) Relex() textpos.LineRange {
	ls.Lock()
	defer ls.unlock()
	ls.stopDelayedRelex()
	return ls.relex()
}

// SetLanguage sets the lexer, nil for none, and lexes all of the text.
func (ls *Lines) SetLanguage(lx lexer.Lexer) {
	ls.Lock()
	defer ls.unlock()
	ls.setLanguage(lx)
}

// Language returns the name of the lexer, or "" if there is none.
func (ls *Lines) Language() string {
	ls.Lock()
	defer ls.Unlock()
	if ls.Highlighter.Lexer == nil {
		return ""
	}
	return ls.Highlighter.Lexer.Name()
}

// SetStyle sets the highlighting style by name.
func (ls *Lines) SetStyle(name string) {
	ls.Lock()
	defer ls.Unlock()
	ls.setStyle(name)
}

// Tags returns a copy of the lexer tags of the given line, as of the
// last [Lines.Relex].
func (ls *Lines) Tags(ln int) lexer.Line {
	ls.Lock()
	defer ls.Unlock()
	if !ls.isValidLine(ln) {
		return nil
	}
	return ls.tags[ln].Clone()
}

// AllTags returns a copy of the lexer tags of every line.
func (ls *Lines) AllTags() []lexer.Line {
	ls.Lock()
	defer ls.Unlock()
	tags := make([]lexer.Line, len(ls.tags))
	for ln, t := range ls.tags {
		tags[ln] = t.Clone()
	}
	return tags
}

// StartState returns the lexer state at the start of the given line.
func (ls *Lines) StartState(ln int) lexer.State {
	ls.Lock()
	defer ls.Unlock()
	if !ls.isValidLine(ln) {
		return 0
	}
	return ls.states[ln]
}

// Runs returns the style runs of the given line.
func (ls *Lines) Runs(ln int) []highlighting.Run {
	ls.Lock()
	defer ls.Unlock()
	if !ls.isValidLine(ln) {
		return nil
	}
	return ls.runs(ln)
}
