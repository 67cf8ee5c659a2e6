// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"log/slog"
	"time"

	"japi.dev/core/text/textpos"
)

// Undo is the undo manager of a [Lines]. It is protected by the mutex
// of the Lines.
type Undo struct {

	// Off turns off saving and using undos, e.g., for read-only text.
	Off bool

	// Stack is the stack of edits.
	Stack []*textpos.Edit

	// Pos is the undo position in the stack; edits at and above it
	// have been undone and can be redone.
	Pos int

	// Group is the current group counter.
	Group int

	// forceGroup starts a new group on the next save.
	forceGroup bool

	// open is the number of [Undo.BeginGroup] calls not yet ended.
	open int

	// joined is whether an edit has been saved since the outermost
	// [Undo.BeginGroup], so that later edits join its group.
	joined bool
}

// NewGroup makes the next saved edit start a new group.
func (un *Undo) NewGroup() {
	un.forceGroup = true
}

// BeginGroup makes all edits saved until the matching [Undo.EndGroup]
// join one group, regardless of the time between them. Calls nest.
func (un *Undo) BeginGroup() {
	if un.open == 0 {
		un.joined = false
	}
	un.open++
}

// EndGroup ends a group started by [Undo.BeginGroup].
func (un *Undo) EndGroup() {
	if un.open > 0 {
		un.open--
	}
}

// Reset clears all undo records.
func (un *Undo) Reset() {
	un.Pos = 0
	un.Group = 0
	un.Stack = nil
	un.forceGroup = false
	un.joined = false
}

// Save saves the edit to the stack, discarding any edits that were
// undone. The edit joins the current group unless it is more than delay
// after the prior edit or a new group was requested. Within
// [Undo.BeginGroup] and [Undo.EndGroup], edits after the first always
// join its group.
func (un *Undo) Save(ed *textpos.Edit, delay time.Duration) {
	if un.Off {
		return
	}
	if un.Pos < len(un.Stack) {
		slog.Debug("Undo: resetting", "pos", un.Pos, "len", len(un.Stack))
		un.Stack = un.Stack[:un.Pos]
	}
	if len(un.Stack) > 0 && !(un.open > 0 && un.joined) {
		since := ed.Time.Sub(un.Stack[len(un.Stack)-1].Time)
		if un.forceGroup || since > delay {
			un.Group++
		}
	}
	un.forceGroup = false
	un.joined = un.open > 0
	ed.Group = un.Group
	un.Stack = append(un.Stack, ed)
	un.Pos = len(un.Stack)
}

// UndoPop pops the top item off of the stack for use in Undo,
// returning nil if there is none.
func (un *Undo) UndoPop() *textpos.Edit {
	if un.Off || un.Pos == 0 {
		return nil
	}
	un.Pos--
	return un.Stack[un.Pos]
}

// UndoPopIfGroup pops the top item off of the stack if it is in the
// given group.
func (un *Undo) UndoPopIfGroup(gp int) *textpos.Edit {
	if un.Off || un.Pos == 0 {
		return nil
	}
	ed := un.Stack[un.Pos-1]
	if ed.Group != gp {
		return nil
	}
	un.Pos--
	return ed
}

// RedoNext returns the current item on the stack for Redo and advances
// the position, returning nil at the end of the stack.
func (un *Undo) RedoNext() *textpos.Edit {
	if un.Off || un.Pos >= len(un.Stack) {
		return nil
	}
	ed := un.Stack[un.Pos]
	un.Pos++
	return ed
}

// RedoNextIfGroup is [Undo.RedoNext] for an item in the given group.
func (un *Undo) RedoNextIfGroup(gp int) *textpos.Edit {
	if un.Off || un.Pos >= len(un.Stack) {
		return nil
	}
	ed := un.Stack[un.Pos]
	if ed.Group != gp {
		return nil
	}
	un.Pos++
	return ed
}

// AdjustRegion adjusts the region for the edits that are on the stack
// after the given time. A region wholly within deleted text becomes the
// empty region.
func (un *Undo) AdjustRegion(reg textpos.Region, since time.Time) textpos.Region {
	for _, ed := range un.Stack[:un.Pos] {
		if !ed.Time.After(since) {
			continue
		}
		reg = ed.AdjustRegion(reg)
		if reg == (textpos.Region{}) {
			return reg
		}
	}
	return reg
}

//////// Lines api

// undo undoes the next group of edits on the undo stack, returning the
// edits that were done to undo them.
func (ls *Lines) undo() []*textpos.Edit {
	ed := ls.undos.UndoPop()
	if ed == nil {
		return nil
	}
	gp := ed.Group
	var eds []*textpos.Edit
	for ed != nil {
		var ued *textpos.Edit
		if ed.Delete {
			ued = ls.insertImpl(ed.Offset, ed.Text)
		} else {
			ued = ls.deleteImpl(ed.Offset, len(ed.Text))
		}
		if ued != nil {
			ued.Group = gp
			eds = append(eds, ued)
			ls.sendInput(ued)
		}
		ed = ls.undos.UndoPopIfGroup(gp)
	}
	slog.Debug("Undo", "group", gp, "edits", len(eds))
	ls.startDelayedRelex()
	return eds
}

// redo redoes the next group of edits on the undo stack, returning them.
func (ls *Lines) redo() []*textpos.Edit {
	ed := ls.undos.RedoNext()
	if ed == nil {
		return nil
	}
	gp := ed.Group
	var eds []*textpos.Edit
	for ed != nil {
		if ed.Delete {
			ls.deleteImpl(ed.Offset, len(ed.Text))
		} else {
			ls.insertImpl(ed.Offset, ed.Text)
		}
		eds = append(eds, ed)
		ls.sendInput(ed)
		ed = ls.undos.RedoNextIfGroup(gp)
	}
	slog.Debug("Redo", "group", gp, "edits", len(eds))
	ls.startDelayedRelex()
	return eds
}
