// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import (
	"bytes"
	"fmt"
	"slices"
	"time"
)

// Edit describes an edit action to line-based text, operating on
// a [Region] of the text.
// Actions are only deletions and insertions (a change is a sequence
// of each, given normal editing processes).
type Edit struct {

	// Region for the edit, specifying the region to delete, or the
	// region occupied by the inserted Text after the insertion.
	Region Region

	// Offset is the byte offset of Region.Start in the whole text.
	Offset int

	// Text deleted or inserted, with '\n' line separators.
	Text []byte

	// Group is the optional grouping number, for grouping edits in Undo for example.
	Group int

	// Delete indicates a deletion, otherwise an insertion.
	Delete bool

	// Time is when the edit was made.
	Time time.Time
}

// Len returns the number of bytes inserted or deleted.
func (te *Edit) Len() int {
	return len(te.Text)
}

// EndOffset returns the byte offset of Region.End in the text
// where the edited span is present.
func (te *Edit) EndOffset() int {
	return te.Offset + len(te.Text)
}

// EndPosOf returns the end position of text inserted at given start position.
func EndPosOf(st Pos, text []byte) Pos {
	nl := bytes.Count(text, []byte{'\n'})
	if nl == 0 {
		return Pos{Line: st.Line, Char: st.Char + len(text)}
	}
	li := bytes.LastIndexByte(text, '\n')
	return Pos{Line: st.Line + nl, Char: len(text) - li - 1}
}

// AdjustPos adjusts the given text position as a function of the edit.
// If the position was within a deleted region of text, del determines
// what is returned.
func (te *Edit) AdjustPos(pos Pos, del AdjustPosDel) Pos {
	if te == nil {
		return pos
	}
	if pos.IsLess(te.Region.Start) || pos == te.Region.Start {
		return pos
	}
	dl := te.Region.End.Line - te.Region.Start.Line
	if te.Delete {
		if pos.IsLess(te.Region.End) {
			switch del {
			case AdjustPosDelStart:
				return te.Region.Start
			case AdjustPosDelEnd:
				return te.Region.Start
			case AdjustPosDelErr:
				return PosErr
			}
		}
		if pos.Line == te.Region.End.Line {
			pos.Char = te.Region.Start.Char + (pos.Char - te.Region.End.Char)
		}
		pos.Line -= dl
		return pos
	}
	if pos.Line == te.Region.Start.Line {
		pos.Char = te.Region.End.Char + (pos.Char - te.Region.Start.Char)
	}
	pos.Line += dl
	return pos
}

// AdjustOffset adjusts the given byte offset as a function of the edit.
// Offsets within a deleted span move to the start of the span.
func (te *Edit) AdjustOffset(off int) int {
	if te == nil || off <= te.Offset {
		return off
	}
	n := len(te.Text)
	if te.Delete {
		if off < te.Offset+n {
			return te.Offset
		}
		return off - n
	}
	return off + n
}

// AdjustPosDel determines what to do with positions within deleted region
type AdjustPosDel int32

// these are options for what to do with positions within deleted region
// for the AdjustPos function
const (
	// AdjustPosDelErr means return a PosErr when in deleted region.
	AdjustPosDelErr AdjustPosDel = iota

	// AdjustPosDelStart means return start of deleted region.
	AdjustPosDelStart

	// AdjustPosDelEnd means return the position just past the deleted
	// region, which after the deletion is the same as its start.
	AdjustPosDelEnd
)

// AdjustRegion adjusts the given text region as a function of the edit.
// A region wholly within a deleted span becomes the empty Region.
func (te *Edit) AdjustRegion(reg Region) Region {
	if te == nil {
		return reg
	}
	reg.Start = te.AdjustPos(reg.Start, AdjustPosDelEnd)
	reg.End = te.AdjustPos(reg.End, AdjustPosDelStart)
	if reg.IsNil() {
		return Region{}
	}
	return reg
}

// Clone returns a clone of the edit record.
func (te *Edit) Clone() *Edit {
	rc := *te
	rc.Text = slices.Clone(te.Text)
	return &rc
}

// Inverse returns the edit that undoes this one: an insertion
// of deleted text, or a deletion of inserted text.
func (te *Edit) Inverse() *Edit {
	ie := te.Clone()
	ie.Delete = !te.Delete
	return ie
}

func (te *Edit) String() string {
	str := te.Region.String()
	if te.Delete {
		str += " [Delete]"
	}
	str += fmt.Sprintf(" @%d Gp: %d %q", te.Offset, te.Group, te.Text)
	return str
}
