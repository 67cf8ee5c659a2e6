// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"strings"

	"japi.dev/core/text/diff"
)

// Strings returns the lines as strings.
func (ls *Lines) Strings() []string {
	ls.Lock()
	defer ls.Unlock()
	return ls.strings()
}

// Diffs returns the changed line ranges that would turn these lines (a)
// into the other lines (b).
func (ls *Lines) Diffs(ob *Lines) diff.Diffs {
	b := ob.Strings()
	ls.Lock()
	defer ls.Unlock()
	return diff.DiffLines(ls.strings(), b)
}

// PatchFrom applies the given diffs, computed by [Lines.Diffs] against
// the other lines, as a single undo group, so that these lines become
// the same as the other lines. It returns whether anything changed.
func (ls *Lines) PatchFrom(ob *Lines, diffs diff.Diffs) bool {
	b := ob.Strings()
	ls.Lock()
	defer ls.unlock()
	ls.undos.NewGroup()
	ls.undos.BeginGroup()
	for i := len(diffs) - 1; i >= 0; i-- {
		ls.patchOne(diffs[i], b)
	}
	ls.undos.EndGroup()
	ls.undos.NewGroup()
	return len(diffs) > 0
}

func (ls *Lines) strings() []string {
	return strings.Split(string(ls.bytes()), "\n")
}

// patchOne replaces lines I1:I2 with lines J1:J2 of b. The ranges of a
// changed range reach the end of both texts together or neither.
func (ls *Lines) patchOne(op diff.OpCode, b []string) {
	if op.Tag == 'e' {
		return
	}
	na := ls.numLines()
	txt := strings.Join(b[op.J1:op.J2], "\n")
	var st, ed int
	switch {
	case op.I2 < na:
		st, ed = ls.starts[op.I1], ls.starts[op.I2]
		if op.J2 > op.J1 {
			txt += "\n"
		}
	case op.I1 >= na:
		st, ed = ls.text.Len(), ls.text.Len()
		txt = "\n" + txt
	case op.J1 == op.J2:
		st, ed = ls.starts[op.I1], ls.text.Len()
		if op.I1 > 0 {
			st--
		}
	default:
		st, ed = ls.starts[op.I1], ls.text.Len()
	}
	for _, e := range ls.replaceImpl(st, ed-st, []byte(txt)) {
		ls.editDone(e)
	}
}
