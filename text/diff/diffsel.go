// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

import (
	"slices"
)

// DiffSelData holds one side of a [DiffSelected] diff.
type DiffSelData struct {

	// Orig are the original lines.
	Orig []string

	// Edit are the lines with the changes applied so far.
	Edit []string

	// LineMap maps each original line number, and one past the last, to
	// its line number in Edit.
	LineMap []int

	// Applied are the changes applied so far, for undo.
	Applied Diffs

	editUndo    [][]string
	lineMapUndo [][]int
}

// SetLines sets the original lines, which are not modified.
func (sd *DiffSelData) SetLines(lines []string) {
	sd.Orig = lines
	sd.Edit = slices.Clone(lines)
	sd.LineMap = make([]int, len(lines)+1)
	for i := range sd.LineMap {
		sd.LineMap[i] = i
	}
	sd.Applied = nil
	sd.editUndo = nil
	sd.lineMapUndo = nil
}

func (sd *DiffSelData) saveUndo(op OpCode) {
	sd.Applied = append(sd.Applied, op)
	sd.editUndo = append(sd.editUndo, slices.Clone(sd.Edit))
	sd.lineMapUndo = append(sd.lineMapUndo, slices.Clone(sd.LineMap))
}

// Undo undoes the last change applied, returning false if there is none.
func (sd *DiffSelData) Undo() bool {
	n := len(sd.editUndo)
	if n == 0 {
		return false
	}
	sd.Applied = sd.Applied[:n-1]
	sd.Edit = sd.editUndo[n-1]
	sd.editUndo = sd.editUndo[:n-1]
	sd.LineMap = sd.lineMapUndo[n-1]
	sd.lineMapUndo = sd.lineMapUndo[:n-1]
	return true
}

// apply applies op, whose I range is in the original lines of sd and
// whose J range is in src.
func (sd *DiffSelData) apply(op OpCode, src []string) {
	sd.saveUndo(op)
	st := sd.LineMap[op.I1]
	ed := sd.LineMap[op.I2]
	repl := src[op.J1:op.J2]
	sd.Edit = slices.Replace(sd.Edit, st, ed, repl...)
	delta := len(repl) - (ed - st)
	for i := op.I2; i < len(sd.LineMap); i++ {
		sd.LineMap[i] += delta
	}
}

// DiffSelected supports applying selected changes between two texts, in
// either direction and in any order, with undo.
type DiffSelected struct {
	A DiffSelData
	B DiffSelData

	// Diffs are the changed ranges from A to B.
	Diffs Diffs
}

// NewDiffSelected returns a new DiffSelected for the lines of a and b.
func NewDiffSelected(a, b []string) *DiffSelected {
	ds := &DiffSelected{}
	ds.SetLines(a, b)
	return ds
}

// SetLines sets the lines of a and b and computes their diffs.
func (ds *DiffSelected) SetLines(a, b []string) {
	ds.A.SetLines(a)
	ds.B.SetLines(b)
	ds.Diffs = DiffLines(a, b)
}

// AtoB applies the change with the given index to B, making that range
// of B the same as in A.
func (ds *DiffSelected) AtoB(idx int) {
	ds.B.apply(ds.Diffs[idx].Reverse(), ds.A.Orig)
}

// BtoA applies the change with the given index to A, making that range
// of A the same as in B.
func (ds *DiffSelected) BtoA(idx int) {
	ds.A.apply(ds.Diffs[idx], ds.B.Orig)
}
