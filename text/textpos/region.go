// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import "fmt"

// Region is a contiguous region within the source file,
// defined by start and end [Pos] positions.
type Region struct {
	// starting position of region
	Start Pos
	// ending position of region
	End Pos
}

// NewRegion creates a new text region using separate line and char
// values for start and end.
func NewRegion(stLn, stCh, edLn, edCh int) Region {
	return Region{Start: Pos{Line: stLn, Char: stCh}, End: Pos{Line: edLn, Char: edCh}}
}

// NewRegionPos creates a new text region using position values.
func NewRegionPos(st, ed Pos) Region {
	return Region{Start: st, End: ed}
}

// NewRegionLen makes a new Region from a starting point and a length
// along same line.
func NewRegionLen(start Pos, len int) Region {
	end := start
	end.Char += len
	return Region{Start: start, End: end}
}

// IsNil checks if the region is empty, because the start is after or equal to the end.
func (tr Region) IsNil() bool {
	return !tr.Start.IsLess(tr.End)
}

// Contains returns true if region contains position
func (tr Region) Contains(ps Pos) bool {
	return ps.IsLess(tr.End) && (tr.Start == ps || tr.Start.IsLess(ps))
}

// NumLines is the number of lines in this region, based on inclusive end line.
func (tr Region) NumLines() int {
	return 1 + (tr.End.Line - tr.Start.Line)
}

func (tr Region) String() string {
	return fmt.Sprintf("[%s - %s]", tr.Start, tr.End)
}
