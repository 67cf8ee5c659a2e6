// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textpos provides text position and region types
// for line-based text: [Pos], [Region], [Edit] and [Match].
package textpos

import (
	"fmt"
	"strings"
)

// Pos is a position within the source text, in terms of a 0-based
// line number and a 0-based byte index within that line.
type Pos struct {
	Line int
	Char int
}

// PosErr represents an error text position (-1 for both line and char)
// used as a return value for cases where error positions are possible.
var PosErr = Pos{-1, -1}

// IsLess returns true if receiver position is less than given comparison.
func (ps Pos) IsLess(cmp Pos) bool {
	switch {
	case ps.Line < cmp.Line:
		return true
	case ps.Line == cmp.Line:
		return ps.Char < cmp.Char
	default:
		return false
	}
}

// Compare returns -1, 0 or 1 as the receiver is before, equal to,
// or after the given position.
func (ps Pos) Compare(cmp Pos) int {
	switch {
	case ps.IsLess(cmp):
		return -1
	case ps == cmp:
		return 0
	}
	return 1
}

// String satisfies the fmt.Stringer interface,
// printing the 1-based line and character: L1C1.
func (ps Pos) String() string {
	return fmt.Sprintf("L%dC%d", ps.Line+1, ps.Char+1)
}

// FromString decodes text position from a string representation of form:
// [#]LxxCxx or line:char, both 1-based. Returns false if not a valid position.
func (ps *Pos) FromString(link string) bool {
	link = strings.TrimPrefix(link, "#")
	var ln, ch int
	if _, err := fmt.Sscanf(link, "L%dC%d", &ln, &ch); err != nil {
		if _, err := fmt.Sscanf(link, "%d:%d", &ln, &ch); err != nil {
			return false
		}
	}
	if ln < 1 || ch < 1 {
		return false
	}
	ps.Line = ln - 1
	ps.Char = ch - 1
	return true
}

// Range defines a range with a start and end index, where end is typically
// exclusive, as in standard slice indexing and for loop conventions.
type Range struct {
	// St is the starting index of the range.
	Start int

	// End is the exclusive end index of the range.
	End int
}

// Len returns the length of the range: End - Start.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains returns true if range contains given index.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// LineRange is an inclusive range of line numbers, used for reporting
// lines that need to be redrawn. An empty range has End < Start.
type LineRange struct {
	Start int
	End   int
}

// IsEmpty returns true if the range holds no lines.
func (lr LineRange) IsEmpty() bool {
	return lr.End < lr.Start
}

// Extend grows the range to include the given line.
func (lr *LineRange) Extend(ln int) {
	if lr.IsEmpty() {
		lr.Start, lr.End = ln, ln
		return
	}
	lr.Start = min(lr.Start, ln)
	lr.End = max(lr.End, ln)
}
