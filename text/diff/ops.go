// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

import (
	"fmt"
	"slices"
	"strings"
)

// OpCode is one range of a diff: the lines a[I1:I2] are replaced by
// b[J1:J2]. Tag is 'r' for replace, 'd' for delete (J1 == J2), 'i' for
// insert (I1 == I2) or 'e' for equal.
type OpCode struct {
	Tag    byte
	I1, I2 int
	J1, J2 int
}

func (op OpCode) String() string {
	return fmt.Sprintf("%c a[%d:%d] b[%d:%d]", op.Tag, op.I1, op.I2, op.J1, op.J2)
}

// Reverse returns the opcode for the diff from b to a.
func (op OpCode) Reverse() OpCode {
	rop := OpCode{Tag: op.Tag, I1: op.J1, I2: op.J2, J1: op.I1, J2: op.I2}
	switch op.Tag {
	case 'd':
		rop.Tag = 'i'
	case 'i':
		rop.Tag = 'd'
	}
	return rop
}

// Diffs are the ranges of a diff, in order.
type Diffs []OpCode

// DiffLines returns the changed ranges between two sequences of lines,
// which are empty if they are identical.
func DiffLines(a, b []string) Diffs {
	return Strings(a, b).Ranges()
}

// Ranges returns the contiguous changed ranges of the result.
func (r *Result) Ranges() Diffs {
	return r.ops(false)
}

// All returns all of the ranges of the result, including equal ones.
func (r *Result) All() Diffs {
	return r.ops(true)
}

func (r *Result) ops(equal bool) Diffs {
	var ds Diffs
	ca, cb := r.ChangedA, r.ChangedB
	i, j := 0, 0
	for i < len(ca) || j < len(cb) {
		i1, j1 := i, j
		for i < len(ca) && j < len(cb) && !ca[i] && !cb[j] {
			i++
			j++
		}
		if i > i1 {
			if equal {
				ds = append(ds, OpCode{Tag: 'e', I1: i1, I2: i, J1: j1, J2: j})
			}
			continue
		}
		for i < len(ca) && ca[i] {
			i++
		}
		for j < len(cb) && cb[j] {
			j++
		}
		op := OpCode{I1: i1, I2: i, J1: j1, J2: j}
		switch {
		case i > i1 && j > j1:
			op.Tag = 'r'
		case i > i1:
			op.Tag = 'd'
		case j > j1:
			op.Tag = 'i'
		default:
			return ds // unbalanced markers
		}
		ds = append(ds, op)
	}
	return ds
}

// Reverse returns the diffs from b to a.
func (ds Diffs) Reverse() Diffs {
	rd := make(Diffs, len(ds))
	for i, op := range ds {
		rd[i] = op.Reverse()
	}
	return rd
}

// NumChanged returns the number of lines of a and of b in the changed
// ranges.
func (ds Diffs) NumChanged() (na, nb int) {
	for _, op := range ds {
		if op.Tag == 'e' {
			continue
		}
		na += op.I2 - op.I1
		nb += op.J2 - op.J1
	}
	return
}

// PatchRec is one change of a [Patch], with the lines of b it inserts.
type PatchRec struct {
	Op     OpCode
	Blines []string
}

// Patch is a set of changes that transforms a into b without b.
type Patch []PatchRec

// ToPatch returns the patch for the diffs, taking the lines from b.
func (ds Diffs) ToPatch(b []string) Patch {
	var pt Patch
	for _, op := range ds {
		if op.Tag == 'e' {
			continue
		}
		pt = append(pt, PatchRec{Op: op, Blines: slices.Clone(b[op.J1:op.J2])})
	}
	return pt
}

// NumBlines returns the number of lines of b in the patch.
func (pt Patch) NumBlines() int {
	n := 0
	for _, pr := range pt {
		n += len(pr.Blines)
	}
	return n
}

// Apply returns a with the patch applied.
func (pt Patch) Apply(a []string) []string {
	out := make([]string, 0, len(a)+pt.NumBlines())
	ai := 0
	for _, pr := range pt {
		out = append(out, a[ai:pr.Op.I1]...)
		out = append(out, pr.Blines...)
		ai = pr.Op.I2
	}
	return append(out, a[ai:]...)
}

// Unified returns the diffs as a unified diff of a and b, with the given
// number of lines of context around each change. It is empty if there
// are no changes.
func (ds Diffs) Unified(a, b []string, aname, bname string, context int) string {
	groups := ds.Fill(len(a), len(b)).Grouped(context)
	if len(groups) == 0 {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", aname, bname)
	for _, g := range groups {
		first, last := g[0], g[len(g)-1]
		fmt.Fprintf(&sb, "@@ -%s +%s @@\n", hunkRange(first.I1, last.I2), hunkRange(first.J1, last.J2))
		for _, op := range g {
			if op.Tag == 'e' {
				for _, ln := range a[op.I1:op.I2] {
					sb.WriteString(" " + ln + "\n")
				}
				continue
			}
			for _, ln := range a[op.I1:op.I2] {
				sb.WriteString("-" + ln + "\n")
			}
			for _, ln := range b[op.J1:op.J2] {
				sb.WriteString("+" + ln + "\n")
			}
		}
	}
	return sb.String()
}

// hunkRange formats a range in unified diff form, 1-based.
func hunkRange(start, stop int) string {
	switch n := stop - start; n {
	case 0:
		return fmt.Sprintf("%d,0", start)
	case 1:
		return fmt.Sprintf("%d", start+1)
	default:
		return fmt.Sprintf("%d,%d", start+1, n)
	}
}

// Fill returns the changed ranges with the equal ranges between and
// around them, for sequences of lengths na and nb.
func (ds Diffs) Fill(na, nb int) Diffs {
	var out Diffs
	i, j := 0, 0
	for _, op := range ds {
		if op.Tag == 'e' {
			continue
		}
		if op.I1 > i {
			out = append(out, OpCode{Tag: 'e', I1: i, I2: op.I1, J1: j, J2: op.J1})
		}
		out = append(out, op)
		i, j = op.I2, op.J2
	}
	if i < na {
		out = append(out, OpCode{Tag: 'e', I1: i, I2: na, J1: j, J2: nb})
	}
	return out
}

// Grouped splits filled diffs into hunks with up to n lines of equal
// context on each side of the changes, returning nil if there are no
// changes.
func (ds Diffs) Grouped(n int) []Diffs {
	n = max(n, 0)
	codes := slices.Clone(ds)
	if len(codes) == 0 || (len(codes) == 1 && codes[0].Tag == 'e') {
		return nil
	}
	if c := codes[0]; c.Tag == 'e' {
		codes[0] = OpCode{'e', max(c.I1, c.I2-n), c.I2, max(c.J1, c.J2-n), c.J2}
	}
	if c := codes[len(codes)-1]; c.Tag == 'e' {
		codes[len(codes)-1] = OpCode{'e', c.I1, min(c.I2, c.I1+n), c.J1, min(c.J2, c.J1+n)}
	}
	var groups []Diffs
	var g Diffs
	for _, c := range codes {
		if c.Tag == 'e' && c.I2-c.I1 > 2*n {
			g = append(g, OpCode{'e', c.I1, min(c.I2, c.I1+n), c.J1, min(c.J2, c.J1+n)})
			groups = append(groups, g)
			g = Diffs{{'e', max(c.I1, c.I2-n), c.I2, max(c.J1, c.J2-n), c.J2}}
			continue
		}
		g = append(g, c)
	}
	if len(g) > 0 && !(len(g) == 1 && g[0].Tag == 'e') {
		groups = append(groups, g)
	}
	return groups
}
