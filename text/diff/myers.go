// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff computes minimal line differences with the Myers
// O((N+M)D) algorithm in linear space, and provides operations on the
// resulting ranges: patches, unified output and the selective
// application of changes between two texts.
package diff

import "math"

// Result holds the result of a diff as markers of the elements of each
// sequence that are not part of the longest common subsequence.
type Result struct {

	// ChangedA marks the elements of the first sequence that are deleted
	// or replaced.
	ChangedA []bool

	// ChangedB marks the elements of the second sequence that are
	// inserted or replacements.
	ChangedB []bool
}

// Ints returns the minimal difference between two sequences of ints.
func Ints(x, y []int) *Result {
	d := &differ{
		x:   x,
		y:   y,
		ca:  make([]bool, len(x)),
		cb:  make([]bool, len(y)),
		off: len(y) + 1,
	}
	nd := len(x) + len(y) + 3
	d.fd = make([]int, nd)
	d.bd = make([]int, nd)
	d.seq(0, len(x), 0, len(y))
	return &Result{ChangedA: d.ca, ChangedB: d.cb}
}

// Strings returns the minimal difference between two sequences of
// strings, such as the lines of two texts.
func Strings(a, b []string) *Result {
	ids := make(map[string]int, len(a))
	intern := func(ss []string) []int {
		is := make([]int, len(ss))
		for i, s := range ss {
			id, ok := ids[s]
			if !ok {
				id = len(ids)
				ids[s] = id
			}
			is[i] = id
		}
		return is
	}
	return Ints(intern(a), intern(b))
}

// differ holds the state of one diff computation.
type differ struct {
	x, y   []int
	ca, cb []bool

	// fd and bd are the furthest reaching x of the forward and backward
	// searches on each diagonal x-y, indexed from off.
	fd, bd []int
	off    int
}

// seq marks the changes between x[xl:xh] and y[yl:yh], after trimming
// their common prefix and suffix, by splitting them at a point on a
// shortest edit path and recursing on the halves.
func (d *differ) seq(xl, xh, yl, yh int) {
	for xl < xh && yl < yh && d.x[xl] == d.y[yl] {
		xl++
		yl++
	}
	for xl < xh && yl < yh && d.x[xh-1] == d.y[yh-1] {
		xh--
		yh--
	}
	switch {
	case xl == xh:
		for i := yl; i < yh; i++ {
			d.cb[i] = true
		}
	case yl == yh:
		for i := xl; i < xh; i++ {
			d.ca[i] = true
		}
	default:
		xm, ym := d.middleSnake(xl, xh, yl, yh)
		d.seq(xl, xm, yl, ym)
		d.seq(xm, xh, ym, yh)
	}
}

// middleSnake finds a point on a shortest edit path between x[xl:xh]
// and y[yl:yh] by running the search forward from the start and backward
// from the end, one edit at a time, until the frontiers overlap.
// The ends of the ranges must differ, so that the point is strictly
// between the corners.
func (d *differ) middleSnake(xl, xh, yl, yh int) (int, int) {
	fd, bd, off := d.fd, d.bd, d.off
	dmin, dmax := xl-yh, xh-yl
	fmid, bmid := xl-yl, xh-yh
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid
	odd := (fmid-bmid)&1 != 0
	fd[off+fmid] = xl
	bd[off+bmid] = xh
	for {
		if fmin > dmin {
			fmin--
			fd[off+fmin-1] = -1
		} else {
			fmin++
		}
		if fmax < dmax {
			fmax++
			fd[off+fmax+1] = -1
		} else {
			fmax--
		}
		for k := fmax; k >= fmin; k -= 2 {
			lo, hi := fd[off+k-1], fd[off+k+1]
			x := hi
			if lo >= hi {
				x = lo + 1
			}
			y := x - k
			for x < xh && y < yh && d.x[x] == d.y[y] {
				x++
				y++
			}
			fd[off+k] = x
			if odd && bmin <= k && k <= bmax && bd[off+k] <= x {
				return x, y
			}
		}

		if bmin > dmin {
			bmin--
			bd[off+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < dmax {
			bmax++
			bd[off+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmax; k >= bmin; k -= 2 {
			lo, hi := bd[off+k-1], bd[off+k+1]
			x := hi - 1
			if lo < hi {
				x = lo
			}
			y := x - k
			for x > xl && y > yl && d.x[x-1] == d.y[y-1] {
				x--
				y--
			}
			bd[off+k] = x
			if !odd && fmin <= k && k <= fmax && x <= fd[off+k] {
				return x, y
			}
		}
	}
}
