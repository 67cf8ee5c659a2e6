// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import "unicode/utf8"

// Match records one match for search within file, positions in bytes.
type Match struct {

	// Region surrounding the match. Column positions are in bytes.
	Region Region

	// Text surrounding the match, at most MatchContext on either side
	// (within a single line), with the match itself set off by <mark></mark>.
	Text []byte
}

// MatchContext is how much text to include on either side of the match.
var MatchContext = 30

var (
	mst = []byte("<mark>")
	med = []byte("</mark>")
)

// NewMatch returns a new Match entry for given line with match starting
// at st and ending before ed, on given line
func NewMatch(line []byte, st, ed, ln int) Match {
	sz := len(line)
	reg := NewRegion(ln, st, ln, ed)
	cist := max(st-MatchContext, 0)
	for cist > 0 && !utf8.RuneStart(line[cist]) {
		cist--
	}
	cied := min(ed+MatchContext, sz)
	for cied < sz && !utf8.RuneStart(line[cied]) {
		cied++
	}
	txt := make([]byte, 0, len(mst)+len(med)+cied-cist)
	txt = append(txt, line[cist:st]...)
	txt = append(txt, mst...)
	txt = append(txt, line[st:ed]...)
	txt = append(txt, med...)
	txt = append(txt, line[ed:cied]...)
	return Match{Region: reg, Text: txt}
}

const (
	// IgnoreCase is passed to search functions to indicate case should be ignored
	IgnoreCase = true

	// UseCase is passed to search functions to indicate case is relevant
	UseCase = false
)
