// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

// IsWordByte returns true if the byte can be part of a word:
// an ASCII letter, digit or underscore, or any byte of a multi-byte
// UTF-8 sequence.
func IsWordByte(c byte) bool {
	return c == '_' || c >= 0x80 ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// WordAt returns the range for a word within given text starting at given
// position index. If the current position is a word break then go to next
// break after the first non-break.
func WordAt(txt []byte, pos int) Range {
	var rg Range
	sz := len(txt)
	if sz == 0 {
		return rg
	}
	pos = max(0, min(pos, sz-1))
	rg.Start = pos
	if IsWordByte(txt[rg.Start]) {
		for rg.Start > 0 && IsWordByte(txt[rg.Start-1]) {
			rg.Start--
		}
		rg.End = pos + 1
		for rg.End < sz && IsWordByte(txt[rg.End]) {
			rg.End++
		}
		return rg
	}
	// keep the space start -- go to next space..
	rg.End = pos + 1
	for rg.End < sz && !IsWordByte(txt[rg.End]) {
		rg.End++
	}
	for rg.End < sz && IsWordByte(txt[rg.End]) {
		rg.End++
	}
	return rg
}

// ForwardWord moves position index forward by words, for given
// number of steps, stopping at the end of each word. Returns the
// number of steps actually moved, given the amount of text available.
func ForwardWord(txt []byte, pos, steps int) (wpos, nstep int) {
	sz := len(txt)
	pos = max(0, min(pos, sz))
	for range steps {
		if pos >= sz {
			break
		}
		ch := pos
		for ch < sz && !IsWordByte(txt[ch]) { // if on a wb, go past
			ch++
		}
		for ch < sz && IsWordByte(txt[ch]) { // now go to next wb
			ch++
		}
		pos = ch
		nstep++
	}
	return pos, nstep
}

// BackwardWord moves position index backward by words, for given
// number of steps, stopping at the start of each word. Returns the
// number of steps actually moved, given the amount of text available.
func BackwardWord(txt []byte, pos, steps int) (wpos, nstep int) {
	pos = max(0, min(pos, len(txt)))
	for range steps {
		if pos == 0 {
			break
		}
		ch := pos
		for ch > 0 && !IsWordByte(txt[ch-1]) { // if on a wb, go past
			ch--
		}
		for ch > 0 && IsWordByte(txt[ch-1]) { // now go to next wb
			ch--
		}
		pos = ch
		nstep++
	}
	return pos, nstep
}
