// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

// minGap is the minimum number of free bytes left after growing the gap.
const minGap = 64

// gapBuffer holds the text as contiguous bytes with a movable gap at
// the last edit point, so that runs of nearby edits only move the bytes
// between them.
type gapBuffer struct {
	text []byte

	// gap start and end in text.
	gapStart, gapEnd int
}

// Len returns the number of bytes of text.
func (gb *gapBuffer) Len() int {
	return len(gb.text) - gb.gapLen()
}

func (gb *gapBuffer) gapLen() int {
	return gb.gapEnd - gb.gapStart
}

// Set replaces all of the text.
func (gb *gapBuffer) Set(txt []byte) {
	gb.text = make([]byte, len(txt)+minGap)
	copy(gb.text, txt)
	gb.gapStart = len(txt)
	gb.gapEnd = len(gb.text)
}

// ByteAt returns the byte at offset off, which must be in [0, Len).
func (gb *gapBuffer) ByteAt(off int) byte {
	if off < gb.gapStart {
		return gb.text[off]
	}
	return gb.text[off+gb.gapLen()]
}

// Bytes returns a copy of the text in [st, ed).
func (gb *gapBuffer) Bytes(st, ed int) []byte {
	out := make([]byte, 0, ed-st)
	return gb.AppendBytes(out, st, ed)
}

// AppendBytes appends the text in [st, ed) to b.
func (gb *gapBuffer) AppendBytes(b []byte, st, ed int) []byte {
	if st < gb.gapStart {
		b = append(b, gb.text[st:min(ed, gb.gapStart)]...)
	}
	if ed > gb.gapStart {
		gl := gb.gapLen()
		b = append(b, gb.text[max(st, gb.gapStart)+gl:ed+gl]...)
	}
	return b
}

// moveGap moves the gap to off, making it at least space bytes long.
func (gb *gapBuffer) moveGap(off, space int) {
	if gb.gapLen() < space {
		n := gb.Len()
		space = max(space, minGap, n/4)
		txt := make([]byte, n+space)
		copy(txt, gb.text[:gb.gapStart])
		copy(txt[len(txt)-(len(gb.text)-gb.gapEnd):], gb.text[gb.gapEnd:])
		gb.gapEnd = len(txt) - (len(gb.text) - gb.gapEnd)
		gb.text = txt
	}
	gl := gb.gapLen()
	switch {
	case off < gb.gapStart:
		copy(gb.text[off+gl:], gb.text[off:gb.gapStart])
	case off > gb.gapStart:
		copy(gb.text[gb.gapStart:], gb.text[gb.gapEnd:off+gl])
	}
	gb.gapStart = off
	gb.gapEnd = off + gl
}

// Insert inserts txt at offset off.
func (gb *gapBuffer) Insert(off int, txt []byte) {
	gb.moveGap(off, len(txt))
	copy(gb.text[gb.gapStart:], txt)
	gb.gapStart += len(txt)
}

// Delete deletes n bytes at offset off and returns them.
func (gb *gapBuffer) Delete(off, n int) []byte {
	del := gb.Bytes(off, off+n)
	gb.moveGap(off, 0)
	gb.gapEnd += n
	return del
}
