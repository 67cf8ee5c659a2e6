// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPos(t *testing.T) {
	a := Pos{1, 4}
	b := Pos{2, 0}
	assert.True(t, a.IsLess(b))
	assert.False(t, b.IsLess(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, "L2C5", a.String())

	var p Pos
	assert.True(t, p.FromString("#L2C5"))
	assert.Equal(t, a, p)
	assert.True(t, p.FromString("3:1"))
	assert.Equal(t, b, p)
	assert.False(t, p.FromString("zz"))
}

func TestRegion(t *testing.T) {
	r := NewRegion(0, 2, 1, 3)
	assert.True(t, r.Contains(Pos{0, 5}))
	assert.False(t, r.Contains(Pos{1, 3}))
	assert.False(t, r.IsNil())
	assert.True(t, NewRegionLen(Pos{1, 1}, 0).IsNil())
	assert.Equal(t, 2, r.NumLines())
}

func TestLineRange(t *testing.T) {
	lr := LineRange{Start: 0, End: -1}
	assert.True(t, lr.IsEmpty())
	lr.Extend(4)
	lr.Extend(2)
	assert.Equal(t, LineRange{2, 4}, lr)
}

func TestEditAdjust(t *testing.T) {
	// insert "ab\ncd" at 1:2
	ins := &Edit{Region: NewRegionPos(Pos{1, 2}, EndPosOf(Pos{1, 2}, []byte("ab\ncd"))), Text: []byte("ab\ncd"), Offset: 10}
	assert.Equal(t, Pos{2, 2}, ins.Region.End)
	assert.Equal(t, Pos{1, 1}, ins.AdjustPos(Pos{1, 1}, AdjustPosDelErr))
	assert.Equal(t, Pos{2, 4}, ins.AdjustPos(Pos{1, 4}, AdjustPosDelErr))
	assert.Equal(t, Pos{4, 0}, ins.AdjustPos(Pos{3, 0}, AdjustPosDelErr))
	assert.Equal(t, 16, ins.AdjustOffset(11))
	assert.Equal(t, 9, ins.AdjustOffset(9))

	del := ins.Inverse()
	assert.True(t, del.Delete)
	assert.Equal(t, Pos{1, 4}, del.AdjustPos(Pos{2, 4}, AdjustPosDelErr))
	assert.Equal(t, PosErr, del.AdjustPos(Pos{2, 0}, AdjustPosDelErr))
	assert.Equal(t, Pos{1, 2}, del.AdjustPos(Pos{2, 0}, AdjustPosDelStart))
	assert.Equal(t, Pos{3, 0}, del.AdjustPos(Pos{4, 0}, AdjustPosDelErr))
	assert.Equal(t, 10, del.AdjustOffset(12))
	assert.Equal(t, 15, del.AdjustOffset(20))

	assert.Equal(t, Region{}, del.AdjustRegion(NewRegion(1, 3, 2, 1)))
}

func TestNewMatch(t *testing.T) {
	m := NewMatch([]byte("my $foo = 1;"), 3, 7, 4)
	assert.Equal(t, NewRegion(4, 3, 4, 7), m.Region)
	assert.Equal(t, "my <mark>$foo</mark> = 1;", string(m.Text))
}

func TestWords(t *testing.T) {
	txt := []byte("foo  bar_baz, qux")
	assert.Equal(t, Range{5, 12}, WordAt(txt, 7))
	assert.Equal(t, Range{3, 12}, WordAt(txt, 3))

	p, n := ForwardWord(txt, 0, 2)
	assert.Equal(t, 12, p)
	assert.Equal(t, 2, n)
	p, n = ForwardWord(txt, 12, 5)
	assert.Equal(t, len(txt), p)
	assert.Equal(t, 1, n)

	p, n = BackwardWord(txt, len(txt), 2)
	assert.Equal(t, 5, p)
	assert.Equal(t, 2, n)
}
