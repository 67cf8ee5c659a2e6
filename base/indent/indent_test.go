// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndent(t *testing.T) {
	assert.Equal(t, "\t\t", String(Tab, 2, 4))
	assert.Equal(t, "        ", String(Space, 2, 4))
	assert.Equal(t, []byte("   "), Bytes(Space, 1, 3))
	assert.Equal(t, 2, Len(Tab, 2, 4))
	assert.Equal(t, 8, Len(Space, 2, 4))
}

func TestLineIndent(t *testing.T) {
	lv, ex := LineIndent([]byte("\t\tfoo"), 4)
	assert.Equal(t, 2, lv)
	assert.Equal(t, 0, ex)

	lv, ex = LineIndent([]byte("      bar"), 4)
	assert.Equal(t, 1, lv)
	assert.Equal(t, 2, ex)

	lv, _ = LineIndent([]byte("    \tbaz"), 4)
	assert.Equal(t, 2, lv)

	assert.Equal(t, []byte(" \t"), Prefix([]byte(" \tx ")))
}
