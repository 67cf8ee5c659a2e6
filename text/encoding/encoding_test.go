// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := map[string]Encoding{
		"UTF-8":             UTF8,
		"unicode-1-1-utf-8": UTF8,
		"latin1":            ISO8859_1,
		"ISO-8859-1":        ISO8859_1,
		"x-mac-roman":       MacRoman,
		"csMacintosh":       MacRoman,
		"utf-16le":          UTF16LE,
	}
	for nm, want := range tests {
		got, err := Lookup(nm)
		assert.NoError(t, err, nm)
		assert.Equal(t, want, got, nm)
	}
	_, err := Lookup("shift_jis")
	assert.ErrorIs(t, err, ErrUnsupported)
	_, err = Lookup("klingon")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestDetect(t *testing.T) {
	en, bom := Detect([]byte("\xEF\xBB\xBFhi"))
	assert.Equal(t, UTF8, en)
	assert.True(t, bom)

	en, bom = Detect([]byte{0xFF, 0xFE, 'h', 0})
	assert.Equal(t, UTF16LE, en)
	assert.True(t, bom)

	en, bom = Detect([]byte{0, 'h', 0, 'i', 0, '\n'})
	assert.Equal(t, UTF16BE, en)
	assert.False(t, bom)

	en, _ = Detect([]byte("caf\xc3\xa9"))
	assert.Equal(t, UTF8, en)

	en, _ = Detect([]byte("caf\xe9"))
	assert.Equal(t, ISO8859_1, en)
}

func TestRoundTripSingleByte(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	for _, en := range []Encoding{ISO8859_1, MacRoman} {
		u, err := Decode(all, en)
		require.NoError(t, err, en.String())
		back, err := Encode(u, en, false)
		require.NoError(t, err, en.String())
		assert.Equal(t, all, back, en.String())
	}
}

func TestRoundTripUTF16(t *testing.T) {
	text := []byte("päivää, 世界 \U0001F600\n")
	for _, en := range []Encoding{UTF16BE, UTF16LE} {
		enc, err := Encode(text, en, true)
		require.NoError(t, err)
		got, den, bom, err := DecodeFile(enc)
		require.NoError(t, err)
		assert.Equal(t, en, den)
		assert.True(t, bom)
		assert.Equal(t, text, got)
	}
}

func TestUnrepresentable(t *testing.T) {
	_, err := Encode([]byte("世界"), ISO8859_1, false)
	assert.ErrorIs(t, err, ErrUnrepresentable)
	_, err = Encode([]byte("€"), MacRoman, false)
	assert.NoError(t, err)
	_, err = Decode([]byte("\xff"), UTF8)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLineEndings(t *testing.T) {
	assert.Equal(t, CRLF, DetectLineEnding([]byte("a\r\nb\n")))
	assert.Equal(t, CR, DetectLineEnding([]byte("a\rb\r")))
	assert.Equal(t, LF, DetectLineEnding([]byte("a\nb\r\n")))
	assert.Equal(t, LF, DetectLineEnding([]byte("ab")))

	assert.Equal(t, "a\nb\nc\n\n", string(NormalizeLineEndings([]byte("a\r\nb\rc\n\r\n"))))
	assert.Equal(t, "a\r\nb", string(ApplyLineEnding([]byte("a\nb"), CRLF)))
	assert.Equal(t, "a\rb", string(ApplyLineEnding([]byte("a\nb"), CR)))

	var le LineEnding
	assert.NoError(t, le.UnmarshalText([]byte("mac")))
	assert.Equal(t, CR, le)
}
