// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package encoding converts text between the supported file encodings
// and the UTF-8 representation used in memory, and handles line endings.
package encoding

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	xenc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"japi.dev/core/base/errors"
)

// Encoding is a supported text file encoding.
type Encoding int32

const (
	// UTF8 is UTF-8, the in-memory representation.
	UTF8 Encoding = iota

	// UTF16BE is big-endian UTF-16.
	UTF16BE

	// UTF16LE is little-endian UTF-16.
	UTF16LE

	// ISO8859_1 is ISO-8859-1 (Latin-1).
	ISO8859_1

	// MacRoman is the legacy Mac OS Roman encoding.
	MacRoman

	// EncodingN is the number of encodings.
	EncodingN
)

var (
	// ErrUnsupported is returned for encodings that are not supported.
	ErrUnsupported = errors.New("unsupported encoding")

	// ErrUnrepresentable is returned when text contains characters that
	// cannot be represented in the target encoding.
	ErrUnrepresentable = errors.New("text is not representable in encoding")

	// ErrInvalid is returned when the bytes are not valid in the source encoding.
	ErrInvalid = errors.New("invalid bytes for encoding")
)

var encodingNames = [...]string{
	UTF8:      "UTF-8",
	UTF16BE:   "UTF-16BE",
	UTF16LE:   "UTF-16LE",
	ISO8859_1: "ISO-8859-1",
	MacRoman:  "MacRoman",
}

func (en Encoding) String() string {
	if en < 0 || en >= EncodingN {
		return fmt.Sprintf("Encoding(%d)", int32(en))
	}
	return encodingNames[en]
}

// MarshalText implements [encoding.TextMarshaler].
func (en Encoding) MarshalText() ([]byte, error) { return []byte(en.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler], accepting any name
// known to [Lookup].
func (en *Encoding) UnmarshalText(b []byte) error {
	e, err := Lookup(string(b))
	if err != nil {
		return err
	}
	*en = e
	return nil
}

var boms = [...][]byte{
	UTF8:    {0xEF, 0xBB, 0xBF},
	UTF16BE: {0xFE, 0xFF},
	UTF16LE: {0xFF, 0xFE},
}

// BOM returns the byte order mark for the encoding, or nil if it has none.
func (en Encoding) BOM() []byte {
	if en < 0 || int(en) >= len(boms) {
		return nil
	}
	return boms[en]
}

// xEncoding returns the x/text encoding used for the conversion.
func (en Encoding) xEncoding() xenc.Encoding {
	switch en {
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case ISO8859_1:
		return charmap.ISO8859_1
	case MacRoman:
		return charmap.Macintosh
	}
	return nil
}

// aliases are the names accepted directly by Lookup.
var aliases = map[string]Encoding{
	"utf-8":      UTF8,
	"utf8":       UTF8,
	"utf-16be":   UTF16BE,
	"utf16be":    UTF16BE,
	"utf-16le":   UTF16LE,
	"utf16le":    UTF16LE,
	"iso-8859-1": ISO8859_1,
	"iso8859-1":  ISO8859_1,
	"iso_8859-1": ISO8859_1,
	"latin1":     ISO8859_1,
	"latin-1":    ISO8859_1,
	"l1":         ISO8859_1,
	"macroman":   MacRoman,
	"mac-roman":  MacRoman,
	"macintosh":  MacRoman,
	"mac":        MacRoman,
}

// canonical maps WHATWG canonical encoding names to supported encodings.
var canonical = map[string]Encoding{
	"utf-8":     UTF8,
	"utf-16be":  UTF16BE,
	"utf-16le":  UTF16LE,
	"macintosh": MacRoman,
}

// Lookup returns the encoding for the given name or label, case-insensitively.
// Besides the names above it accepts the WHATWG labels of the supported
// encodings (such as "x-mac-roman" or "unicode-1-1-utf-8").
func Lookup(name string) (Encoding, error) {
	nm := strings.ToLower(strings.TrimSpace(name))
	if en, ok := aliases[nm]; ok {
		return en, nil
	}
	_, cnm := charset.Lookup(nm)
	if cnm == "" {
		return UTF8, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
	if en, ok := canonical[cnm]; ok {
		return en, nil
	}
	return UTF8, fmt.Errorf("%w: %q (%s)", ErrUnsupported, name, cnm)
}

// Detect determines the encoding of the given raw file bytes:
// a byte order mark wins, then valid UTF-8, then the NUL byte pattern
// of BOM-less UTF-16, falling back on ISO-8859-1 which accepts any bytes.
func Detect(b []byte) (en Encoding, hasBOM bool) {
	for _, e := range []Encoding{UTF8, UTF16BE, UTF16LE} {
		if bytes.HasPrefix(b, e.BOM()) {
			return e, true
		}
	}
	if e, ok := detectUTF16(b); ok {
		return e, false
	}
	if utf8.Valid(b) {
		return UTF8, false
	}
	return ISO8859_1, false
}

// detectUTF16 reports BOM-less UTF-16 when the NUL bytes fall
// consistently on one parity, as they do for mostly-ASCII text.
func detectUTF16(b []byte) (Encoding, bool) {
	if len(b) < 2 || len(b)%2 != 0 {
		return UTF8, false
	}
	even, odd := 0, 0
	for i, c := range b {
		if c != 0 {
			continue
		}
		if i%2 == 0 {
			even++
		} else {
			odd++
		}
	}
	half := len(b) / 2
	switch {
	case even > half/2 && odd == 0:
		return UTF16BE, true
	case odd > half/2 && even == 0:
		return UTF16LE, true
	}
	return UTF8, false
}

// Decode converts the given bytes in the given encoding into UTF-8.
// Any byte order mark must already have been removed.
func Decode(b []byte, en Encoding) ([]byte, error) {
	if en == UTF8 {
		if !utf8.Valid(b) {
			return nil, fmt.Errorf("%w: %s", ErrInvalid, en)
		}
		return b, nil
	}
	xe := en.xEncoding()
	if xe == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, en)
	}
	if (en == UTF16BE || en == UTF16LE) && len(b)%2 != 0 {
		return nil, fmt.Errorf("%w: %s: odd number of bytes", ErrInvalid, en)
	}
	out, err := xe.NewDecoder().Bytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, en, err)
	}
	return out, nil
}

// Encode converts the given UTF-8 text into the given encoding,
// prepending the byte order mark if bom is true and the encoding has one.
// Characters that the encoding cannot represent yield [ErrUnrepresentable].
func Encode(text []byte, en Encoding, bom bool) ([]byte, error) {
	var out []byte
	if bom {
		out = append(out, en.BOM()...)
	}
	if en == UTF8 {
		return append(out, text...), nil
	}
	xe := en.xEncoding()
	if xe == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, en)
	}
	enc, err := xe.NewEncoder().Bytes(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnrepresentable, en, err)
	}
	return append(out, enc...), nil
}

// DecodeFile detects the encoding of raw file bytes and decodes them,
// returning the UTF-8 text along with what was detected.
func DecodeFile(b []byte) (text []byte, en Encoding, hasBOM bool, err error) {
	en, hasBOM = Detect(b)
	if hasBOM {
		b = b[len(en.BOM()):]
	}
	text, err = Decode(b, en)
	return
}
