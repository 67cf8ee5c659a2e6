// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import (
	"bytes"
	"fmt"
	"strings"
)

// LineEnding is the line terminator convention of a file.
type LineEnding int32

const (
	// LF is the Unix "\n" terminator, used in memory.
	LF LineEnding = iota

	// CRLF is the DOS / Windows "\r\n" terminator.
	CRLF

	// CR is the classic Mac OS "\r" terminator.
	CR
)

func (le LineEnding) String() string {
	switch le {
	case CRLF:
		return "CRLF"
	case CR:
		return "CR"
	}
	return "LF"
}

// Bytes returns the terminator bytes.
func (le LineEnding) Bytes() []byte {
	switch le {
	case CRLF:
		return []byte("\r\n")
	case CR:
		return []byte("\r")
	}
	return []byte("\n")
}

// MarshalText implements [encoding.TextMarshaler].
func (le LineEnding) MarshalText() ([]byte, error) { return []byte(le.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (le *LineEnding) UnmarshalText(b []byte) error {
	switch strings.ToUpper(string(b)) {
	case "LF", "UNIX":
		*le = LF
	case "CRLF", "DOS", "WINDOWS":
		*le = CRLF
	case "CR", "MAC":
		*le = CR
	default:
		return fmt.Errorf("unknown line ending %q", b)
	}
	return nil
}

// DetectLineEnding returns the convention of the first line terminator
// in the text, or LF if there is none.
func DetectLineEnding(b []byte) LineEnding {
	i := bytes.IndexAny(b, "\r\n")
	switch {
	case i < 0 || b[i] == '\n':
		return LF
	case i+1 < len(b) && b[i+1] == '\n':
		return CRLF
	}
	return CR
}

// NormalizeLineEndings converts all "\r\n" and lone "\r" terminators to "\n".
func NormalizeLineEndings(b []byte) []byte {
	if bytes.IndexByte(b, '\r') < 0 {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c != '\r' {
			out = append(out, c)
			continue
		}
		out = append(out, '\n')
		if i+1 < len(b) && b[i+1] == '\n' {
			i++
		}
	}
	return out
}

// ApplyLineEnding converts "\n" terminators in normalized text to the given convention.
func ApplyLineEnding(b []byte, le LineEnding) []byte {
	if le == LF {
		return b
	}
	return bytes.ReplaceAll(b, []byte{'\n'}, le.Bytes())
}
