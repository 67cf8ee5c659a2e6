// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package indent provides indentation generation methods.
package indent

import (
	"bytes"
	"strings"
)

// Character is the type of indentation character to use.
type Character int32

const (
	// Tab indicates to use tabs for indentation.
	Tab Character = iota

	// Space indicates to use spaces for indentation.
	Space
)

// Tabs returns a string of n tabs.
func Tabs(n int) string {
	return strings.Repeat("\t", n)
}

// TabBytes returns []byte of n tabs.
func TabBytes(n int) []byte {
	return bytes.Repeat([]byte("\t"), n)
}

// Spaces returns a string of n*width spaces.
func Spaces(n, width int) string {
	return strings.Repeat(" ", n*width)
}

// SpaceBytes returns a []byte of n*width spaces.
func SpaceBytes(n, width int) []byte {
	return bytes.Repeat([]byte(" "), n*width)
}

// String returns a string of n tabs or n*width spaces depending on the indent character.
func String(ich Character, n, width int) string {
	if ich == Tab {
		return Tabs(n)
	}
	return Spaces(n, width)
}

// Bytes returns []byte of n tabs or n*width spaces depending on the indent character.
func Bytes(ich Character, n, width int) []byte {
	if ich == Tab {
		return TabBytes(n)
	}
	return SpaceBytes(n, width)
}

// Len returns the length of the indent string given indent character and indent level.
func Len(ich Character, n, width int) int {
	if ich == Tab {
		return n
	}
	return n * width
}

// Prefix returns the leading whitespace of the line.
func Prefix(line []byte) []byte {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i]
}

// LineIndent returns the indentation level of the line, counting a tab
// as one level and every width spaces as one level, along with the
// number of leftover spaces that did not make up a full level.
func LineIndent(line []byte, width int) (level, extra int) {
	if width <= 0 {
		width = 1
	}
	spc := 0
	for _, c := range Prefix(line) {
		if c == '\t' {
			level++
			level += spc / width
			spc = 0
			continue
		}
		spc++
	}
	level += spc / width
	return level, spc % width
}
