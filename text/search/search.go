// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package search finds literal strings and regular expressions within
// lines of text, readers, files and directory trees. All column
// positions are byte offsets within the line.
package search

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"regexp"

	"golang.org/x/text/language"
	xsearch "golang.org/x/text/search"

	"japi.dev/core/base/errors"
	"japi.dev/core/text/parse/lexer"
	"japi.dev/core/text/textpos"
)

// finder returns a function giving the start and end of the first match
// of find in a line, or -1, -1. Case-insensitive matching uses Unicode
// case folding through a collation pattern.
func finder(find []byte, ignoreCase bool) func(b []byte) (int, int) {
	if !ignoreCase {
		return func(b []byte) (int, int) {
			i := bytes.Index(b, find)
			if i < 0 {
				return -1, -1
			}
			return i, i + len(find)
		}
	}
	pat := xsearch.New(language.Und, xsearch.IgnoreCase).Compile(find)
	return func(b []byte) (int, int) {
		return pat.Index(b)
	}
}

// line appends the matches of find in one line to matches.
func line(matches []textpos.Match, b []byte, ln int, find func([]byte) (int, int)) []textpos.Match {
	for ci := 0; ci < len(b); {
		st, ed := find(b[ci:])
		if st < 0 {
			break
		}
		st += ci
		ed += ci
		if ed <= st {
			ed = st + 1
		}
		matches = append(matches, textpos.NewMatch(b, st, min(ed, len(b)), ln))
		ci = ed
	}
	return matches
}

// Lines looks for a string (no regexp) within lines of text,
// with given case-sensitivity returning the matches.
func Lines(src [][]byte, find []byte, ignoreCase bool) []textpos.Match {
	if len(find) == 0 {
		return nil
	}
	fn := finder(find, ignoreCase)
	var matches []textpos.Match
	for ln, b := range src {
		matches = line(matches, b, ln, fn)
	}
	return matches
}

// regexpLine appends the matches of re in one line to matches.
func regexpLine(matches []textpos.Match, b []byte, ln int, re *regexp.Regexp) []textpos.Match {
	for _, f := range re.FindAllIndex(b, -1) {
		matches = append(matches, textpos.NewMatch(b, f[0], f[1], ln))
	}
	return matches
}

// Regexp looks for a regular expression within lines of text.
func Regexp(src [][]byte, re *regexp.Regexp) []textpos.Match {
	var matches []textpos.Match
	for ln, b := range src {
		matches = regexpLine(matches, b, ln, re)
	}
	return matches
}

// LexItems looks for a string (no regexp) as entire lexically tagged
// items, with given case-sensitivity.
func LexItems(src [][]byte, tags []lexer.Line, find []byte, ignoreCase bool) []textpos.Match {
	if len(find) == 0 {
		return nil
	}
	fn := finder(find, ignoreCase)
	var matches []textpos.Match
	mx := min(len(src), len(tags))
	for ln := 0; ln < mx; ln++ {
		b := src[ln]
		for _, lx := range tags[ln] {
			if lx.End > len(b) {
				continue
			}
			st, ed := fn(b[lx.Start:lx.End])
			if st != 0 || ed != lx.End-lx.Start {
				continue
			}
			matches = append(matches, textpos.NewMatch(b, lx.Start, lx.End, ln))
		}
	}
	return matches
}

// Reader looks for a literal string (no regexp) from an io.Reader input
// stream, using given case-sensitivity.
func Reader(reader io.Reader, find []byte, ignoreCase bool) ([]textpos.Match, error) {
	if len(find) == 0 {
		return nil, nil
	}
	fn := finder(find, ignoreCase)
	var matches []textpos.Match
	scan := bufio.NewScanner(reader)
	for ln := 0; scan.Scan(); ln++ {
		matches = line(matches, scan.Bytes(), ln, fn)
	}
	return matches, scan.Err()
}

// ReaderRegexp looks for a regular expression from an io.Reader input stream.
func ReaderRegexp(reader io.Reader, re *regexp.Regexp) ([]textpos.Match, error) {
	var matches []textpos.Match
	scan := bufio.NewScanner(reader)
	for ln := 0; scan.Scan(); ln++ {
		matches = regexpLine(matches, scan.Bytes(), ln, re)
	}
	return matches, scan.Err()
}

// File looks for a literal string (no regexp) within a file, in given
// case-sensitive way.
func File(filename string, find []byte, ignoreCase bool) []textpos.Match {
	fp, err := os.Open(filename)
	if errors.Log(err) != nil {
		return nil
	}
	defer fp.Close()
	return errors.Log1(Reader(fp, find, ignoreCase))
}

// FileRegexp looks for a regular expression within a file.
func FileRegexp(filename string, re *regexp.Regexp) []textpos.Match {
	fp, err := os.Open(filename)
	if errors.Log(err) != nil {
		return nil
	}
	defer fp.Close()
	return errors.Log1(ReaderRegexp(fp, re))
}
