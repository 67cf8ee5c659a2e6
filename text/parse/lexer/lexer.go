// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexer provides the framework for hand-written line-at-a-time
// lexers: the packed [State] carried across lines, the [Line] of tags
// produced for each line, a keyword DFA, a byte [Scanner], a language
// registry, and bracket balancing that skips quoted and commented spans.
package lexer

import (
	"bytes"
	"sync"

	"japi.dev/core/base/fileinfo"
)

// Lexer tokenizes one line at a time. LexLine is given the line without
// its terminating newline and the state at the end of the previous line,
// and returns the tags for the line and the state at its end.
// Implementations must accept any input without panicking; a construct
// left unterminated at the end of the line is tagged through the end of
// the line and continued through the returned state.
type Lexer interface {
	Name() string
	LexLine(src []byte, st State) (Line, State)
}

// Skipper recognizes the spans of a language in which brackets do not
// count: string and character literals, comments and quote-like
// constructs.
type Skipper interface {

	// Skip returns the index just past the quoted or commented span that
	// starts at src[i], or i if no such span starts there. src is the
	// full text, so that spans may cross lines.
	Skip(src []byte, i int) int
}

// ScanSkipper is a [Skipper] that needs state across one forward scan of
// a text, such as for heredocs whose bodies follow the line that
// introduces them.
type ScanSkipper interface {
	Skipper

	// NewScan returns the skipper for one scan from the start of a text.
	// It must be called at each position the scan reaches, in order.
	NewScan() Skipper
}

// StartScan returns the skipper for one forward scan: a new one from
// NewScan if sk is a [ScanSkipper], otherwise sk, which may be nil.
func StartScan(sk Skipper) Skipper {
	if ss, ok := sk.(ScanSkipper); ok {
		return ss.NewScan()
	}
	return sk
}

// StartState returns the state at the start of a file for the lexer,
// which is zero unless the lexer has a StartState method.
func StartState(lx Lexer) State {
	if s, ok := lx.(interface{ StartState() State }); ok {
		return s.StartState()
	}
	return 0
}

// LexText lexes multi-line text starting in the given state, carrying
// the state across lines. It returns the tags and start state of each line
// and the state at the end of the text.
func LexText(lx Lexer, src []byte, st State) (tags []Line, states []State, end State) {
	for {
		ln, rest, more := bytes.Cut(src, []byte{'\n'})
		states = append(states, st)
		var tl Line
		tl, st = lx.LexLine(ln, st)
		tags = append(tags, tl)
		if !more {
			break
		}
		src = rest
	}
	return tags, states, st
}

var (
	registryMu sync.RWMutex
	registry   = map[fileinfo.Known]Lexer{}
)

// Register makes the lexer available for the given known file type.
// It is meant to be called from the init function of a language package.
func Register(known fileinfo.Known, lx Lexer) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[known] = lx
}

// For returns the registered lexer for the given known file type.
func For(known fileinfo.Known) (Lexer, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	lx, ok := registry[known]
	return lx, ok
}

// SkipperFor returns the skipper of the registered lexer for the given
// known file type, if it has one.
func SkipperFor(known fileinfo.Known) Skipper {
	lx, ok := For(known)
	if !ok {
		return nil
	}
	sk, _ := lx.(Skipper)
	return sk
}
