// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"log/slog"

	"japi.dev/core/base/fileinfo"
	"japi.dev/core/text/parse/lexer"
	_ "japi.dev/core/text/parse/supportedlanguages"
)

// Highlighter performs syntax highlighting, using a hand-written lexer
// if one is registered, otherwise falling back on chroma.
type Highlighter struct {

	// StyleName is the syntax highlighting style to use.
	StyleName string

	// Style is the current highlighting style.
	Style Style

	// Lexer is the lexer for the current file, nil if there is none.
	Lexer lexer.Lexer

	// Off is an external toggle to turn off automatic highlighting.
	Off bool

	lastStyle string
}

// Has returns whether there is a lexer and highlighting is on.
func (hi *Highlighter) Has() bool {
	return hi.Lexer != nil && !hi.Off
}

// Init initializes the syntax highlighting for the given file.
func (hi *Highlighter) Init(info *fileinfo.FileInfo) {
	if hi.StyleName == "" {
		hi.StyleName = DefaultStyle
	}
	hi.Lexer = nil
	if info != nil && !info.Binary {
		hi.Lexer = LexerFor(info.Name, info.Known)
	}
	if hi.StyleName != hi.lastStyle || hi.Style == nil {
		hi.SetStyle(hi.StyleName)
	}
}

// SetStyle sets the highlighting style, keeping the current one if the
// name is not known.
func (hi *Highlighter) SetStyle(name string) {
	st, ok := AvailableStyle(name)
	if !ok {
		slog.Error("Highlighter Style not found:", "style", name)
		if hi.Style != nil {
			return
		}
	}
	hi.StyleName = name
	hi.Style = st
	hi.lastStyle = name
}

// StartState returns the lexer state at the start of a file.
func (hi *Highlighter) StartState() lexer.State {
	if hi.Lexer == nil {
		return 0
	}
	return lexer.StartState(hi.Lexer)
}

// TagsLine returns the tags for one line starting in the given state,
// and the state at its end.
func (hi *Highlighter) TagsLine(src []byte, st lexer.State) (lexer.Line, lexer.State) {
	if !hi.Has() {
		return nil, 0
	}
	return hi.Lexer.LexLine(src, st)
}

// TagsAll returns the tags for all lines of the text, with the start
// state of each line.
func (hi *Highlighter) TagsAll(txt []byte) ([]lexer.Line, []lexer.State) {
	if !hi.Has() {
		return nil, nil
	}
	tags, states, _ := lexer.LexText(hi.Lexer, txt, hi.StartState())
	return tags, states
}
