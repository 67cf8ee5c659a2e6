// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"time"

	"japi.dev/core/text/highlighting"
	"japi.dev/core/text/parse/lexer"
	"japi.dev/core/text/textpos"
)

// relex lexes the dirty lines, carrying the lexer state forward from
// the first one. It stops once the state at the end of a line equals
// the stored start state of the next line and no dirty lines remain,
// skipping over clean lines between dirty ones. It returns the range of
// lines whose tags changed.
func (ls *Lines) relex() textpos.LineRange {
	lr := textpos.LineRange{End: -1}
	if !ls.Highlighter.Has() {
		for ln := range ls.dirty {
			ls.dirty[ln] = false
			ls.tags[ln] = nil
		}
		ls.ndirty = 0
		return lr
	}
	n := ls.numLines()
	ln := ls.nextDirty(0)
	for ln >= 0 && ln < n {
		tags, end := ls.Highlighter.TagsLine(ls.line(ln), ls.states[ln])
		if !tags.Equal(ls.tags[ln]) {
			lr.Extend(ln)
		}
		ls.tags[ln] = tags
		if ls.dirty[ln] {
			ls.dirty[ln] = false
			ls.ndirty--
		}
		if ln+1 >= n {
			break
		}
		if end == ls.states[ln+1] && !ls.dirty[ln+1] {
			if ls.ndirty == 0 {
				break
			}
			ln = ls.nextDirty(ln + 1)
			continue
		}
		ls.states[ln+1] = end
		ln++
	}
	if !lr.IsEmpty() {
		ls.sendRelex(lr)
	}
	return lr
}

// nextDirty returns the first dirty line at or after ln, or -1.
func (ls *Lines) nextDirty(ln int) int {
	if ls.ndirty == 0 {
		return -1
	}
	for ; ln < len(ls.dirty); ln++ {
		if ls.dirty[ln] {
			return ln
		}
	}
	return -1
}

// dirtyLines returns the line numbers of the dirty lines.
func (ls *Lines) dirtyLines() []int {
	var lns []int
	for ln, d := range ls.dirty {
		if d {
			lns = append(lns, ln)
		}
	}
	return lns
}

// setLanguage sets the lexer and lexes all of the text again.
func (ls *Lines) setLanguage(lx lexer.Lexer) {
	ls.Highlighter.Lexer = lx
	ls.markAllDirty()
	ls.relex()
}

// setStyle sets the highlighting style by name.
func (ls *Lines) setStyle(name string) {
	ls.Settings.Highlighting = name
	ls.Highlighter.SetStyle(name)
}

// runs returns the style runs of line ln.
func (ls *Lines) runs(ln int) []highlighting.Run {
	return ls.Highlighter.Style.Runs(ls.tags[ln], ls.lineLen(ln))
}

// startDelayedRelex starts a timer for lexing after
// [Settings.RelexDelay], if it is set.
func (ls *Lines) startDelayedRelex() {
	if ls.Settings.RelexDelay <= 0 || !ls.Highlighter.Has() {
		return
	}
	ls.stopDelayedRelex()
	ls.relexTimer = time.AfterFunc(time.Duration(ls.Settings.RelexDelay), func() {
		ls.Lock()
		ls.relexTimer = nil
		ls.relex()
		ls.unlock()
	})
}

func (ls *Lines) stopDelayedRelex() {
	if ls.relexTimer != nil {
		ls.relexTimer.Stop()
		ls.relexTimer = nil
	}
}
