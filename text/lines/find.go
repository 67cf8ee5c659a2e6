// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"regexp"
	"slices"

	"japi.dev/core/text/search"
	"japi.dev/core/text/textpos"
)

// FindOptions are the options for [Lines.Find] and [Lines.ReplaceAll].
type FindOptions struct {

	// IgnoreCase matches regardless of case.
	IgnoreCase bool

	// Regexp treats the pattern as a regular expression.
	Regexp bool

	// LexItems only matches whole lexical items, such as a whole
	// identifier, using the current tags.
	LexItems bool
}

// Find returns the matches of the pattern in the text, in order.
// It returns an error only for an invalid regular expression.
func (ls *Lines) Find(pattern string, opts FindOptions) ([]textpos.Match, error) {
	ls.Lock()
	defer ls.Unlock()
	ms, _, err := ls.find(pattern, opts)
	return ms, err
}

// ReplaceAll replaces every match of the pattern with repl, in a single
// undo group, returning the number of replacements. For a regular
// expression, repl may refer to submatches as in [regexp.Regexp.Expand].
func (ls *Lines) ReplaceAll(pattern, repl string, opts FindOptions) (int, error) {
	ls.Lock()
	defer ls.unlock()
	ms, re, err := ls.find(pattern, opts)
	if err != nil || len(ms) == 0 {
		return 0, err
	}
	ls.undos.NewGroup()
	ls.undos.BeginGroup()
	for _, m := range slices.Backward(ms) {
		st := ls.posToOffset(m.Region.Start)
		n := ls.posToOffset(m.Region.End) - st
		rb := []byte(repl)
		if re != nil {
			src := ls.line(m.Region.Start.Line)[m.Region.Start.Char:]
			if sub := re.FindSubmatchIndex(src); sub != nil && sub[0] == 0 {
				rb = re.Expand(nil, rb, src, sub)
			}
		}
		for _, ed := range ls.replaceImpl(st, n, rb) {
			ls.editDone(ed)
		}
	}
	ls.undos.EndGroup()
	ls.undos.NewGroup()
	return len(ms), nil
}

func (ls *Lines) find(pattern string, opts FindOptions) ([]textpos.Match, *regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil, nil
	}
	src := ls.lineBytes()
	if opts.Regexp {
		expr := pattern
		if opts.IgnoreCase {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, nil, err
		}
		return search.Regexp(src, re), re, nil
	}
	if opts.LexItems {
		return search.LexItems(src, ls.tags, []byte(pattern), opts.IgnoreCase), nil, nil
	}
	return search.Lines(src, []byte(pattern), opts.IgnoreCase), nil, nil
}
