// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"japi.dev/core/base/fileinfo"
	"japi.dev/core/text/highlighting"
	"japi.dev/core/text/parse/lexer"
)

// minSimilarity is the similarity below which no suggestion is made.
const minSimilarity = 0.5

// suggest returns the candidate most similar to name, or "" if none is
// similar enough.
func suggest(name string, candidates []string) string {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best, bestSim := "", minSimilarity
	for _, c := range candidates {
		if sim := strutil.Similarity(name, c, lev); sim > bestSim {
			best, bestSim = c, sim
		}
	}
	return best
}

// unknownError returns an error for an unknown name of the given kind,
// suggesting the most similar candidate.
func unknownError(kind, name string, candidates []string) error {
	if s := suggest(name, candidates); s != "" {
		return fmt.Errorf("unknown %s %q, did you mean %q?", kind, name, s)
	}
	return fmt.Errorf("unknown %s %q", kind, name)
}

// checkStyle returns an error if there is no highlighting style of the
// given name.
func checkStyle(name string) error {
	nms := highlighting.StyleNames()
	if name == "" || slices.Contains(nms, name) {
		return nil
	}
	return unknownError("style", name, nms)
}

// lexerNames returns the names of the file types with a lexer.
func lexerNames() []string {
	var nms []string
	for kn := fileinfo.Unknown + 1; kn < fileinfo.KnownN; kn++ {
		if _, ok := lexer.For(kn); ok {
			nms = append(nms, strings.ToLower(kn.String()))
		}
	}
	return nms
}

// lookupLexer returns the lexer for the named language.
func lookupLexer(name string) (lexer.Lexer, error) {
	kn, err := fileinfo.KnownByName(name)
	if err == nil {
		if lx, ok := lexer.For(kn); ok {
			return lx, nil
		}
	}
	return nil, unknownError("language", name, lexerNames())
}
