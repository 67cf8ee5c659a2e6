// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"bufio"
	"io"

	"github.com/muesli/termenv"

	"japi.dev/core/text/parse/lexer"
)

// termStyle returns the terminal style for an entry. Backgrounds are not
// drawn so that the terminal's own background shows through.
func termStyle(p termenv.Profile, se StyleEntry, s string) termenv.Style {
	ts := p.String(s)
	if !isNil(se.Color) {
		ts = ts.Foreground(p.Color(Hex(se.Color)))
	}
	if se.Bold == Yes {
		ts = ts.Bold()
	}
	if se.Italic == Yes {
		ts = ts.Italic()
	}
	if se.Underline == Yes {
		ts = ts.Underline()
	}
	return ts
}

// WriteTerminal writes the lines to w with ANSI escapes for the style
// runs of their tags, using the given color profile. tags may be shorter
// than lines, in which case the remaining lines are written plain.
func WriteTerminal(w io.Writer, lines [][]byte, tags []lexer.Line, hs Style, p termenv.Profile) error {
	bw := bufio.NewWriter(w)
	for ln, src := range lines {
		if ln >= len(tags) || p == termenv.Ascii {
			bw.Write(src)
			bw.WriteByte('\n')
			continue
		}
		runs := hs.Runs(tags[ln], len(src))
		for i, r := range runs {
			txt := string(src[r.Offset:RunEnd(runs, i, len(src))])
			bw.WriteString(termStyle(p, r.Entry, txt).String())
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
