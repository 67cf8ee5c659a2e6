// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"slices"

	"github.com/alecthomas/chroma/v2"

	"japi.dev/core/text/parse/lexer"
	"japi.dev/core/text/token"
)

// ClassName returns the CSS class name for a token, which is the pygments
// short name of the corresponding chroma token type.
func ClassName(tk token.Tokens) string {
	return chroma.StandardTypes[ChromaFromToken(tk)]
}

// MarkupLineHTML returns the line marked up with a span for each tag,
// whose class is the [ClassName] of the tag token.
func MarkupLineHTML(src []byte, tags lexer.Line) []byte {
	var out []byte
	cp := 0
	for _, lx := range tags {
		st, ed := max(lx.Start, cp), min(lx.End, len(src))
		if st >= ed {
			continue
		}
		out = append(out, html.EscapeString(string(src[cp:st]))...)
		out = fmt.Appendf(out, `<span class="%s">%s</span>`, ClassName(lx.Token), html.EscapeString(string(src[st:ed])))
		cp = ed
	}
	return append(out, html.EscapeString(string(src[cp:]))...)
}

// WriteHTML writes a standalone HTML document with the lines marked up
// from their tags and a style sheet for the style.
func WriteHTML(w io.Writer, title string, lines [][]byte, tags []lexer.Line, hs Style) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n<style>\n", html.EscapeString(title))
	css := hs.ToCSS()
	toks := make([]token.Tokens, 0, len(css))
	for tk := range css {
		toks = append(toks, tk)
	}
	slices.Sort(toks)
	for _, tk := range toks {
		if tk == token.Text {
			fmt.Fprintf(bw, "pre { %s }\n", css[tk])
			continue
		}
		if cl := ClassName(tk); cl != "" {
			fmt.Fprintf(bw, ".%s { %s }\n", cl, css[tk])
		}
	}
	bw.WriteString("</style>\n</head>\n<body>\n<pre>")
	for ln, src := range lines {
		if ln < len(tags) {
			bw.Write(MarkupLineHTML(src, tags[ln]))
		} else {
			bw.WriteString(html.EscapeString(string(src)))
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("</pre>\n</body>\n</html>\n")
	return bw.Flush()
}
