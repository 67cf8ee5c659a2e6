// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"bytes"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"japi.dev/core/base/fileinfo"
	"japi.dev/core/text/parse/lexer"
	"japi.dev/core/text/token"
)

var (
	black = color.RGBA{A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
)

func testStyle() Style {
	return Style{
		token.Text:    &StyleEntry{Color: black},
		token.Keyword: &StyleEntry{Color: red, Bold: Yes},
		token.Comment: &StyleEntry{Color: green, Italic: Yes},
	}
}

func TestTokenFromChroma(t *testing.T) {
	assert.Equal(t, token.LitStrDouble, TokenFromChroma(chroma.LiteralStringDouble))
	assert.Equal(t, token.LitNum, TokenFromChroma(chroma.LiteralNumberOct))
	assert.Equal(t, token.Comment, TokenFromChroma(chroma.CommentSingle))
	assert.Equal(t, token.Name, TokenFromChroma(chroma.NameVariableAnonymous))
	assert.Equal(t, token.Text, TokenFromChroma(chroma.GenericDeleted))

	assert.Equal(t, chroma.LiteralStringDouble, ChromaFromToken(token.LitStrDouble))
	assert.Equal(t, chroma.Punctuation, ChromaFromToken(token.PunctGpLParen))
	assert.Equal(t, chroma.CommentMultiline, ChromaFromToken(token.CommentDoc))
}

func TestChromaStyle(t *testing.T) {
	hs, ok := AvailableStyle("emacs")
	require.True(t, ok)
	kw := hs.Tag(token.Keyword)
	assert.Equal(t, "#aa22ff", Hex(kw.Color))
	assert.Equal(t, Yes, kw.Bold)
	assert.Equal(t, "#bb4444", Hex(hs.Tag(token.LitStrDouble).Color))
	assert.Equal(t, Yes, hs.Tag(token.CommentDoc).Italic)

	def, ok := AvailableStyle("no-such-style")
	assert.False(t, ok)
	assert.NotEmpty(t, def)
	assert.Contains(t, StyleNames(), "monokai")

	AddCustomStyles(Styles{"mine": testStyle()})
	mine, ok := AvailableStyle("mine")
	assert.True(t, ok)
	assert.Equal(t, red, mine.Tag(token.Keyword).Color)
	assert.Contains(t, StyleNames(), "mine")
}

func TestInherit(t *testing.T) {
	hs := testStyle()
	se := hs.Tag(token.KeywordType)
	assert.Equal(t, red, se.Color)
	assert.Equal(t, Yes, se.Bold)
	assert.Equal(t, black, hs.Tag(token.NameFunction).Color)
	assert.Equal(t, "italic #00ff00", hs.Tag(token.CommentPreproc).String())
}

func TestRuns(t *testing.T) {
	hs := testStyle()
	var tags lexer.Line
	tags.Add(token.Keyword, 0, 2)
	tags.Add(token.Comment, 5, 9)
	runs := hs.Runs(tags, 12)
	require.Len(t, runs, 4)
	assert.Equal(t, []int{0, 2, 5, 9}, []int{runs[0].Offset, runs[1].Offset, runs[2].Offset, runs[3].Offset})
	assert.Equal(t, token.Keyword, runs[0].Token)
	assert.Equal(t, red, runs[0].Entry.Color)
	assert.Equal(t, black, runs[1].Entry.Color)
	assert.Equal(t, green, runs[2].Entry.Color)
	assert.Equal(t, 12, RunEnd(runs, 3, 12))

	tags = nil
	tags.Add(token.Name, 0, 1)
	tags.Add(token.Operator, 2, 3)
	runs = hs.Runs(tags, 4)
	assert.Len(t, runs, 1)

	assert.Empty(t, hs.Runs(nil, 0))
}

func TestChromaLexer(t *testing.T) {
	cl := NewChromaLexer(lexers.Get("python"))
	assert.Equal(t, "Python", cl.Name())
	src := []byte("x = 1  # c")
	tags, st := cl.LexLine(src, 0)
	assert.Equal(t, lexer.State(0), st)
	assert.Contains(t, tags, lexer.Lex{Token: token.Comment, Start: 7, End: 10})
	assert.Contains(t, tags, lexer.Lex{Token: token.Name, Start: 0, End: 1})
	for _, lx := range tags {
		assert.LessOrEqual(t, lx.End, len(src))
	}
}

func TestLexerFor(t *testing.T) {
	lx := LexerFor("a.pl", fileinfo.Perl)
	require.NotNil(t, lx)
	assert.Equal(t, "Perl", lx.Name())

	lx = LexerFor("a.py", fileinfo.Python)
	require.NotNil(t, lx)
	assert.Equal(t, "Python", lx.Name())

	assert.Nil(t, LexerFor("a.no-such-extension", fileinfo.Unknown))
}

func TestHighlighter(t *testing.T) {
	fi := &fileinfo.FileInfo{Name: "x.go", Known: fileinfo.Go}
	hi := &Highlighter{}
	hi.Init(fi)
	require.True(t, hi.Has())
	assert.Equal(t, DefaultStyle, hi.StyleName)
	tags, states := hi.TagsAll([]byte("a := `x\ny`"))
	require.Len(t, tags, 2)
	assert.NotEqual(t, lexer.State(0), states[1])

	hi.SetStyle("no-such-style")
	assert.Equal(t, DefaultStyle, hi.StyleName)

	hi.Off = true
	assert.False(t, hi.Has())
	ln, _ := hi.TagsLine([]byte("x"), 0)
	assert.Nil(t, ln)
}

func TestWriteTerminal(t *testing.T) {
	hs := testStyle()
	lines := [][]byte{[]byte("if x"), []byte("plain")}
	var tags lexer.Line
	tags.Add(token.Keyword, 0, 2)

	var b bytes.Buffer
	require.NoError(t, WriteTerminal(&b, lines, []lexer.Line{tags}, hs, termenv.Ascii))
	assert.Equal(t, "if x\nplain\n", b.String())

	b.Reset()
	require.NoError(t, WriteTerminal(&b, lines, []lexer.Line{tags}, hs, termenv.TrueColor))
	assert.Contains(t, b.String(), "\x1b[")
	assert.Contains(t, b.String(), "plain\n")
}

func TestHTML(t *testing.T) {
	var tags lexer.Line
	tags.Add(token.Name, 0, 1)
	assert.Equal(t, `<span class="n">a</span>&lt;b`, string(MarkupLineHTML([]byte("a<b"), tags)))

	var b bytes.Buffer
	require.NoError(t, WriteHTML(&b, "t", [][]byte{[]byte("a<b")}, []lexer.Line{tags}, testStyle()))
	assert.Contains(t, b.String(), ".k { color: #ff0000; font-weight: bold }")
	assert.Contains(t, b.String(), `<pre><span class="n">a</span>&lt;b`)
}

func TestStylesJSON(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "styles.json")
	ss := Styles{"mine": testStyle()}
	require.NoError(t, ss.SaveJSON(fn))
	var got Styles
	require.NoError(t, got.OpenJSON(fn))
	assert.Equal(t, red, got["mine"].Tag(token.Keyword).Color)
	assert.Equal(t, []string{"mine"}, got.Names())
}
