// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"japi.dev/core/base/fileinfo"
	"japi.dev/core/text/token"
)

func TestStatePacking(t *testing.T) {
	var st State
	st = st.WithKind(17).SetFlag(true, Interpolate|Indented).WithDepth(3)
	st = st.WithDelims('{', '}').WithHash(HashTerminator([]byte("EOT")))
	assert.Equal(t, 17, st.Kind())
	assert.True(t, st.Has(Interpolate))
	assert.True(t, st.Has(Indented))
	assert.False(t, st.Has(Operand))
	assert.Equal(t, 3, st.Depth())
	assert.Equal(t, byte('{'), st.Open())
	assert.Equal(t, byte('}'), st.Close())
	assert.Equal(t, HashTerminator([]byte("EOT")), st.Hash())
	assert.NotEqual(t, HashTerminator([]byte("EOT")), HashTerminator([]byte("END")))

	st2 := st.WithKind(2).WithDepth(MaxDepth + 10)
	assert.Equal(t, 2, st2.Kind())
	assert.Equal(t, MaxDepth, st2.Depth())
	assert.Equal(t, byte('{'), st2.Open())

	r := st.Reset(1)
	assert.Equal(t, 1, r.Kind())
	assert.True(t, r.Has(Interpolate|Indented))
	assert.Equal(t, 0, r.Depth())
	assert.Equal(t, byte(0), r.Open())
	assert.Equal(t, uint32(0), r.Hash())
}

func TestKeywords(t *testing.T) {
	kw := NewKeywords(
		KeywordSet{token.Keyword, []string{"if", "else", "elsif", "for", "foreach"}},
		KeywordSet{token.NameBuiltin, []string{"print", "printf", "for"}},
	)
	tok, ok := kw.MatchString("elsif")
	assert.True(t, ok)
	assert.Equal(t, token.Keyword, tok)
	tok, ok = kw.MatchString("for")
	assert.True(t, ok)
	assert.Equal(t, token.NameBuiltin, tok)
	_, ok = kw.MatchString("els")
	assert.False(t, ok)
	_, ok = kw.MatchString("elsifx")
	assert.False(t, ok)
	_, ok = kw.MatchString("")
	assert.False(t, ok)

	n, tok := kw.Scan([]byte("x printf("), 2)
	assert.Equal(t, 6, n)
	assert.Equal(t, token.NameBuiltin, tok)
	n, _ = kw.Scan([]byte("foreachx"), 0)
	assert.Equal(t, 7, n)
	n, _ = kw.Scan([]byte("zip"), 0)
	assert.Equal(t, 0, n)
}

func TestScanner(t *testing.T) {
	sc := NewScanner([]byte(` ( Hello } , ) ] Worabcld!`))
	assert.True(t, sc.ReadUntil("("))
	assert.Equal(t, 2, sc.Pos)
	assert.True(t, sc.ReadUntil("}"))
	assert.Equal(t, 10, sc.Pos)
	assert.True(t, sc.ReadUntil("abc"))
	assert.Equal(t, 23, sc.Pos)
	assert.False(t, sc.ReadUntil("zz"))
	assert.True(t, sc.EOL())

	numbers := []struct {
		src string
		tok token.Tokens
		end int
	}{
		{"0x1234", token.LitNumHex, 6},
		{"0123456789", token.LitNumInteger, 10},
		{"3.14", token.LitNumFloat, 4},
		{"1e10", token.LitNumFloat, 4},
		{"1_000_000;", token.LitNumInteger, 9},
		{"1..10", token.LitNumInteger, 1},
		{"2.5E-3 ", token.LitNumFloat, 6},
		{"0b101", token.LitNumInteger, 5},
		{"7else", token.LitNumInteger, 1},
	}
	for _, n := range numbers {
		sc := NewScanner([]byte(n.src))
		assert.Equal(t, n.tok, sc.ReadNumber(), n.src)
		assert.Equal(t, n.end, sc.Pos, n.src)
	}

	sc = NewScanner([]byte(`abc\"def" rest`))
	assert.True(t, sc.ReadQuoted('"', true))
	assert.Equal(t, 9, sc.Pos)

	sc = NewScanner([]byte(`a(b)c) x`))
	assert.Equal(t, 0, sc.ReadNested('(', ')', 1, true))
	assert.Equal(t, 6, sc.Pos)

	sc = NewScanner([]byte(`a(b`))
	assert.Equal(t, 2, sc.ReadDelimited('(', ')', 1, true))
	assert.True(t, sc.EOL())

	sc = NewScanner([]byte("my_var2 = 1"))
	assert.Equal(t, "my_var2", string(sc.ReadIdent()))
	sc.SkipSpace()
	assert.Equal(t, byte('='), sc.Ch())
}

func TestLine(t *testing.T) {
	var ln Line
	ln.Add(token.Keyword, 0, 2)
	ln.Add(token.Name, 3, 3)
	ln.Add(token.Name, 3, 6)
	ln.AddMerge(token.Name, 6, 8)
	ln.AddMerge(token.Operator, 9, 10)
	require.Len(t, ln, 3)
	assert.Equal(t, Lex{token.Name, 3, 8}, ln[1])
	assert.Equal(t, token.Name, ln.TokenAt(7))
	assert.Equal(t, token.None, ln.TokenAt(8))
	assert.Equal(t, token.Operator, ln.TokenAt(9))
	assert.Nil(t, ln.AtPos(20))
	assert.True(t, ln.Equal(ln.Clone()))
}

// wordLexer tags words and carries a quote state across lines.
type wordLexer struct{}

func (wordLexer) Name() string { return "words" }

func (wordLexer) LexLine(src []byte, st State) (Line, State) {
	var ln Line
	sc := NewScanner(src)
	if st.Kind() == 1 {
		if sc.ReadQuoted('"', true) {
			st = st.WithKind(0)
		}
		ln.Add(token.LitStrDouble, 0, sc.Pos)
	}
	for !sc.EOL() {
		s := sc.Pos
		switch c := sc.Ch(); {
		case c == '"':
			sc.Next()
			if !sc.ReadQuoted('"', true) {
				st = st.WithKind(1)
			}
			ln.Add(token.LitStrDouble, s, sc.Pos)
		case IsIdentStart(c):
			sc.ReadIdent()
			ln.Add(token.Name, s, sc.Pos)
		default:
			sc.Next()
		}
	}
	return ln, st
}

func TestLexTextRegistry(t *testing.T) {
	Register(fileinfo.PlainText, wordLexer{})
	lx, ok := For(fileinfo.PlainText)
	require.True(t, ok)
	assert.Nil(t, SkipperFor(fileinfo.PlainText))

	tags, states, end := LexText(lx, []byte("a \"b\nc\" d\ne"), 0)
	require.Len(t, tags, 3)
	assert.Equal(t, []State{0, 1, 0}, states)
	assert.Equal(t, State(0), end)
	assert.Equal(t, Line{{token.Name, 0, 1}, {token.LitStrDouble, 2, 4}}, tags[0])
	assert.Equal(t, Line{{token.LitStrDouble, 0, 2}, {token.Name, 3, 4}}, tags[1])
	assert.Equal(t, Line{{token.Name, 0, 1}}, tags[2])
}
