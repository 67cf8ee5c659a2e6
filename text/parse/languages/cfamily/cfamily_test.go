// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfamily

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"japi.dev/core/base/fileinfo"
	"japi.dev/core/text/parse/lexer"
)

func toks(ln lexer.Line, src []byte) []string {
	var out []string
	for _, lx := range ln {
		out = append(out, lx.Token.String()+":"+string(src[lx.Start:lx.End]))
	}
	return out
}

func lexLines(lg *Lang, text string) ([][]string, lexer.State) {
	tags, _, end := lexer.LexText(lg, []byte(text), 0)
	lines := strings.Split(text, "\n")
	out := make([][]string, len(lines))
	for i, ln := range lines {
		out[i] = toks(tags[i], []byte(ln))
	}
	return out, end
}

func TestRegistered(t *testing.T) {
	for known, name := range map[fileinfo.Known]string{
		fileinfo.C: "C", fileinfo.Cpp: "C++", fileinfo.Java: "Java", fileinfo.Go: "Go",
	} {
		lx, ok := lexer.For(known)
		require.True(t, ok, name)
		assert.Equal(t, name, lx.Name())
		assert.NotNil(t, lexer.SkipperFor(known))
	}
}

func TestStatements(t *testing.T) {
	tests := []struct {
		lg   *Lang
		src  string
		want []string
	}{
		{C, `int x = 0x1F;`, []string{"KeywordType:int", "Name:x", "Operator:=", "LitNumHex:0x1F", "PunctSep:;"}},
		{C, `#include <stdio.h> // io`, []string{"CommentPreproc:#include <stdio.h>", "Comment:// io"}},
		{C, `printf("%d\n", n);`, []string{"NameBuiltin:printf", "PunctGpLParen:(", `LitStrDouble:"%d\n"`, "PunctSep:,", "Name:n", "PunctGpRParen:)", "PunctSep:;"}},
		{C, `c = 'a' + 1.5f;`, []string{"Name:c", "Operator:=", "LitStrSingle:'a'", "Operator:+", "LitNumFloat:1.5f", "PunctSep:;"}},
		{C, `return n >> 2 /* shift */;`, []string{"Keyword:return", "Name:n", "Operator:>>", "LitNumInteger:2", "Comment:/* shift */", "PunctSep:;"}},
		{Cpp, `auto n = 1'000'000ULL;`, []string{"KeywordDeclaration:auto", "Name:n", "Operator:=", "LitNumInteger:1'000'000ULL", "PunctSep:;"}},
		{Cpp, `std::string s = R"x(a "q" b)x";`, []string{"NameBuiltin:std", "Operator:::", "NameBuiltin:string", "Name:s", "Operator:=", `LitStrDouble:R"x(a "q" b)x"`, "PunctSep:;"}},
		{Cpp, `p->f(nullptr);`, []string{"Name:p", "Operator:->", "NameFunction:f", "PunctGpLParen:(", "NameConstant:nullptr", "PunctGpRParen:)", "PunctSep:;"}},
		{Java, `@Override public String toString() {`, []string{"NameAttribute:@Override", "KeywordDeclaration:public", "NameBuiltin:String", "NameFunction:toString", "PunctGpLParen:(", "PunctGpRParen:)", "PunctGpLBrace:{"}},
		{Java, `x >>>= 3;`, []string{"Name:x", "Operator:>>>=", "LitNumInteger:3", "PunctSep:;"}},
		{Go, "s := `a\"b`", []string{"Name:s", "Operator::=", "LitStrBacktick:`a\"b`"}},
		{Go, `z := 2i + 1.5e3`, []string{"Name:z", "Operator::=", "LitNumInteger:2i", "Operator:+", "LitNumFloat:1.5e3"}},
		{Go, `func (r *R) Read(p []byte) {`, []string{
			"KeywordDeclaration:func", "PunctGpLParen:(", "Name:r", "Operator:*", "Name:R", "PunctGpRParen:)",
			"NameFunction:Read", "PunctGpLParen:(", "Name:p", "PunctGpLBrack:[", "PunctGpRBrack:]", "KeywordType:byte",
			"PunctGpRParen:)", "PunctGpLBrace:{"}},
	}
	for _, tt := range tests {
		ln, st := tt.lg.LexLine([]byte(tt.src), 0)
		assert.Equal(t, tt.want, toks(ln, []byte(tt.src)), "%s: %s", tt.lg.Name(), tt.src)
		assert.Equal(t, Start, st.Kind(), tt.src)
	}
}

func TestGoHashIsError(t *testing.T) {
	src := []byte(`# x`)
	ln, _ := Go.LexLine(src, 0)
	assert.Equal(t, []string{"Error:#", "Name:x"}, toks(ln, src))
}

func TestBlockComment(t *testing.T) {
	lines, end := lexLines(C, "a /* one\ntwo\nthree */ b")
	assert.Equal(t, []string{"Name:a", "Comment:/* one"}, lines[0])
	assert.Equal(t, []string{"Comment:two"}, lines[1])
	assert.Equal(t, []string{"Comment:three */", "Name:b"}, lines[2])
	assert.Equal(t, Start, end.Kind())

	lines, _ = lexLines(Java, "/** doc\n * more */")
	assert.Equal(t, []string{"CommentDoc:/** doc"}, lines[0])
	assert.Equal(t, []string{"CommentDoc: * more */"}, lines[1])
}

func TestContinuations(t *testing.T) {
	lines, end := lexLines(C, "#define M(x) \\\n  ((x) + 1)\nint y;")
	assert.Equal(t, []string{`CommentPreproc:#define M(x) \`}, lines[0])
	assert.Equal(t, []string{"CommentPreproc:  ((x) + 1)"}, lines[1])
	assert.Equal(t, []string{"KeywordType:int", "Name:y", "PunctSep:;"}, lines[2])
	assert.Equal(t, Start, end.Kind())

	lines, _ = lexLines(C, "s = \"ab\\\ncd\";")
	assert.Equal(t, []string{"Name:s", "Operator:=", `LitStrDouble:"ab\`}, lines[0])
	assert.Equal(t, []string{`LitStrDouble:cd"`, "PunctSep:;"}, lines[1])
}

func TestRawStrings(t *testing.T) {
	lines, end := lexLines(Go, "x := `one\ntwo` + y")
	assert.Equal(t, []string{"Name:x", "Operator::=", "LitStrBacktick:`one"}, lines[0])
	assert.Equal(t, []string{"LitStrBacktick:two`", "Operator:+", "Name:y"}, lines[1])
	assert.Equal(t, Start, end.Kind())

	lines, _ = lexLines(Cpp, "R\"sql(select\n)\" still)sql\" x")
	assert.Equal(t, []string{`LitStrDouble:R"sql(select`}, lines[0])
	assert.Equal(t, []string{`LitStrDouble:)" still)sql"`, "Name:x"}, lines[1])

	lines, end = lexLines(Java, "s = \"\"\"\n  text \"q\"\n  \"\"\";")
	assert.Equal(t, []string{"Name:s", "Operator:=", `LitStrDouble:"""`}, lines[0])
	assert.Equal(t, []string{`LitStrDouble:  text "q"`}, lines[1])
	assert.Equal(t, []string{`LitStrDouble:  """`, "PunctSep:;"}, lines[2])
	assert.Equal(t, Start, end.Kind())
}

func TestNeverPanics(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	alphabet := []byte("abR09xu'\"`#/*\\@(){}[]<>=:;. \n\t")
	for _, lg := range []*Lang{C, Cpp, Java, Go} {
		for n := 0; n < 300; n++ {
			src := make([]byte, rnd.Intn(60))
			for i := range src {
				src[i] = alphabet[rnd.Intn(len(alphabet))]
			}
			assert.NotPanics(t, func() {
				lexer.LexText(lg, src, 0)
				for i := range src {
					lg.Skip(src, i)
				}
				lexer.Balance(src, len(src)/2, lg)
			})
		}
	}
}

func TestSkipperBalance(t *testing.T) {
	src := []byte("f(\"(\", ')', /* ( */ `)`) // )\n")
	cl, err := lexer.MatchBracket(src, 1, Go)
	require.NoError(t, err)
	assert.Equal(t, 23, cl)

	src = []byte(`g(R"x()")x", 1'0)`)
	cl, err = lexer.MatchBracket(src, 1, Cpp)
	require.NoError(t, err)
	assert.Equal(t, len(src)-1, cl)

	src = []byte("h(\"\"\"\n)\n\"\"\")")
	cl, err = lexer.MatchBracket(src, 1, Java)
	require.NoError(t, err)
	assert.Equal(t, len(src)-1, cl)
}
