// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perl

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"japi.dev/core/base/fileinfo"
	"japi.dev/core/text/parse/lexer"
)

// toks returns the "Token:text" strings for the tags of a line.
func toks(ln lexer.Line, src []byte) []string {
	var out []string
	for _, lx := range ln {
		out = append(out, lx.Token.String()+":"+string(src[lx.Start:lx.End]))
	}
	return out
}

// lexLines lexes the lines of text from the start state, returning the
// tokens of each line and the final state.
func lexLines(text string) ([][]string, lexer.State) {
	tags, _, end := lexer.LexText(ThePerl, []byte(text), ThePerl.StartState())
	lines := strings.Split(text, "\n")
	out := make([][]string, len(lines))
	for i, ln := range lines {
		out[i] = toks(tags[i], []byte(ln))
	}
	return out, end
}

func lexOne(t *testing.T, line string) []string {
	t.Helper()
	ln, _ := ThePerl.LexLine([]byte(line), ThePerl.StartState())
	return toks(ln, []byte(line))
}

func TestRegistered(t *testing.T) {
	lx, ok := lexer.For(fileinfo.Perl)
	require.True(t, ok)
	assert.Equal(t, "Perl", lx.Name())
	assert.NotNil(t, lexer.SkipperFor(fileinfo.Perl))
	assert.Equal(t, ThePerl.StartState(), lexer.StartState(lx))
}

func TestStatements(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{`my $x = 5;`, []string{"KeywordDeclaration:my", "NameVar:$x", "Operator:=", "LitNumInteger:5", "PunctSep:;"}},
		{`$y = $x / 2;`, []string{"NameVar:$y", "Operator:=", "NameVar:$x", "Operator:/", "LitNumInteger:2", "PunctSep:;"}},
		{`@parts = split /,/, $s;`, []string{"NameVar:@parts", "Operator:=", "NameBuiltin:split", "LitStrRegex:/,/", "PunctSep:,", "NameVar:$s", "PunctSep:;"}},
		{`if ($s =~ m{a(b)c}i) { print "ok $1\n"; }`, []string{
			"Keyword:if", "PunctGpLParen:(", "NameVar:$s", "Operator:=~", "LitStrRegex:m{a(b)c}i", "PunctGpRParen:)",
			"PunctGpLBrace:{", "NameBuiltin:print", `LitStrDouble:"ok $1\n"`, "PunctSep:;", "PunctGpRBrace:}"}},
		{`print "Hi, $name!";`, []string{"NameBuiltin:print", `LitStrDouble:"Hi, `, "NameVar:$name", `LitStrDouble:!"`, "PunctSep:;"}},
		{`print 'Hi, $name';`, []string{"NameBuiltin:print", "LitStrSingle:'Hi, $name'", "PunctSep:;"}},
		{`$x =~ s/foo/bar/g;`, []string{"NameVar:$x", "Operator:=~", "LitStrRegex:s/foo/bar/g", "PunctSep:;"}},
		{`tr/a-z/A-Z/;`, []string{"LitStrRegex:tr/a-z/A-Z/", "PunctSep:;"}},
		{`my @w = qw(a b c);`, []string{"KeywordDeclaration:my", "NameVar:@w", "Operator:=", "LitStrOther:qw(a b c)", "PunctSep:;"}},
		{`$h{x} / 2`, []string{"NameVar:$h", "PunctGpLBrace:{", "LitStrOther:x", "PunctGpRBrace:}", "Operator:/", "LitNumInteger:2"}},
		{`%h = (q => 1);`, []string{"NameVar:%h", "Operator:=", "PunctGpLParen:(", "LitStrOther:q", "Operator:=>", "LitNumInteger:1", "PunctGpRParen:)", "PunctSep:;"}},
		{`$r = $a % $b;`, []string{"NameVar:$r", "Operator:=", "NameVar:$a", "Operator:%", "NameVar:$b", "PunctSep:;"}},
		{`sub max($$) {`, []string{"KeywordDeclaration:sub", "NameFunction:max", "LitStrOther:($$)", "PunctGpLBrace:{"}},
		{`$_ = $0 . $$;`, []string{"NameVarMagic:$_", "Operator:=", "NameVarMagic:$0", "Operator:.", "NameVarMagic:$$", "PunctSep:;"}},
		{`print STDERR "x" x 3;`, []string{"NameBuiltin:print", "NameConstant:STDERR", `LitStrDouble:"x"`, "OpWord:x", "LitNumInteger:3", "PunctSep:;"}},
		{`$obj->s(1);`, []string{"NameVar:$obj", "Operator:->", "NameFunction:s", "PunctGpLParen:(", "LitNumInteger:1", "PunctGpRParen:)", "PunctSep:;"}},
		{`while (<STDIN>) { last }`, []string{"Keyword:while", "PunctGpLParen:(", "LitStrOther:<STDIN>", "PunctGpRParen:)", "PunctGpLBrace:{", "Keyword:last", "PunctGpRBrace:}"}},
		{`$n = 1 << 2;`, []string{"NameVar:$n", "Operator:=", "LitNumInteger:1", "Operator:<<", "LitNumInteger:2", "PunctSep:;"}},
		{`$#list`, []string{"NameVar:$#list"}},
		{`@{$r}`, []string{"NameVar:@", "PunctGpLBrace:{", "NameVar:$r", "PunctGpRBrace:}"}},
		{`#!/usr/bin/perl -w`, []string{"CommentHashbang:#!/usr/bin/perl -w"}},
		{`f(); # (call`, []string{"NameFunction:f", "PunctGpLParen:(", "PunctGpRParen:)", "PunctSep:;", "Comment:# (call"}},
		{`for my $i (1..10) {}`, []string{"Keyword:for", "KeywordDeclaration:my", "NameVar:$i", "PunctGpLParen:(",
			"LitNumInteger:1", "Operator:..", "LitNumInteger:10", "PunctGpRParen:)", "PunctGpLBrace:{", "PunctGpRBrace:}"}},
		{`$v = 0x1F + 3.5e2;`, []string{"NameVar:$v", "Operator:=", "LitNumHex:0x1F", "Operator:+", "LitNumFloat:3.5e2", "PunctSep:;"}},
		{`LOOP: while (1) {}`, []string{"NameLabel:LOOP", "Operator::", "Keyword:while", "PunctGpLParen:(", "LitNumInteger:1",
			"PunctGpRParen:)", "PunctGpLBrace:{", "PunctGpRBrace:}"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, lexOne(t, tt.src), tt.src)
	}
}

func TestMultiLineString(t *testing.T) {
	lines, end := lexLines("my $s = \"abc\ndef $x\nghi\";\nprint $s;")
	assert.Equal(t, []string{"KeywordDeclaration:my", "NameVar:$s", "Operator:=", `LitStrDouble:"abc`}, lines[0])
	assert.Equal(t, []string{"LitStrDouble:def ", "NameVar:$x"}, lines[1])
	assert.Equal(t, []string{`LitStrDouble:ghi"`, "PunctSep:;"}, lines[2])
	assert.Equal(t, []string{"NameBuiltin:print", "NameVar:$s", "PunctSep:;"}, lines[3])
	assert.Equal(t, Start, end.Kind())
}

func TestQuoteLike(t *testing.T) {
	lines, _ := lexLines("my @w = qw(\n  a b\n);\n$x = qq\n{v=$v};")
	assert.Equal(t, []string{"KeywordDeclaration:my", "NameVar:@w", "Operator:=", "LitStrOther:qw("}, lines[0])
	assert.Equal(t, []string{"LitStrOther:  a b"}, lines[1])
	assert.Equal(t, []string{"LitStrOther:)", "PunctSep:;"}, lines[2])
	assert.Equal(t, []string{"NameVar:$x", "Operator:=", "LitStrDouble:qq"}, lines[3])
	assert.Equal(t, []string{"LitStrDouble:{v=", "NameVar:$v", "LitStrDouble:}", "PunctSep:;"}, lines[4])

	// nested delimiters
	assert.Equal(t, []string{"LitStrSingle:q{a{b}c}", "PunctSep:;"}, lexOne(t, "q{a{b}c};"))
}

func TestSubstituteAcrossLines(t *testing.T) {
	lines, end := lexLines("$s =~ s{foo}\n  {bar}x;\n$n = $s / 2;")
	assert.Equal(t, []string{"NameVar:$s", "Operator:=~", "LitStrRegex:s{foo}"}, lines[0])
	assert.Equal(t, []string{"LitStrRegex:{bar}x", "PunctSep:;"}, lines[1])
	assert.Equal(t, []string{"NameVar:$n", "Operator:=", "NameVar:$s", "Operator:/", "LitNumInteger:2", "PunctSep:;"}, lines[2])
	assert.Equal(t, Start, end.Kind())

	lines, _ = lexLines("m/multi\nline/i && 1")
	assert.Equal(t, []string{"LitStrRegex:m/multi"}, lines[0])
	assert.Equal(t, []string{"LitStrRegex:line/i", "Operator:&&", "LitNumInteger:1"}, lines[1])
}

func TestHeredoc(t *testing.T) {
	text := "print <<\"EOT\";\nHello $name\n  EOT\nEOT\nprint 1;"
	lines, end := lexLines(text)
	assert.Equal(t, []string{"NameBuiltin:print", `LitStrHeredoc:<<"EOT"`, "PunctSep:;"}, lines[0])
	assert.Equal(t, []string{"LitStrHeredoc:Hello ", "NameVar:$name"}, lines[1])
	assert.Equal(t, []string{"LitStrHeredoc:  EOT"}, lines[2])
	assert.Equal(t, []string{"LitStrHeredoc:EOT"}, lines[3])
	assert.Equal(t, []string{"NameBuiltin:print", "LitNumInteger:1", "PunctSep:;"}, lines[4])
	assert.Equal(t, Start, end.Kind())

	lines, _ = lexLines("$t = <<~'END';\n  $raw (\n  END\n$u = 1;")
	assert.Equal(t, []string{"LitStrHeredoc:  $raw ("}, lines[1])
	assert.Equal(t, []string{"LitStrHeredoc:  END"}, lines[2])
	assert.Equal(t, []string{"NameVar:$u", "Operator:=", "LitNumInteger:1", "PunctSep:;"}, lines[3])

	_, st := ThePerl.LexLine([]byte("f(<<A, <<B);"), ThePerl.StartState())
	assert.Equal(t, HereDoc, st.Kind())
	assert.Equal(t, lexer.HashTerminator([]byte("A")), st.Hash())
}

func TestPodAndData(t *testing.T) {
	lines, _ := lexLines("=head1 NAME\n\nfoo { (\n=cut\nmy $x;\n__END__\nsome ) data\n=pod")
	assert.Equal(t, []string{"CommentDoc:=head1 NAME"}, lines[0])
	assert.Empty(t, lines[1])
	assert.Equal(t, []string{"CommentDoc:foo { ("}, lines[2])
	assert.Equal(t, []string{"CommentDoc:=cut"}, lines[3])
	assert.Equal(t, []string{"KeywordDeclaration:my", "NameVar:$x", "PunctSep:;"}, lines[4])
	assert.Equal(t, []string{"Keyword:__END__"}, lines[5])
	assert.Equal(t, []string{"Comment:some ) data"}, lines[6])
	assert.Equal(t, []string{"CommentDoc:=pod"}, lines[7])
}

func TestSubAcrossLines(t *testing.T) {
	lines, _ := lexLines("sub\n  name\n  :lvalue\n{ 1 }")
	assert.Equal(t, []string{"KeywordDeclaration:sub"}, lines[0])
	assert.Equal(t, []string{"NameFunction:name"}, lines[1])
	assert.Equal(t, []string{"NameAttribute::lvalue"}, lines[2])
	assert.Equal(t, []string{"PunctGpLBrace:{", "LitNumInteger:1", "PunctGpRBrace:}"}, lines[3])
}

func TestIdempotent(t *testing.T) {
	text := "my $s = \"a\nb\";\nprint <<EOT;\nx\nEOT\n=pod\n=cut\n$x =~ s{a}\n{b};\nqw(\n)"
	tags, states, _ := lexer.LexText(ThePerl, []byte(text), ThePerl.StartState())
	for i, ln := range strings.Split(text, "\n") {
		t1, e1 := ThePerl.LexLine([]byte(ln), states[i])
		t2, e2 := ThePerl.LexLine([]byte(ln), states[i])
		assert.Equal(t, t1, t2, ln)
		assert.Equal(t, e1, e2, ln)
		assert.True(t, t1.Equal(tags[i]), ln)
		if i+1 < len(states) {
			assert.Equal(t, states[i+1], e1, ln)
		}
	}
}

// TestSplitAgrees checks that splitting a statement into two lines at
// any space and lexing them while carrying the state gives the same
// tokens as lexing it as one line.
func TestSplitAgrees(t *testing.T) {
	stmts := []string{
		`my @parts = split /,/, $line;`,
		`$total = $count / 2 + 1;`,
		`print "ab" if $x =~ m{xy}i;`,
		`$x =~ s{a}{b}g;`,
		`return $h{key} / $n;`,
		`sub add ($$) { return $_[0] + $_[1]; }`,
		`print STDERR "x" x 3, "\n";`,
		`@list = grep { $_ > 0 } @nums;`,
		`$n = -e $file ? 1 : 0;`,
	}
	for _, stmt := range stmts {
		whole := lexOne(t, stmt)
		for i := 0; i < len(stmt); i++ {
			if stmt[i] != ' ' {
				continue
			}
			l1, l2 := []byte(stmt[:i]), []byte(stmt[i+1:])
			t1, st := ThePerl.LexLine(l1, ThePerl.StartState())
			t2, _ := ThePerl.LexLine(l2, st)
			got := append(toks(t1, l1), toks(t2, l2)...)
			assert.Equal(t, whole, got, "%s | %s", l1, l2)
		}
	}
}

func TestNeverPanics(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	alphabet := []byte("qmsy$@%&#'\"`/\\<>{}()[]=~-:;, \tabcEOT_019\xff\xc3")
	for n := 0; n < 2000; n++ {
		line := make([]byte, rnd.Intn(24))
		for i := range line {
			line[i] = alphabet[rnd.Intn(len(alphabet))]
		}
		for kind := Start; kind <= Data; kind++ {
			st := lexer.State(0).WithKind(kind).WithDelims('{', '}').WithDepth(1)
			ln, _ := ThePerl.LexLine(line, st)
			last := 0
			for _, lx := range ln {
				require.True(t, lx.Start >= last && lx.End > lx.Start && lx.End <= len(line), "%q kind %d: %v", line, kind, ln)
				last = lx.End
			}
		}
		for i := range line {
			j := ThePerl.Skip(line, i)
			require.True(t, j >= i && j <= len(line), "%q at %d", line, i)
		}
		lexer.Balance(line, len(line)/2, ThePerl)
	}
}

func TestSkipperBalance(t *testing.T) {
	src := []byte(`sub f {
    my $s = "(( {";   # [ in comment
    my $r = qr{a\}b};
    return ($s =~ /\(/) ? 1 : 0;
}`)
	open := bytes.IndexByte(src, '{')
	close := bytes.LastIndexByte(src, '}')

	caret := bytes.Index(src, []byte("(( {")) + 1
	o, c, err := lexer.Balance(src, caret, ThePerl)
	require.NoError(t, err)
	assert.Equal(t, open, o)
	assert.Equal(t, close, c)

	caret = bytes.Index(src, []byte("in comment"))
	o, c, err = lexer.Balance(src, caret, ThePerl)
	require.NoError(t, err)
	assert.Equal(t, open, o)
	assert.Equal(t, close, c)

	caret = bytes.Index(src, []byte("$s =~"))
	o, c, err = lexer.Balance(src, caret, ThePerl)
	require.NoError(t, err)
	assert.Equal(t, caret-1, o)
	assert.Equal(t, bytes.Index(src, []byte(") ?")), c)

	m, err := lexer.MatchBracket(src, open, ThePerl)
	require.NoError(t, err)
	assert.Equal(t, close, m)
}

func TestSkipperHeredocPod(t *testing.T) {
	src := []byte("{\nfoo(<<EOT, <<'B');\n ) } ]\nEOT\n( [\nB\n=pod\n} }\n=cut\n$x = 1;\n}")
	caret := bytes.Index(src, []byte(") } ]")) + 2
	o, c, err := lexer.Balance(src, caret, ThePerl)
	require.NoError(t, err)
	assert.Equal(t, 0, o)
	assert.Equal(t, len(src)-1, c)

	caret = bytes.Index(src, []byte("$x"))
	o, c, err = lexer.Balance(src, caret, ThePerl)
	require.NoError(t, err)
	assert.Equal(t, 0, o)
	assert.Equal(t, len(src)-1, c)

	caret = bytes.Index(src, []byte("EOT,"))
	o, c, err = lexer.Balance(src, caret, ThePerl)
	require.NoError(t, err)
	assert.Equal(t, bytes.IndexByte(src, '('), o)
	assert.Equal(t, bytes.Index(src, []byte(");")), c)

	// << that does not introduce a heredoc
	for _, line := range []string{
		"    # shift left: $x <<EOF\n",
		"    print \"use <<END for heredocs\";\n",
		"    my $y = $x <<EOF;\n",
		"    my $s = q{<<EOF};\n",
	} {
		src := []byte("sub f {\n" + line + "    foo(1);\n}\n")
		caret := bytes.Index(src, []byte("1)")) + 1
		o, c, err := lexer.Balance(src, caret, ThePerl)
		require.NoError(t, err, line)
		assert.Equal(t, bytes.Index(src, []byte("(1")), o, line)
		assert.Equal(t, caret, c, line)

		o, c, err = lexer.Balance(src, caret+3, ThePerl)
		require.NoError(t, err, line)
		assert.Equal(t, bytes.IndexByte(src, '{'), o, line)
		assert.Equal(t, bytes.LastIndexByte(src, '}'), c, line)
	}

	// indented heredoc with its terminator
	src = []byte("{\n  my $t = <<~\"END\";\n    ) }\n    END\n  bar();\n}\n")
	caret = bytes.Index(src, []byte("bar"))
	o, c, err = lexer.Balance(src, caret, ThePerl)
	require.NoError(t, err)
	assert.Equal(t, 0, o)
	assert.Equal(t, bytes.LastIndexByte(src, '}'), c)
}

func TestSkipperFileTest(t *testing.T) {
	src := []byte("if (-s $file) { foo(2); }\n$y = $x;\n")
	caret := bytes.Index(src, []byte("2)")) + 1
	o, c, err := lexer.Balance(src, caret, ThePerl)
	require.NoError(t, err)
	assert.Equal(t, bytes.Index(src, []byte("(2")), o)
	assert.Equal(t, caret, c)

	caret = bytes.Index(src, []byte("$file"))
	o, c, err = lexer.Balance(src, caret, ThePerl)
	require.NoError(t, err)
	assert.Equal(t, 3, o)
	assert.Equal(t, bytes.Index(src, []byte(") {")), c)

	// a substitution is still skipped
	src = []byte("(s/x)/y/)")
	o, c, err = lexer.Balance(src, 1, ThePerl)
	require.NoError(t, err)
	assert.Equal(t, 0, o)
	assert.Equal(t, len(src)-1, c)
}
