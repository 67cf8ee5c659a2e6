// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package perl provides a hand-written finite state machine lexer for Perl.
// Multi-line constructs (strings, quote-like operators, regular
// expressions, heredocs, POD and the data section) are continued across
// lines through the packed [lexer.State].
package perl

import (
	"bytes"

	"japi.dev/core/base/fileinfo"
	"japi.dev/core/text/parse/lexer"
	"japi.dev/core/text/token"
)

// Lexer state kinds. Only the quoting, heredoc, POD, data and the
// pending Quote5, Sub1 and Sub2 kinds survive the end of a line; the
// others are passed through within a line.
const (
	Start = iota
	Ident
	Comment
	String1 // '...'
	String2 // "..."
	String3 // `...`
	Regex0  // m//, qr// and //
	Regex1  // first part of s/// and tr///
	Regex2  // second part of s/// and tr///; open delimiter 0 while pending
	Var1    // $
	Var2    // @
	Var3    // %
	Quote1  // q
	Quote2  // qq
	Quote3  // qw
	Quote4  // qx
	Quote5  // quote-like operator waiting for its delimiter
	Sub1    // after sub
	Sub2    // after sub NAME: prototype and attributes
	Pod1
	Pod2 // the =cut line
	HereDoc
	Data // after __END__ or __DATA__
)

// Perl is the Perl lexer.
type Perl struct{}

// ThePerl is the registered instance of the Perl lexer.
var ThePerl = &Perl{}

func init() {
	lexer.Register(fileinfo.Perl, ThePerl)
}

func (pl *Perl) Name() string { return "Perl" }

// StartState is the state at the start of a file.
func (pl *Perl) StartState() lexer.State {
	return lexer.State(0).SetFlag(true, lexer.Operand)
}

// LexLine implements [lexer.Lexer].
func (pl *Perl) LexLine(src []byte, st lexer.State) (lexer.Line, lexer.State) {
	ls := &lineState{sc: lexer.NewScanner(src), st: st}
	switch st.Kind() {
	case HereDoc:
		ls.heredocLine()
		return ls.ln, ls.st
	case Pod1:
		ls.podLine()
	case Data:
		ls.dataLine()
		return ls.ln, ls.st
	}
	ls.run()
	return ls.finish()
}

// lineState is the working state while lexing one line.
type lineState struct {
	sc *lexer.Scanner
	ln lexer.Line
	st lexer.State

	// braces records for each brace opened on this line whether it
	// opened a subscript rather than a block.
	braces []bool

	// pending heredoc started on this line, whose body begins on the next.
	heredoc    bool
	hdHash     uint32
	hdInterp   bool
	hdIndented bool
}

func (ls *lineState) kind() int { return ls.st.Kind() }

func (ls *lineState) setKind(k int) { ls.st = ls.st.WithKind(k) }

// add tags the span and records whether an operand is expected next.
func (ls *lineState) add(tok token.Tokens, st, ed int, operand bool) {
	ls.ln.Add(tok, st, ed)
	ls.st = ls.st.SetFlag(operand, lexer.Operand)
}

// operand returns whether a term rather than an operator is expected.
func (ls *lineState) operand() bool { return ls.st.Has(lexer.Operand) }

func (ls *lineState) run() {
	for !ls.sc.EOL() {
		switch ls.kind() {
		case Start:
			ls.start()
		case Ident:
			ls.ident()
		case Comment:
			ls.comment()
		case Var1, Var2, Var3:
			ls.variable()
		case String1, String2, String3, Quote1, Quote2, Quote3, Quote4, Regex0, Regex1:
			ls.quoted()
		case Regex2:
			if ls.st.Open() == 0 {
				ls.secondDelim()
			} else {
				ls.quoted()
			}
		case Quote5:
			ls.quoteDelim()
		case Sub1:
			ls.subName()
		case Sub2:
			ls.subProto()
		case Pod1, Pod2, Data:
			ls.sc.ToEOL()
		default:
			ls.sc.Next()
			ls.setKind(Start)
		}
	}
}

// finish sets up the state for the next line.
func (ls *lineState) finish() (lexer.Line, lexer.State) {
	switch ls.kind() {
	case Ident, Comment, Var1, Var2, Var3:
		ls.setKind(Start)
	case Pod2:
		ls.st = ls.st.Reset(Start).SetFlag(true, lexer.Operand)
	}
	if ls.heredoc {
		st := lexer.State(0).WithKind(HereDoc).WithHash(ls.hdHash)
		st = st.SetFlag(ls.hdInterp, lexer.Interpolate).SetFlag(ls.hdIndented, lexer.Indented)
		ls.st = st
	}
	return ls.ln, ls.st
}

// start dispatches on the first byte of a new token.
func (ls *lineState) start() {
	sc := ls.sc
	sc.SkipSpace()
	if sc.EOL() {
		return
	}
	s := sc.Pos
	c := sc.Ch()
	n := sc.Peek(1)
	switch {
	case s == 0 && c == '=' && lexer.IsIdentStart(n):
		ls.podStart()
	case c == '#':
		ls.setKind(Comment)
	case lexer.IsIdentStart(c):
		ls.setKind(Ident)
	case c == ':' && n == ':' && lexer.IsIdentStart(sc.Peek(2)):
		ls.setKind(Ident)
	case c == '$':
		ls.setKind(Var1)
	case c == '@':
		ls.setKind(Var2)
	case c == '%' && ls.operand() && isVarStart(n):
		ls.setKind(Var3)
	case c == '\'':
		ls.openQuote(String1, c, token.LitStrSingle, false)
	case c == '"':
		ls.openQuote(String2, c, token.LitStrDouble, true)
	case c == '`':
		ls.openQuote(String3, c, token.LitStrBacktick, true)
	case lexer.IsDigit(c) || (c == '.' && ls.operand() && lexer.IsDigit(n)):
		tok := sc.ReadNumber()
		ls.add(tok, s, sc.Pos, false)
	case c == '/' && ls.operand():
		ls.openQuote(Regex0, c, token.LitStrRegex, true)
	case c == '<' && n == '<' && ls.operand() && ls.heredocStart():
	case c == '<' && ls.operand() && ls.readline():
	case c == '-' && ls.operand() && isFileTest(n) && !lexer.IsIdent(sc.Peek(2)):
		sc.Advance(2)
		ls.add(token.Operator, s, sc.Pos, true)
	case c == '&' && ls.operand() && lexer.IsIdentStart(n):
		sc.Next()
		ls.readName()
		ls.add(token.NameFunction, s, sc.Pos, false)
	case c == '(' || c == '[':
		sc.Next()
		ls.add(token.PunctGpFromByte(c), s, sc.Pos, true)
	case c == ')' || c == ']':
		sc.Next()
		ls.add(token.PunctGpFromByte(c), s, sc.Pos, false)
	case c == '{':
		ls.braces = append(ls.braces, ls.isSubscript(s))
		sc.Next()
		ls.add(token.PunctGpLBrace, s, sc.Pos, true)
	case c == '}':
		sub := false
		if nb := len(ls.braces); nb > 0 {
			sub = ls.braces[nb-1]
			ls.braces = ls.braces[:nb-1]
		}
		sc.Next()
		ls.add(token.PunctGpRBrace, s, sc.Pos, !sub)
	case c == ';' || c == ',':
		sc.Next()
		ls.add(token.PunctSep, s, sc.Pos, true)
	default:
		ln, _ := operators.Scan(sc.Src, s)
		if ln == 0 {
			sc.Next()
			return
		}
		sc.Advance(ln)
		op := string(sc.Src[s:sc.Pos])
		operand := true
		if op == "++" || op == "--" {
			operand = ls.operand()
		}
		ls.add(token.Operator, s, sc.Pos, operand)
	}
}

// isSubscript returns whether a brace at s opens a subscript, which it
// does when it directly follows a variable, a closing bracket or an arrow.
func (ls *lineState) isSubscript(s int) bool {
	if s == 0 {
		return false
	}
	if nl := len(ls.ln); nl > 0 {
		lst := ls.ln[nl-1]
		if lst.End == s && (lst.Token == token.NameVar || lst.Token == token.NameVarMagic) {
			return true
		}
	}
	src := ls.sc.Src
	switch src[s-1] {
	case ']', '}':
		return true
	case '>':
		return s >= 2 && src[s-2] == '-'
	}
	return false
}

func (ls *lineState) comment() {
	sc := ls.sc
	s := sc.Pos
	tok := token.Comment
	if s == 0 && sc.Peek(1) == '!' {
		tok = token.CommentHashbang
	}
	sc.ToEOL()
	ls.ln.Add(tok, s, sc.Pos)
	ls.setKind(Start)
}

// readName reads an identifier including :: package separators.
func (ls *lineState) readName() {
	sc := ls.sc
	for {
		sc.ReadIdent()
		if sc.Ch() == ':' && sc.Peek(1) == ':' && lexer.IsIdentStart(sc.Peek(2)) {
			sc.Advance(2)
			continue
		}
		return
	}
}

// prevNonSpace returns the index of the last non-space byte before i, or -1.
func prevNonSpace(src []byte, i int) int {
	for i--; i >= 0; i-- {
		if !lexer.IsSpace(src[i]) {
			return i
		}
	}
	return -1
}

// nextNonSpace returns the index of the first non-space byte at or after i,
// or len(src).
func nextNonSpace(src []byte, i int) int {
	for i < len(src) && lexer.IsSpace(src[i]) {
		i++
	}
	return i
}

func (ls *lineState) ident() {
	sc := ls.sc
	src := sc.Src
	s := sc.Pos
	ls.readName()
	e := sc.Pos
	word := src[s:e]
	ls.setKind(Start)

	pv := prevNonSpace(src, s)
	nx := nextNonSpace(src, e)
	switch {
	case pv >= 1 && src[pv] == '>' && src[pv-1] == '-':
		tok := token.NameFunction
		if bytes.Equal(word, []byte("SUPER")) {
			tok = token.NameBuiltin
		}
		ls.add(tok, s, e, false)
		return
	case nx+1 < len(src) && src[nx] == '=' && src[nx+1] == '>':
		ls.add(token.LitStrOther, s, e, false)
		return
	case pv >= 0 && src[pv] == '{' && nx < len(src) && src[nx] == '}':
		ls.add(token.LitStrOther, s, e, false)
		return
	case s == 0 && (bytes.Equal(word, []byte("__END__")) || bytes.Equal(word, []byte("__DATA__"))):
		ls.ln.Add(token.Keyword, s, e)
		sc.ToEOL()
		ls.st = lexer.State(0).WithKind(Data)
		return
	}
	if op, ok := quoteOps[string(word)]; ok && ls.quoteStart(op, s, nx) {
		return
	}
	if bytes.Equal(word, []byte("sub")) {
		ls.add(token.KeywordDeclaration, s, e, true)
		ls.setKind(Sub1)
		return
	}
	if tok, ok := keywords.Match(word); ok {
		ls.add(tok, s, e, tok != token.NameConstant)
		return
	}
	tok := token.Name
	switch {
	case nx < len(src) && src[nx] == '(':
		tok = token.NameFunction
	case nx < len(src) && src[nx] == ':' && (nx+1 >= len(src) || src[nx+1] != ':') && pv < 0:
		tok = token.NameLabel
	case isConstantName(word):
		tok = token.NameConstant
	}
	ls.add(tok, s, e, false)
}

// isConstantName returns whether the word is all upper case, as
// used for constants and file handles.
func isConstantName(word []byte) bool {
	if len(word) < 2 {
		return false
	}
	for _, c := range word {
		if (c < 'A' || c > 'Z') && c != '_' && !lexer.IsDigit(c) {
			return false
		}
	}
	return true
}

// isVarStart returns whether c can follow a % sigil in a hash variable.
func isVarStart(c byte) bool {
	return lexer.IsIdentStart(c) || c == '$' || c == '{' || c == ':' || c == '+' || c == '-' || c == '^' || c == '!'
}

// magicVars are the punctuation characters forming special $ variables.
const magicVars = "&`'+!@/\\,;.<>?\"-~=%|*$:0"

func isFileTest(c byte) bool {
	return c != 0 && bytes.IndexByte([]byte("erwxoRWXOezsfdlpSbcugktTBAMC"), c) >= 0
}

func (ls *lineState) variable() {
	sc := ls.sc
	s := sc.Pos
	kind := ls.kind()
	sc.Next()
	tok := token.NameVar
	if kind == Var1 && sc.Ch() == '#' {
		if n := sc.Peek(1); n == '{' || n == '$' || lexer.IsIdentStart(n) {
			sc.Next()
		}
	}
	for sc.Ch() == '$' && (lexer.IsIdentStart(sc.Peek(1)) || sc.Peek(1) == '$' || sc.Peek(1) == '{') {
		sc.Next()
	}
	switch c := sc.Ch(); {
	case lexer.IsIdentStart(c) || (c == ':' && sc.Peek(1) == ':'):
		if c == ':' {
			sc.Advance(2)
		}
		ls.readName()
		if kind == Var1 && sc.Pos-s == 2 && sc.Src[s+1] == '_' {
			tok = token.NameVarMagic
		}
	case c == '{' && kind != Var3:
		rest := sc.Rest()
		if j := bytes.IndexByte(rest, '}'); j > 1 && isName(rest[1:j]) {
			sc.Advance(j + 1)
		}
	case kind == Var1 && lexer.IsDigit(c):
		for lexer.IsDigit(sc.Ch()) {
			sc.Next()
		}
		tok = token.NameVarMagic
	case kind == Var1 && c == '^' && sc.Peek(1) >= 'A' && sc.Peek(1) <= 'Z':
		sc.Advance(2)
		tok = token.NameVarMagic
	case kind == Var1 && c != 0 && bytes.IndexByte([]byte(magicVars), c) >= 0:
		sc.Next()
		tok = token.NameVarMagic
	case kind != Var1 && (c == '+' || c == '-' || (kind == Var3 && c == '!')):
		sc.Next()
		tok = token.NameVarMagic
	}
	ls.setKind(Start)
	ls.add(tok, s, sc.Pos, false)
}

// isName returns whether b is an identifier, possibly with a leading ^.
func isName(b []byte) bool {
	if len(b) > 0 && b[0] == '^' {
		b = b[1:]
	}
	if len(b) == 0 || !lexer.IsIdentStart(b[0]) {
		return false
	}
	for _, c := range b {
		if !lexer.IsIdent(c) && c != ':' {
			return false
		}
	}
	return true
}

// readline handles the <FH>, <$fh> and <> input operators.
func (ls *lineState) readline() bool {
	sc := ls.sc
	rest := sc.Rest()
	j := bytes.IndexByte(rest, '>')
	if j < 1 {
		return false
	}
	inner := rest[1:j]
	if len(inner) > 0 && inner[0] == '$' {
		inner = inner[1:]
	}
	if len(inner) > 0 && !isName(inner) {
		return false
	}
	s := sc.Pos
	sc.Advance(j + 1)
	ls.add(token.LitStrOther, s, sc.Pos, false)
	return true
}

// tokenFor returns the token of the text in a quoting state.
func tokenFor(kind int) token.Tokens {
	switch kind {
	case String1, Quote1:
		return token.LitStrSingle
	case String2, Quote2:
		return token.LitStrDouble
	case String3, Quote4:
		return token.LitStrBacktick
	case Quote3:
		return token.LitStrOther
	case Regex0, Regex1, Regex2:
		return token.LitStrRegex
	case HereDoc:
		return token.LitStrHeredoc
	}
	return token.LitStr
}

// delimPair returns the close delimiter for an open delimiter.
func delimPair(c byte) byte {
	switch c {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	case '<':
		return '>'
	}
	return c
}

// openQuote starts a quoted construct at the current position, whose
// open delimiter is the current byte.
func (ls *lineState) openQuote(kind int, c byte, tok token.Tokens, interp bool) {
	s := ls.sc.Pos
	ls.sc.Next()
	ls.ln.Add(tok, s, ls.sc.Pos)
	ls.st = ls.st.WithKind(kind).WithDelims(c, delimPair(c)).WithDepth(1).SetFlag(interp, lexer.Interpolate)
}

// quoteStart handles a quote-like operator word starting at s, whose
// delimiter is expected at nx. It returns false if the word is not used
// as an operator there.
func (ls *lineState) quoteStart(op byte, s, nx int) bool {
	sc := ls.sc
	src := sc.Src
	if nx >= len(src) {
		ls.ln.Add(tokenFor(opKind(op)), s, sc.Pos)
		ls.st = ls.st.WithKind(Quote5).WithDelims(op, 0)
		return true
	}
	c := src[nx]
	if c == '#' {
		if nx > sc.Pos {
			ls.ln.Add(tokenFor(opKind(op)), s, sc.Pos)
			ls.st = ls.st.WithKind(Quote5).WithDelims(op, 0)
			return true
		}
	} else if !isQuoteDelim(c) {
		return false
	}
	ls.ln.Add(tokenFor(opKind(op)), s, sc.Pos)
	sc.Pos = nx
	ls.setDelim(op, c)
	return true
}

// isQuoteDelim returns whether c can delimit a quote-like operator.
func isQuoteDelim(c byte) bool {
	if lexer.IsIdent(c) || lexer.IsSpace(c) {
		return false
	}
	return bytes.IndexByte([]byte(",;)]}=>"), c) < 0
}

// opKind returns the state kind for a quote-like operator code.
func opKind(op byte) int {
	switch op {
	case 'q':
		return Quote1
	case 'Q':
		return Quote2
	case 'w':
		return Quote3
	case 'x':
		return Quote4
	case 'm', 'r':
		return Regex0
	}
	return Regex1
}

// transliterate is stored in the hash field of the Regex1 and Regex2
// states of tr/// and y///, which never interpolate.
const transliterate = 't'

// setDelim enters the quoting state for the operator with the delimiter
// at the current position.
func (ls *lineState) setDelim(op, c byte) {
	sc := ls.sc
	kind := opKind(op)
	interp := c != '\''
	switch op {
	case 'q', 'w', 't':
		interp = false
	}
	s := sc.Pos
	sc.Next()
	ls.ln.AddMerge(tokenFor(kind), s, sc.Pos)
	ls.st = ls.st.WithKind(kind).WithDelims(c, delimPair(c)).WithDepth(1).SetFlag(interp, lexer.Interpolate)
	if op == 't' {
		ls.st = ls.st.WithHash(transliterate)
	}
}

// quoteDelim looks for the delimiter of a pending quote-like operator.
func (ls *lineState) quoteDelim() {
	sc := ls.sc
	sc.SkipSpace()
	if sc.EOL() {
		return
	}
	c := sc.Ch()
	if c == '#' {
		s := sc.Pos
		sc.ToEOL()
		ls.ln.Add(token.Comment, s, sc.Pos)
		return
	}
	ls.setDelim(ls.st.Open(), c)
}

// secondDelim looks for the open delimiter of the second part of s{}{}
// or tr{}{}.
func (ls *lineState) secondDelim() {
	sc := ls.sc
	sc.SkipSpace()
	if sc.EOL() {
		return
	}
	c := sc.Ch()
	if c == '#' {
		s := sc.Pos
		sc.ToEOL()
		ls.ln.Add(token.Comment, s, sc.Pos)
		return
	}
	s := sc.Pos
	sc.Next()
	ls.ln.Add(token.LitStrRegex, s, sc.Pos)
	interp := c != '\'' && ls.st.Hash() != transliterate
	ls.st = ls.st.WithDelims(c, delimPair(c)).WithDepth(1).SetFlag(interp, lexer.Interpolate)
}

// quoted continues a quoted construct up to its close delimiter or the
// end of the line.
func (ls *lineState) quoted() {
	sc := ls.sc
	st := ls.st
	kind := st.Kind()
	s := sc.Pos
	depth := sc.ReadDelimited(st.Open(), st.Close(), max(st.Depth(), 1), true)
	tok := tokenFor(kind)
	ls.addString(tok, s, sc.Pos)
	if depth > 0 {
		ls.st = st.WithDepth(depth)
		return
	}
	switch kind {
	case Regex1:
		trans := st.Hash() == transliterate
		if st.Open() == st.Close() {
			ls.st = st.WithKind(Regex2).WithDepth(1).SetFlag(!trans && st.Open() != '\'', lexer.Interpolate)
		} else {
			ls.st = st.WithKind(Regex2).WithDelims(0, 0).WithDepth(0)
		}
		return
	case Regex0, Regex2:
		m := sc.Pos
		for c := sc.Ch(); c >= 'a' && c <= 'z'; c = sc.Ch() {
			sc.Next()
		}
		ls.ln.AddMerge(tok, m, sc.Pos)
	}
	ls.st = st.Reset(Start).SetFlag(false, lexer.Interpolate|lexer.Indented|lexer.Operand)
}

// addString tags string contents, splitting out interpolated variables
// when the state interpolates.
func (ls *lineState) addString(tok token.Tokens, s, e int) {
	if !ls.st.Has(lexer.Interpolate) {
		ls.ln.AddMerge(tok, s, e)
		return
	}
	addInterp(&ls.ln, ls.sc.Src, tok, s, e)
}

// addInterp tags src[s:e] as tok, with $name, @name and ${name}
// variables tagged as [token.NameVar].
func addInterp(ln *lexer.Line, src []byte, tok token.Tokens, s, e int) {
	last := s
	for i := s; i < e; i++ {
		c := src[i]
		if c == '\\' {
			i++
			continue
		}
		if (c != '$' && c != '@') || i+1 >= e {
			continue
		}
		j := i + 1
		switch n := src[j]; {
		case lexer.IsIdentStart(n) || (c == '$' && n == ':' && j+1 < e && src[j+1] == ':'):
			for j < e && (lexer.IsIdent(src[j]) || (src[j] == ':' && j+2 < e && src[j+1] == ':' && lexer.IsIdentStart(src[j+2]))) {
				if src[j] == ':' {
					j++
				}
				j++
			}
		case n == '{':
			k := bytes.IndexByte(src[j:e], '}')
			if k < 2 || !isName(src[j+1:j+k]) {
				continue
			}
			j += k + 1
		default:
			continue
		}
		ln.AddMerge(tok, last, i)
		ln.Add(token.NameVar, i, j)
		last = j
		i = j - 1
	}
	ln.AddMerge(tok, last, e)
}

// heredocStart handles <<"T", <<'T', <<T and the <<~ indented forms.
func (ls *lineState) heredocStart() bool {
	sc := ls.sc
	src := sc.Src
	s := sc.Pos
	i := s + 2
	indented := false
	if i < len(src) && src[i] == '~' {
		indented = true
		i++
	}
	if i >= len(src) {
		return false
	}
	var term []byte
	interp := true
	end := 0
	switch c := src[i]; {
	case c == '"' || c == '\'':
		j := bytes.IndexByte(src[i+1:], c)
		if j < 0 {
			return false
		}
		term = src[i+1 : i+1+j]
		interp = c == '"'
		end = i + j + 2
	case lexer.IsIdentStart(c):
		end = i
		for end < len(src) && lexer.IsIdent(src[end]) {
			end++
		}
		term = src[i:end]
	default:
		return false
	}
	sc.Pos = end
	ls.add(token.LitStrHeredoc, s, end, false)
	if !ls.heredoc {
		ls.heredoc = true
		ls.hdHash = lexer.HashTerminator(term)
		ls.hdInterp = interp
		ls.hdIndented = indented
	}
	return true
}

// heredocLine lexes a line of a heredoc body.
func (ls *lineState) heredocLine() {
	src := ls.sc.Src
	body := src
	if ls.st.Has(lexer.Indented) {
		body = bytes.TrimLeft(body, " \t")
	}
	if lexer.HashTerminator(body) == ls.st.Hash() {
		ls.ln.Add(token.LitStrHeredoc, 0, len(src))
		ls.st = lexer.State(0).WithKind(Start).SetFlag(true, lexer.Operand)
		return
	}
	if ls.st.Has(lexer.Interpolate) {
		addInterp(&ls.ln, src, token.LitStrHeredoc, 0, len(src))
		return
	}
	ls.ln.Add(token.LitStrHeredoc, 0, len(src))
}

// isPodCut returns whether the line is a =cut directive.
func isPodCut(src []byte) bool {
	return bytes.HasPrefix(src, []byte("=cut")) && (len(src) == 4 || !lexer.IsIdent(src[4]))
}

// podStart begins a POD block at a =word line.
func (ls *lineState) podStart() {
	src := ls.sc.Src
	ls.ln.Add(token.CommentDoc, 0, len(src))
	ls.sc.ToEOL()
	if isPodCut(src) {
		ls.setKind(Pod2)
		return
	}
	ls.setKind(Pod1)
}

// podLine lexes a line inside a POD block.
func (ls *lineState) podLine() {
	src := ls.sc.Src
	ls.ln.Add(token.CommentDoc, 0, len(src))
	ls.sc.ToEOL()
	if isPodCut(src) {
		ls.setKind(Pod2)
	}
}

// dataLine lexes a line of the __END__ or __DATA__ section.
func (ls *lineState) dataLine() {
	src := ls.sc.Src
	tok := token.Comment
	if len(src) > 1 && src[0] == '=' && lexer.IsIdentStart(src[1]) {
		tok = token.CommentDoc
	}
	ls.ln.Add(tok, 0, len(src))
}

// subName reads the name after sub.
func (ls *lineState) subName() {
	sc := ls.sc
	sc.SkipSpace()
	if sc.EOL() {
		return
	}
	if !lexer.IsIdentStart(sc.Ch()) {
		ls.setKind(Start)
		return
	}
	s := sc.Pos
	ls.readName()
	ls.add(token.NameFunction, s, sc.Pos, true)
	ls.setKind(Sub2)
}

// subProto reads a prototype or attributes after sub NAME.
func (ls *lineState) subProto() {
	sc := ls.sc
	sc.SkipSpace()
	if sc.EOL() {
		return
	}
	s := sc.Pos
	switch sc.Ch() {
	case '(':
		rest := sc.Rest()
		j := bytes.IndexByte(rest, ')')
		if j > 0 && isPrototype(rest[1:j]) {
			sc.Advance(j + 1)
			ls.ln.Add(token.LitStrOther, s, sc.Pos)
			return
		}
	case ':':
		sc.Next()
		sc.SkipSpace()
		if lexer.IsIdentStart(sc.Ch()) {
			sc.ReadIdent()
			ls.ln.Add(token.NameAttribute, s, sc.Pos)
			return
		}
		sc.Pos = s
	}
	ls.setKind(Start)
}

// isPrototype returns whether b is the body of a sub prototype such as $$;@.
func isPrototype(b []byte) bool {
	for _, c := range b {
		if bytes.IndexByte([]byte(`$@%&*;\[]+_ `), c) < 0 {
			return false
		}
	}
	return true
}
