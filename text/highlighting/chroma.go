// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"japi.dev/core/base/errors"
	"japi.dev/core/base/fileinfo"
	"japi.dev/core/text/parse/lexer"
	"japi.dev/core/text/token"
)

// chromaTokens maps chroma token types onto tokens; types not listed
// map through their sub-category and then their category.
var chromaTokens = map[chroma.TokenType]token.Tokens{
	chroma.Error:                 token.Error,
	chroma.Keyword:               token.Keyword,
	chroma.KeywordConstant:       token.NameConstant,
	chroma.KeywordDeclaration:    token.KeywordDeclaration,
	chroma.KeywordNamespace:      token.KeywordNamespace,
	chroma.KeywordType:           token.KeywordType,
	chroma.Name:                  token.Name,
	chroma.NameAttribute:         token.NameAttribute,
	chroma.NameBuiltin:           token.NameBuiltin,
	chroma.NameBuiltinPseudo:     token.NameBuiltin,
	chroma.NameConstant:          token.NameConstant,
	chroma.NameDecorator:         token.NameAttribute,
	chroma.NameFunction:          token.NameFunction,
	chroma.NameFunctionMagic:     token.NameFunction,
	chroma.NameLabel:             token.NameLabel,
	chroma.NameTag:               token.NameTag,
	chroma.NameVariable:          token.NameVar,
	chroma.NameVariableGlobal:    token.NameVar,
	chroma.NameVariableInstance:  token.NameVar,
	chroma.NameVariableClass:     token.NameVar,
	chroma.NameVariableMagic:     token.NameVarMagic,
	chroma.Literal:               token.Literal,
	chroma.LiteralString:         token.LitStr,
	chroma.LiteralStringSingle:   token.LitStrSingle,
	chroma.LiteralStringChar:     token.LitStrSingle,
	chroma.LiteralStringDouble:   token.LitStrDouble,
	chroma.LiteralStringBacktick: token.LitStrBacktick,
	chroma.LiteralStringEscape:   token.LitStrEscape,
	chroma.LiteralStringInterpol: token.LitStrInterp,
	chroma.LiteralStringRegex:    token.LitStrRegex,
	chroma.LiteralStringHeredoc:  token.LitStrHeredoc,
	chroma.LiteralStringOther:    token.LitStrOther,
	chroma.LiteralNumber:         token.LitNum,
	chroma.LiteralNumberInteger:  token.LitNumInteger,
	chroma.LiteralNumberFloat:    token.LitNumFloat,
	chroma.LiteralNumberHex:      token.LitNumHex,
	chroma.Operator:              token.Operator,
	chroma.OperatorWord:          token.OpWord,
	chroma.Punctuation:           token.Punctuation,
	chroma.Comment:               token.Comment,
	chroma.CommentHashbang:       token.CommentHashbang,
	chroma.CommentPreproc:        token.CommentPreproc,
	chroma.CommentPreprocFile:    token.CommentPreproc,
	chroma.CommentSpecial:        token.CommentSpecial,
	chroma.LiteralStringDoc:      token.CommentDoc,
	chroma.Text:                  token.Text,
	chroma.TextWhitespace:        token.TextWhitespace,
}

// tokenChroma is the inverse of chromaTokens, built in init.
var tokenChroma = map[token.Tokens]chroma.TokenType{}

func init() {
	for ct, tk := range chromaTokens {
		if old, has := tokenChroma[tk]; !has || ct < old {
			tokenChroma[tk] = ct
		}
	}
	// doc comments are styled as comments, not strings
	tokenChroma[token.CommentDoc] = chroma.CommentMultiline
	for _, tk := range []token.Tokens{token.PunctGpLParen, token.PunctGpRParen, token.PunctGpLBrack,
		token.PunctGpRBrack, token.PunctGpLBrace, token.PunctGpRBrace, token.PunctSep, token.PunctOther} {
		tokenChroma[tk] = chroma.Punctuation
	}
}

// TokenFromChroma returns the token for a chroma token type.
func TokenFromChroma(ct chroma.TokenType) token.Tokens {
	for _, t := range []chroma.TokenType{ct, ct.SubCategory(), ct.Category()} {
		if tk, ok := chromaTokens[t]; ok {
			return tk
		}
	}
	return token.Text
}

// ChromaFromToken returns the chroma token type for a token.
func ChromaFromToken(tk token.Tokens) chroma.TokenType {
	if ct, ok := tokenChroma[tk]; ok {
		return ct
	}
	return chroma.Text
}

// ChromaLexer adapts a chroma lexer to [lexer.Lexer] for languages without
// a hand-written lexer. Chroma lexers are stateless across calls, so each
// line is lexed on its own and the state is always zero.
type ChromaLexer struct {
	lexer chroma.Lexer
}

// NewChromaLexer returns the adapter for the given chroma lexer.
func NewChromaLexer(cl chroma.Lexer) *ChromaLexer {
	return &ChromaLexer{lexer: chroma.Coalesce(cl)}
}

func (cl *ChromaLexer) Name() string { return cl.lexer.Config().Name }

// LexLine implements [lexer.Lexer].
func (cl *ChromaLexer) LexLine(src []byte, st lexer.State) (lexer.Line, lexer.State) {
	if len(src) == 0 {
		return nil, 0
	}
	it, err := cl.lexer.Tokenise(nil, string(src)+"\n")
	if err != nil {
		errors.Log(err)
		return nil, 0
	}
	var tags lexer.Line
	cp := 0
	for _, tok := range it.Tokens() {
		n := len(strings.TrimSuffix(tok.Value, "\n"))
		if n == 0 || tok.Type == chroma.None {
			cp += len(tok.Value)
			continue
		}
		ep := min(cp+n, len(src))
		if tok.Type < chroma.Text {
			tags.Add(TokenFromChroma(tok.Type), cp, ep)
		}
		cp += len(tok.Value)
		if cp >= len(src) {
			break
		}
	}
	return tags, 0
}

// LexerFor returns the lexer for a file: the hand-written lexer registered
// for the known type, else a chroma lexer matching the file name, else nil.
func LexerFor(filename string, known fileinfo.Known) lexer.Lexer {
	if lx, ok := lexer.For(known); ok {
		return lx
	}
	cl := lexers.Match(filename)
	if cl == nil && known != fileinfo.Unknown {
		cl = lexers.Get(known.String())
	}
	if cl == nil {
		return nil
	}
	return NewChromaLexer(cl)
}
