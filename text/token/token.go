// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines the set of lexical tokens produced by the
// language lexers. It is based on the alecthomas/chroma / pygments
// lexical tokens, with the categories needed for highlighting source code.
package token

import "fmt"

// Tokens is the set of lexical tokens.
//
// There are categories and sub-categories, and methods to get those from a given
// element. The first category is 'None'.
//
// See http://pygments.org/docs/tokens/ for more docs on the different categories
type Tokens int32

// The list of tokens
const (
	// None is the nil token value -- for non-terminal cases or TBD
	None Tokens = iota

	// Error is an input that could not be tokenized due to syntax error etc
	Error

	// EOS is end of statement -- a semantic token
	EOS

	// Keyword is a reserved word of the language
	Keyword
	KeywordDeclaration
	KeywordNamespace
	KeywordType

	// Name is an identifier
	Name
	NameBuiltin
	NameFunction
	NameVar
	NameVarMagic
	NameConstant
	NameLabel
	NameTag
	NameAttribute

	// Literal is a literal value
	Literal
	LitStr
	LitStrSingle
	LitStrDouble
	LitStrBacktick
	LitStrEscape
	LitStrInterp
	LitStrRegex
	LitStrHeredoc
	LitStrOther
	LitNum
	LitNumInteger
	LitNumFloat
	LitNumHex

	// Operator is an operator
	Operator
	OpWord

	// Punctuation is punctuation
	Punctuation
	PunctGpLParen
	PunctGpRParen
	PunctGpLBrack
	PunctGpRBrack
	PunctGpLBrace
	PunctGpRBrace
	PunctSep
	PunctOther

	// Comment is a comment
	Comment
	CommentHashbang
	CommentPreproc
	CommentDoc
	CommentSpecial

	// Text is plain text
	Text
	TextWhitespace

	// TokensN is the number of tokens
	TokensN
)

// category boundaries: each category token is followed by its members.
var cats = []Tokens{None, Error, EOS, Keyword, Name, Literal, Operator, Punctuation, Comment, Text, TokensN}

// sub-category boundaries within Literal.
var subCats = []Tokens{LitStr, LitNum}

var tokenNames = [...]string{
	None:               "None",
	Error:              "Error",
	EOS:                "EOS",
	Keyword:            "Keyword",
	KeywordDeclaration: "KeywordDeclaration",
	KeywordNamespace:   "KeywordNamespace",
	KeywordType:        "KeywordType",
	Name:               "Name",
	NameBuiltin:        "NameBuiltin",
	NameFunction:       "NameFunction",
	NameVar:            "NameVar",
	NameVarMagic:       "NameVarMagic",
	NameConstant:       "NameConstant",
	NameLabel:          "NameLabel",
	NameTag:            "NameTag",
	NameAttribute:      "NameAttribute",
	Literal:            "Literal",
	LitStr:             "LitStr",
	LitStrSingle:       "LitStrSingle",
	LitStrDouble:       "LitStrDouble",
	LitStrBacktick:     "LitStrBacktick",
	LitStrEscape:       "LitStrEscape",
	LitStrInterp:       "LitStrInterp",
	LitStrRegex:        "LitStrRegex",
	LitStrHeredoc:      "LitStrHeredoc",
	LitStrOther:        "LitStrOther",
	LitNum:             "LitNum",
	LitNumInteger:      "LitNumInteger",
	LitNumFloat:        "LitNumFloat",
	LitNumHex:          "LitNumHex",
	Operator:           "Operator",
	OpWord:             "OpWord",
	Punctuation:        "Punctuation",
	PunctGpLParen:      "PunctGpLParen",
	PunctGpRParen:      "PunctGpRParen",
	PunctGpLBrack:      "PunctGpLBrack",
	PunctGpRBrack:      "PunctGpRBrack",
	PunctGpLBrace:      "PunctGpLBrace",
	PunctGpRBrace:      "PunctGpRBrace",
	PunctSep:           "PunctSep",
	PunctOther:         "PunctOther",
	Comment:            "Comment",
	CommentHashbang:    "CommentHashbang",
	CommentPreproc:     "CommentPreproc",
	CommentDoc:         "CommentDoc",
	CommentSpecial:     "CommentSpecial",
	Text:               "Text",
	TextWhitespace:     "TextWhitespace",
}

func (tk Tokens) String() string {
	if tk < 0 || tk >= TokensN {
		return fmt.Sprintf("Tokens(%d)", int32(tk))
	}
	return tokenNames[tk]
}

// TokensFromString returns the token with the given name.
func TokensFromString(s string) (Tokens, error) {
	for i, nm := range tokenNames {
		if nm == s {
			return Tokens(i), nil
		}
	}
	return None, fmt.Errorf("token.TokensFromString: %q is not a valid token name", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (tk Tokens) MarshalText() ([]byte, error) { return []byte(tk.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (tk *Tokens) UnmarshalText(b []byte) error {
	t, err := TokensFromString(string(b))
	if err != nil {
		return err
	}
	*tk = t
	return nil
}

// Cat returns the category that a given token lives in.
func (tk Tokens) Cat() Tokens {
	for i := len(cats) - 2; i >= 0; i-- {
		if tk >= cats[i] {
			return cats[i]
		}
	}
	return None
}

// SubCat returns the sub-category that a given token lives in.
// Tokens without a sub-category return their category.
func (tk Tokens) SubCat() Tokens {
	if tk.Cat() == Literal {
		for i := len(subCats) - 1; i >= 0; i-- {
			if tk >= subCats[i] {
				return subCats[i]
			}
		}
	}
	return tk.Cat()
}

// Parent returns the next more general token: the sub-category,
// then the category, then None.
func (tk Tokens) Parent() Tokens {
	if sc := tk.SubCat(); sc != tk {
		return sc
	}
	if c := tk.Cat(); c != tk {
		return c
	}
	return None
}

// IsKeyword returns true if this in the Keyword category
func (tk Tokens) IsKeyword() bool {
	return tk.Cat() == Keyword
}

// InCat returns true if the token is in the given category.
func (tk Tokens) InCat(cat Tokens) bool {
	return tk.Cat() == cat
}

// InSubCat returns true if the token is in the given sub-category.
func (tk Tokens) InSubCat(sub Tokens) bool {
	return tk.SubCat() == sub
}

// IsPunctGpLeft returns true if token is a PunctGpL token -- left paren, brace, bracket
func (tk Tokens) IsPunctGpLeft() bool {
	return (tk == PunctGpLParen || tk == PunctGpLBrack || tk == PunctGpLBrace)
}

// IsPunctGpRight returns true if token is a PunctGpR token -- right paren, brace, bracket
func (tk Tokens) IsPunctGpRight() bool {
	return (tk == PunctGpRParen || tk == PunctGpRBrack || tk == PunctGpRBrace)
}

// PunctGpMatch returns the matching token for given PunctGp token
func (tk Tokens) PunctGpMatch() Tokens {
	switch tk {
	case PunctGpLParen:
		return PunctGpRParen
	case PunctGpRParen:
		return PunctGpLParen
	case PunctGpLBrack:
		return PunctGpRBrack
	case PunctGpRBrack:
		return PunctGpLBrack
	case PunctGpLBrace:
		return PunctGpRBrace
	case PunctGpRBrace:
		return PunctGpLBrace
	}
	return None
}

// PunctGpFromByte returns the group punctuation token for a bracket byte,
// or Punctuation for any other byte.
func PunctGpFromByte(c byte) Tokens {
	switch c {
	case '(':
		return PunctGpLParen
	case ')':
		return PunctGpRParen
	case '[':
		return PunctGpLBrack
	case ']':
		return PunctGpRBrack
	case '{':
		return PunctGpLBrace
	case '}':
		return PunctGpRBrace
	case ',', ';':
		return PunctSep
	}
	return Punctuation
}

// CombineRepeats are token types where repeated tokens of the same type should
// be combined together -- literals, comments, text
func (tk Tokens) CombineRepeats() bool {
	cat := tk.Cat()
	return (cat == Literal || cat == Comment || cat == Text)
}
