// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfamily

import (
	"japi.dev/core/base/fileinfo"
	"japi.dev/core/text/parse/lexer"
	"japi.dev/core/text/token"
)

var cKeywords = []string{
	"break", "case", "continue", "default", "do", "else", "for", "goto", "if",
	"return", "sizeof", "switch", "while",
}

var cDecls = []string{
	"auto", "const", "enum", "extern", "inline", "register", "restrict",
	"static", "struct", "typedef", "union", "volatile",
}

var cTypes = []string{
	"char", "double", "float", "int", "long", "short", "signed", "unsigned",
	"void", "_Bool", "_Complex", "size_t", "bool",
}

var cBuiltins = []string{
	"printf", "fprintf", "sprintf", "snprintf", "malloc", "calloc", "realloc",
	"free", "memcpy", "memset", "strlen", "strcmp", "assert",
}

// C is the C lexer.
var C = &Lang{
	name:    "C",
	preproc: true,
	keywords: lexer.NewKeywords(
		lexer.KeywordSet{Token: token.Keyword, Words: cKeywords},
		lexer.KeywordSet{Token: token.KeywordDeclaration, Words: cDecls},
		lexer.KeywordSet{Token: token.KeywordType, Words: cTypes},
		lexer.KeywordSet{Token: token.NameBuiltin, Words: cBuiltins},
		lexer.KeywordSet{Token: token.NameConstant, Words: []string{"NULL", "true", "false"}},
	),
}

// Cpp is the C++ lexer.
var Cpp = &Lang{
	name:      "C++",
	preproc:   true,
	rawCpp:    true,
	digitSeps: true,
	keywords: lexer.NewKeywords(
		lexer.KeywordSet{Token: token.Keyword, Words: append([]string{
			"catch", "co_await", "co_return", "co_yield", "delete", "new", "noexcept",
			"operator", "this", "throw", "try", "static_assert", "static_cast",
			"dynamic_cast", "reinterpret_cast", "const_cast", "decltype",
		}, cKeywords...)},
		lexer.KeywordSet{Token: token.KeywordDeclaration, Words: append([]string{
			"class", "constexpr", "explicit", "final", "friend", "mutable", "override",
			"private", "protected", "public", "template", "typename", "virtual",
		}, cDecls...)},
		lexer.KeywordSet{Token: token.KeywordNamespace, Words: []string{"namespace", "using"}},
		lexer.KeywordSet{Token: token.KeywordType, Words: append([]string{"wchar_t", "char16_t", "char32_t"}, cTypes...)},
		lexer.KeywordSet{Token: token.NameBuiltin, Words: []string{"std", "cout", "cerr", "endl", "string", "vector", "map"}},
		lexer.KeywordSet{Token: token.NameConstant, Words: []string{"nullptr", "NULL", "true", "false"}},
	),
}

// Java is the Java lexer.
var Java = &Lang{
	name:        "Java",
	annotations: true,
	textBlocks:  true,
	keywords: lexer.NewKeywords(
		lexer.KeywordSet{Token: token.Keyword, Words: []string{
			"assert", "break", "case", "catch", "continue", "default", "do", "else",
			"finally", "for", "if", "instanceof", "new", "return", "super", "switch",
			"this", "throw", "try", "while", "yield",
		}},
		lexer.KeywordSet{Token: token.KeywordDeclaration, Words: []string{
			"abstract", "class", "enum", "extends", "final", "implements", "interface",
			"native", "private", "protected", "public", "record", "static", "strictfp",
			"synchronized", "throws", "transient", "var", "volatile",
		}},
		lexer.KeywordSet{Token: token.KeywordNamespace, Words: []string{"package", "import"}},
		lexer.KeywordSet{Token: token.KeywordType, Words: []string{
			"boolean", "byte", "char", "double", "float", "int", "long", "short", "void",
		}},
		lexer.KeywordSet{Token: token.NameBuiltin, Words: []string{"String", "Object", "System", "Integer"}},
		lexer.KeywordSet{Token: token.NameConstant, Words: []string{"true", "false", "null"}},
	),
}

// Go is the Go lexer.
var Go = &Lang{
	name:        "Go",
	rawBacktick: true,
	imaginary:   true,
	keywords: lexer.NewKeywords(
		lexer.KeywordSet{Token: token.Keyword, Words: []string{
			"break", "case", "chan", "continue", "default", "defer", "else",
			"fallthrough", "for", "go", "goto", "if", "range", "return", "select", "switch",
		}},
		lexer.KeywordSet{Token: token.KeywordDeclaration, Words: []string{
			"const", "func", "interface", "map", "struct", "type", "var",
		}},
		lexer.KeywordSet{Token: token.KeywordNamespace, Words: []string{"package", "import"}},
		lexer.KeywordSet{Token: token.KeywordType, Words: []string{
			"any", "bool", "byte", "comparable", "complex64", "complex128", "error",
			"float32", "float64", "int", "int8", "int16", "int32", "int64", "rune",
			"string", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		}},
		lexer.KeywordSet{Token: token.NameBuiltin, Words: []string{
			"append", "cap", "clear", "close", "complex", "copy", "delete", "imag",
			"len", "make", "max", "min", "new", "panic", "print", "println", "real", "recover",
		}},
		lexer.KeywordSet{Token: token.NameConstant, Words: []string{"true", "false", "iota", "nil"}},
	),
}

func init() {
	lexer.Register(fileinfo.C, C)
	lexer.Register(fileinfo.Cpp, Cpp)
	lexer.Register(fileinfo.Java, Java)
	lexer.Register(fileinfo.Go, Go)
}

// operators is shared by all the languages, matched longest first.
var operators = lexer.NewKeywords(lexer.KeywordSet{Token: token.Operator, Words: []string{
	"<<=", ">>=", "&^=", "...", "->*", "<=>", ">>>", ">>>=",
	"->", "++", "--", "<<", ">>", "<=", ">=", "==", "!=", "&&", "||", "+=", "-=",
	"*=", "/=", "%=", "&=", "|=", "^=", "::", ":=", "<-", "&^", ".*",
	"+", "-", "*", "/", "%", "<", ">", "=", "!", "~", "&", "|", "^", "?", ":", ".", "@",
}})
