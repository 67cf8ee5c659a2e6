// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perl

import (
	"japi.dev/core/text/parse/lexer"
	"japi.dev/core/text/token"
)

var keywords = lexer.NewKeywords(
	lexer.KeywordSet{Token: token.Keyword, Words: []string{
		"if", "elsif", "else", "unless", "while", "until", "for", "foreach",
		"do", "last", "next", "redo", "goto", "return", "eval", "continue",
		"given", "when", "default", "BEGIN", "END", "INIT", "CHECK", "UNITCHECK",
		"AUTOLOAD", "DESTROY",
	}},
	lexer.KeywordSet{Token: token.KeywordDeclaration, Words: []string{
		"my", "our", "local", "state", "sub",
	}},
	lexer.KeywordSet{Token: token.KeywordNamespace, Words: []string{
		"package", "use", "no", "require",
	}},
	lexer.KeywordSet{Token: token.OpWord, Words: []string{
		"and", "or", "not", "xor", "lt", "gt", "le", "ge", "eq", "ne", "cmp", "x",
	}},
	lexer.KeywordSet{Token: token.NameConstant, Words: []string{
		"__FILE__", "__LINE__", "__PACKAGE__", "__SUB__",
	}},
	lexer.KeywordSet{Token: token.NameBuiltin, Words: []string{
		"abs", "accept", "alarm", "atan2", "bind", "binmode", "bless", "caller",
		"chdir", "chmod", "chomp", "chop", "chown", "chr", "close", "closedir",
		"connect", "cos", "crypt", "defined", "delete", "die", "each", "eof",
		"exec", "exists", "exit", "exp", "fcntl", "fileno", "flock", "fork",
		"format", "getc", "glob", "gmtime", "grep", "hex", "index", "int",
		"ioctl", "join", "keys", "kill", "lc", "lcfirst", "length", "link",
		"listen", "localtime", "log", "lstat", "map", "mkdir", "oct", "open",
		"opendir", "ord", "pack", "pipe", "pop", "pos", "print", "printf",
		"prototype", "push", "quotemeta", "rand", "read", "readdir", "readline",
		"readlink", "ref", "rename", "reset", "reverse", "rewinddir", "rindex",
		"rmdir", "say", "scalar", "seek", "select", "shift", "sin", "sleep",
		"socket", "sort", "splice", "split", "sprintf", "sqrt", "srand", "stat",
		"substr", "symlink", "syscall", "sysread", "system", "syswrite", "tell",
		"tie", "time", "uc", "ucfirst", "umask", "undef", "unlink", "unpack",
		"unshift", "untie", "utime", "values", "vec", "wait", "waitpid",
		"wantarray", "warn", "write",
	}},
)

// quoteOps maps the quote-like operators to the code stored in the open
// delimiter field of a pending [Quote5] state.
var quoteOps = map[string]byte{
	"q":  'q',
	"qq": 'Q',
	"qw": 'w',
	"qx": 'x',
	"m":  'm',
	"qr": 'r',
	"s":  's',
	"tr": 't',
	"y":  't',
}

// operators is matched longest first at operator positions.
var operators = lexer.NewKeywords(lexer.KeywordSet{Token: token.Operator, Words: []string{
	"<=>", "**=", "||=", "&&=", "//=", "...", "<<=", ">>=",
	"->", "=>", "=~", "!~", "==", "!=", "<=", ">=", "&&", "||", "//", "**",
	"++", "--", "..", "+=", "-=", "*=", "/=", ".=", "%=", "|=", "&=", "^=",
	"<<", ">>", "::",
	"=", "+", "-", "*", "/", ".", "%", "<", ">", "!", "~", "\\", "?", ":",
	"&", "|", "^",
}})
