// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package parse is the top-level package for the Japi lexing system.

Sub-package lexer has the line-at-a-time lexer framework: packed lexer
states, keyword DFAs, the byte scanner, the registry and bracket
balancing. Sub-package languages has the hand-written lexers for
specific languages, and supportedlanguages registers all of them.
*/
package parse
