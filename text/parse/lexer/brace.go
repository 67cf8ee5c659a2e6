// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"japi.dev/core/base/errors"
)

var (
	// ErrUnmatched is returned when no balanced bracket pair is found.
	ErrUnmatched = errors.New("unmatched bracket")

	// ErrNotBracket is returned by [MatchBracket] when the position does
	// not hold a bracket outside of any skipped span.
	ErrNotBracket = errors.New("not a bracket")
)

// BracePair returns the matching bracket for given byte, which must be
// a left or right brace {}, bracket [] or paren (), and whether it is
// a right one. match is 0 for any other byte.
func BracePair(c byte) (match byte, right bool) {
	switch c {
	case '{':
		match = '}'
	case '}':
		right = true
		match = '{'
	case '(':
		match = ')'
	case ')':
		right = true
		match = '('
	case '[':
		match = ']'
	case ']':
		right = true
		match = '['
	}
	return
}

// braceScan walks src from the start, calling fn for each bracket that
// is not inside a span recognized by sk, with the stack of open bracket
// positions as it is before fn is called. Brackets of different kinds
// need not nest: a right bracket that does not match the top of the
// stack closes the nearest matching open bracket below it, dropping the
// ones above, or is ignored if there is none.
// Scanning stops when fn returns false.
func braceScan(src []byte, sk Skipper, fn func(i int, stack []int, popped int) bool) {
	var stack []int
	sk = StartScan(sk)
	for i := 0; i < len(src); {
		if sk != nil {
			if j := sk.Skip(src, i); j > i {
				i = j
				continue
			}
		}
		c := src[i]
		match, right := BracePair(c)
		if match == 0 {
			i++
			continue
		}
		popped := -1
		if right {
			for k := len(stack) - 1; k >= 0; k-- {
				if src[stack[k]] == match {
					popped = stack[k]
					stack = stack[:k]
					break
				}
			}
		}
		if !fn(i, stack, popped) {
			return
		}
		if !right {
			stack = append(stack, i)
		}
		i++
	}
}

// Balance returns the byte positions of the innermost balanced pair of
// brackets enclosing the caret offset, which lies between bytes:
// open < caret <= close. Brackets inside spans recognized by sk, such as
// strings and comments, are ignored; sk may be nil. It returns
// [ErrUnmatched] if there is no such pair.
func Balance(src []byte, caret int, sk Skipper) (open, close int, err error) {
	open, close = -1, -1
	braceScan(src, sk, func(i int, stack []int, popped int) bool {
		if popped >= 0 && popped < caret && i >= caret {
			open, close = popped, i
			return false
		}
		// nothing open before the caret can enclose it anymore
		return i < caret || (len(stack) > 0 && stack[0] < caret)
	})
	if open < 0 {
		return -1, -1, ErrUnmatched
	}
	return open, close, nil
}

// MatchBracket returns the position of the partner of the bracket at
// src[at]. It returns [ErrNotBracket] if there is no bracket there or it
// is inside a span recognized by sk, and [ErrUnmatched] if it has no
// partner.
func MatchBracket(src []byte, at int, sk Skipper) (int, error) {
	if at < 0 || at >= len(src) {
		return -1, ErrNotBracket
	}
	match, right := BracePair(src[at])
	if match == 0 {
		return -1, ErrNotBracket
	}
	seen := false
	partner := -1
	braceScan(src, sk, func(i int, stack []int, popped int) bool {
		switch {
		case i == at:
			seen = true
			if right {
				partner = popped
				return false
			}
		case seen && !right && popped == at:
			partner = i
			return false
		case i > at && !seen:
			return false
		}
		return true
	})
	switch {
	case !seen:
		return -1, ErrNotBracket
	case partner < 0:
		return -1, ErrUnmatched
	}
	return partner, nil
}
