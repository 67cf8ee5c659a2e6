// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"japi.dev/core/text/token"
)

// KeywordSet is a list of words all recognized as the same token.
type KeywordSet struct {
	Token token.Tokens
	Words []string
}

// Keywords is a deterministic finite automaton recognizing a fixed set
// of words. Its transition table is dense over the alphabet of bytes
// that actually occur in the words.
type Keywords struct {

	// class maps each byte to its alphabet column, 0 for bytes not in any word.
	class [256]uint8

	// ncls is the number of columns including the reject column.
	ncls int

	// next is the transition table, ncls entries per state; 0 is the dead state.
	next []int32

	// accept is the token accepted in each state, or token.None.
	accept []token.Tokens
}

// NewKeywords compiles a DFA recognizing the words in the given sets.
// A word listed in more than one set takes the token of the last one.
func NewKeywords(sets ...KeywordSet) *Keywords {
	kw := &Keywords{ncls: 1}
	for _, set := range sets {
		for _, w := range set.Words {
			for i := 0; i < len(w); i++ {
				if kw.class[w[i]] == 0 {
					kw.class[w[i]] = uint8(kw.ncls)
					kw.ncls++
				}
			}
		}
	}
	kw.addState() // dead
	kw.addState() // start
	for _, set := range sets {
		for _, w := range set.Words {
			s := int32(1)
			for i := 0; i < len(w); i++ {
				c := int32(kw.class[w[i]])
				nx := kw.next[s*int32(kw.ncls)+c]
				if nx == 0 {
					nx = kw.addState()
					kw.next[s*int32(kw.ncls)+c] = nx
				}
				s = nx
			}
			kw.accept[s] = set.Token
		}
	}
	return kw
}

func (kw *Keywords) addState() int32 {
	kw.next = append(kw.next, make([]int32, kw.ncls)...)
	kw.accept = append(kw.accept, token.None)
	return int32(len(kw.accept) - 1)
}

func (kw *Keywords) step(s int32, c byte) int32 {
	return kw.next[s*int32(kw.ncls)+int32(kw.class[c])]
}

// Match returns the token for the given word if it is a keyword.
func (kw *Keywords) Match(word []byte) (token.Tokens, bool) {
	s := int32(1)
	for _, c := range word {
		if s = kw.step(s, c); s == 0 {
			return token.None, false
		}
	}
	tok := kw.accept[s]
	return tok, tok != token.None
}

// MatchString is [Keywords.Match] for a string.
func (kw *Keywords) MatchString(word string) (token.Tokens, bool) {
	return kw.Match([]byte(word))
}

// Scan returns the length and token of the longest keyword that is a
// prefix of src[i:], or 0 if none is.
func (kw *Keywords) Scan(src []byte, i int) (int, token.Tokens) {
	s := int32(1)
	n, tok := 0, token.None
	for j := i; j < len(src); j++ {
		if s = kw.step(s, src[j]); s == 0 {
			break
		}
		if kw.accept[s] != token.None {
			n, tok = j+1-i, kw.accept[s]
		}
	}
	return n, tok
}

// NumStates returns the number of states in the DFA, including the dead state.
func (kw *Keywords) NumStates() int { return len(kw.accept) }
