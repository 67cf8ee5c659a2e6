// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"fmt"
	"hash/fnv"
)

// State is the continuation context a [Lexer] carries from the end of
// one line to the start of the next. It packs several bit fields into
// a single comparable value, so that re-lexing can stop as soon as the
// state at a line boundary is unchanged.
//
// Layout, from the least significant bit:
//
//	0-5    kind (language specific lexer state)
//	6-8    flags (see [Flags])
//	9-15   nesting depth of the current delimiter
//	16-23  open delimiter byte
//	24-31  close delimiter byte
//	32-63  hash of a multi-character terminator such as a heredoc's,
//	       or other data specific to the kind
type State uint64

// Flags are the boolean fields of a [State].
type Flags uint64

const (
	// Interpolate marks a quoted construct whose contents interpolate variables.
	Interpolate Flags = 1 << (6 + iota)

	// Operand marks that an operand (term) is expected next, as opposed to an operator.
	Operand

	// Indented marks an indented heredoc whose terminator may be preceded by whitespace.
	Indented
)

const (
	kindBits  = 6
	kindMask  = 1<<kindBits - 1
	flagMask  = State(Interpolate | Operand | Indented)
	depthOff  = 9
	depthMask = 1<<7 - 1
	openOff   = 16
	closeOff  = 24
	hashOff   = 32

	// MaxKind is the largest kind value a State can hold.
	MaxKind = kindMask

	// MaxDepth is the largest nesting depth a State can hold.
	MaxDepth = depthMask
)

// Kind returns the language specific state kind.
func (st State) Kind() int { return int(st & kindMask) }

// WithKind returns the state with the kind set.
func (st State) WithKind(k int) State {
	return st&^kindMask | State(k)&kindMask
}

// Has returns whether all of the given flags are set.
func (st State) Has(f Flags) bool { return st&State(f) == State(f) }

// SetFlag returns the state with the given flags set or cleared.
func (st State) SetFlag(on bool, f Flags) State {
	if on {
		return st | State(f)
	}
	return st &^ State(f)
}

// Depth returns the nesting depth of the current delimiter.
func (st State) Depth() int { return int(st>>depthOff) & depthMask }

// WithDepth returns the state with the nesting depth set, clamped to [0, MaxDepth].
func (st State) WithDepth(d int) State {
	d = min(max(d, 0), MaxDepth)
	return st&^(depthMask<<depthOff) | State(d)<<depthOff
}

// Open returns the open delimiter byte.
func (st State) Open() byte { return byte(st >> openOff) }

// Close returns the close delimiter byte.
func (st State) Close() byte { return byte(st >> closeOff) }

// WithDelims returns the state with the open and close delimiter bytes set.
func (st State) WithDelims(open, close byte) State {
	st &^= 0xff<<openOff | 0xff<<closeOff
	return st | State(open)<<openOff | State(close)<<closeOff
}

// Hash returns the terminator hash.
func (st State) Hash() uint32 { return uint32(st >> hashOff) }

// WithHash returns the state with the terminator hash set.
func (st State) WithHash(h uint32) State {
	return st&0xffffffff | State(h)<<hashOff
}

// Reset returns a state of the given kind with only the flags retained.
func (st State) Reset(k int) State {
	return (st & flagMask).WithKind(k)
}

func (st State) String() string {
	return fmt.Sprintf("kind=%d flags=%03b depth=%d delims=%q%q hash=%08x",
		st.Kind(), (st&flagMask)>>kindBits, st.Depth(), st.Open(), st.Close(), st.Hash())
}

// HashTerminator returns the 32-bit FNV-1a hash of a terminator string.
func HashTerminator(term []byte) uint32 {
	h := fnv.New32a()
	h.Write(term)
	return h.Sum32()
}
