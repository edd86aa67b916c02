// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

import "math/bits"

// Scanner iterates over the set bits of a Bits in ascending
// position order. Scanning works on a private copy of the word; the
// Bits it was created from is unaffected.
type Scanner struct {
	// word holds the not-yet-visited set bits.
	word uint32
}

// Scanner returns a Scanner over the set bits of b, along with the
// position of the first set bit, or -1 if b has none. The interface
// is chosen to make for loops with properly-scoped variables easy to
// write:
//
//	for s, i := b.Scanner(); i != -1; i = s.Next() {
//		...
//	}
func (b Bits) Scanner() (Scanner, int) {
	s := Scanner{word: b.word}
	i := s.Next()
	return s, i
}

// Next returns the position of the next set bit, or -1 if there
// aren't any.
func (s *Scanner) Next() int {
	if s.word == 0 {
		return -1
	}
	i := bits.TrailingZeros32(s.word)
	s.word &= s.word - 1
	return i
}
