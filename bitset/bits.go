// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

import (
	"math/bits"
	"strings"

	"github.com/grailbio/pmquery/errors"
	"github.com/grailbio/pmquery/must"
)

// MaxWidth is the widest bit-string supported. Bucket ids derived
// from a Bits must fit in a non-negative int32.
const MaxWidth = 31

// Bits is a bit-string of fixed width. Bits values are immutable:
// Set returns a modified copy. No bit at or above the width is ever
// set.
//
// The zero Bits has width 0 and is not useful; use Zero.
type Bits struct {
	word  uint32
	width uint8
}

// Zero returns an all-zero bit-string of width n. It returns an
// errors.InvalidLength error unless 0 < n <= MaxWidth.
func Zero(n int) (Bits, error) {
	if n <= 0 || n > MaxWidth {
		return Bits{}, errors.Errorf(errors.InvalidLength, "bit-string width %d not in [1, %d]", n, MaxWidth)
	}
	return Bits{width: uint8(n)}, nil
}

// Set returns a copy of b with bit i set. Bit i must be within
// [0, b.Width()).
func (b Bits) Set(i int) Bits {
	b.check(i)
	b.word |= 1 << uint(i)
	return b
}

// Test returns true iff bit i of b is set.
func (b Bits) Test(i int) bool {
	b.check(i)
	return b.word&(1<<uint(i)) != 0
}

func (b Bits) check(i int) {
	must.Truef(i >= 0 && i < int(b.width), "bitset: bit %d out of range [0, %d)", i, b.width)
}

// Width returns the declared number of bits in b.
func (b Bits) Width() int {
	return int(b.width)
}

// Uint32 returns the value of b, i.e. the sum of 2^i over all set
// bits i.
func (b Bits) Uint32() uint32 {
	return b.word
}

// Int is Uint32 as an int. It is always non-negative.
func (b Bits) Int() int {
	return int(b.word)
}

// Count returns the number of set bits.
func (b Bits) Count() int {
	return bits.OnesCount32(b.word)
}

// String renders b as exactly Width() '0' and '1' characters, most
// significant bit first.
func (b Bits) String() string {
	var s strings.Builder
	s.Grow(int(b.width))
	for i := int(b.width) - 1; i >= 0; i-- {
		if b.word&(1<<uint(i)) != 0 {
			s.WriteByte('1')
		} else {
			s.WriteByte('0')
		}
	}
	return s.String()
}
