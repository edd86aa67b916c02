// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package query

import (
	"github.com/grailbio/pmquery/bitset"
	"github.com/grailbio/pmquery/errors"
)

// Hash is a parsed query hash. Known holds the bits fixed to 1 by the
// query; Unknown marks the wildcard positions. The two never share a
// set bit, and both have the width of the query string.
type Hash struct {
	Known, Unknown bitset.Bits
}

// Parse parses a query hash. Character 0 of s is bit len(s)-1. Parse
// returns an errors.InvalidLength error if len(s) is not in
// [1, bitset.MaxWidth], and an errors.InvalidCharacter error naming
// the first character that is not '0', '1' or '*'.
func Parse(s string) (Hash, error) {
	known, err := bitset.Zero(len(s))
	if err != nil {
		return Hash{}, errors.E("query hash", err)
	}
	unknown := known
	for i, j := 0, len(s)-1; i < len(s); i, j = i+1, j-1 {
		switch c := s[i]; c {
		case '1':
			known = known.Set(j)
		case '0':
		case '*':
			unknown = unknown.Set(j)
		default:
			return Hash{}, errors.Errorf(errors.InvalidCharacter,
				"query hash %q: character %q at position %d", s, c, i)
		}
	}
	return Hash{Known: known, Unknown: unknown}, nil
}

// Width returns the number of bits in the query hash.
func (h Hash) Width() int {
	return h.Known.Width()
}

// Wildcards returns the number of wildcard bits.
func (h Hash) Wildcards() int {
	return h.Unknown.Count()
}

// String renders h back into query hash form.
func (h Hash) String() string {
	b := []byte(h.Known.String())
	n := len(b)
	for s, i := h.Unknown.Scanner(); i != -1; i = s.Next() {
		b[n-1-i] = '*'
	}
	return string(b)
}
