// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package query

import (
	"github.com/grailbio/pmquery/bitset"
	"github.com/grailbio/pmquery/log"
	"github.com/grailbio/pmquery/must"
	wbitset "github.com/willf/bitset"
)

// Enumerator lists the buckets matching a query hash. Bucket c (for
// combination counter c in [0, Count())) is Known with the j-th
// wildcard position, in ascending bit order, set iff bit j of c is
// set. Buckets are produced in ascending counter order; they are
// distinct and cover every wildcard assignment exactly once.
type Enumerator struct {
	hash Hash
	// wild lists the wildcard bit positions in ascending order.
	wild []int
}

// NewEnumerator returns an Enumerator for h.
func NewEnumerator(h Hash) *Enumerator {
	e := &Enumerator{hash: h}
	for s, i := h.Unknown.Scanner(); i != -1; i = s.Next() {
		e.wild = append(e.wild, i)
	}
	log.Debug.Printf("query %s: width %d, %d wildcards, %d buckets", h, h.Width(), len(e.wild), e.Count())
	return e
}

// Count returns the number of buckets, 2^k for k wildcards.
func (e *Enumerator) Count() uint64 {
	return 1 << uint(len(e.wild))
}

// Bucket returns the bucket for the given combination counter, which
// must be less than Count().
func (e *Enumerator) Bucket(counter uint32) bitset.Bits {
	must.Truef(uint64(counter) < e.Count(), "query: counter %d out of range [0, %d)", counter, e.Count())
	b := e.hash.Known
	for j, i := range e.wild {
		if counter&(1<<uint(j)) != 0 {
			b = b.Set(i)
		}
	}
	return b
}

// Each calls fn on every bucket in enumeration order. It stops and
// returns the first error returned by fn.
func (e *Enumerator) Each(fn func(bitset.Bits) error) error {
	n := e.Count()
	for c := uint64(0); c < n; c++ {
		if err := fn(e.Bucket(uint32(c))); err != nil {
			return err
		}
	}
	return nil
}

// All returns the bucket ids in enumeration order.
func (e *Enumerator) All() []uint32 {
	ids := make([]uint32, 0, e.Count())
	_ = e.Each(func(b bitset.Bits) error {
		ids = append(ids, b.Uint32())
		return nil
	})
	return ids
}

// Set returns the bucket ids as a membership set over
// [0, 2^Width()).
func (e *Enumerator) Set() *wbitset.BitSet {
	set := wbitset.New(uint(1) << uint(e.hash.Width()))
	_ = e.Each(func(b bitset.Bits) error {
		set.Set(uint(b.Uint32()))
		return nil
	})
	return set
}

// Buckets parses the query hash s and returns the ids of the buckets
// to examine, in enumeration order.
func Buckets(s string) ([]uint32, error) {
	h, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return NewEnumerator(h).All(), nil
}
