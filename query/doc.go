// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package query computes the buckets that must be examined to answer
// a partial-match query against a file organized by multi-attribute
// hashing.
//
// A query hash is a string over {'0', '1', '*'} written most
// significant bit first, as produced by applying attribute hash
// functions and a choice vector to a query such as "a,?,c". Each '*'
// is a bit whose value the query does not constrain. Parse splits a
// query hash into the known bits and the wildcard positions, and an
// Enumerator lists all 2^k buckets obtained by assigning every
// combination of values to the k wildcard bits.
//
// Hash functions, choice vectors and overflow pages are outside the
// scope of this package; it starts from the query hash.
package query
