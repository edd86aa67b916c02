// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bitset provides Bits, a fixed-width bit-string held in a
// single machine word. Bit i carries weight 2^i; bit-strings are
// rendered with the most significant bit on the left. It is
// essentially a single-word, value-typed variant of
// github.com/willf/bitset, sized for multi-attribute hash values.
package bitset
