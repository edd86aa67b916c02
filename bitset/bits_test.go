// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	fuzz "github.com/google/gofuzz"
	gbitset "github.com/grailbio/pmquery/bitset"
	"github.com/grailbio/pmquery/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willf/bitset"
)

func zero(t *testing.T, n int) gbitset.Bits {
	b, err := gbitset.Zero(n)
	require.NoError(t, err)
	return b
}

func TestZero(t *testing.T) {
	for n := 1; n <= gbitset.MaxWidth; n++ {
		b := zero(t, n)
		assert.Equal(t, n, b.Width())
		assert.Equal(t, strings.Repeat("0", n), b.String())
		assert.Equal(t, 0, b.Int())
		assert.Equal(t, 0, b.Count())
	}
}

func TestZeroInvalidWidth(t *testing.T) {
	for _, n := range []int{-1, 0, 32, 64} {
		_, err := gbitset.Zero(n)
		require.Error(t, err, "width %d", n)
		assert.True(t, errors.Is(errors.InvalidLength, err), "width %d: %v", n, err)
	}
}

func TestSetSingleBit(t *testing.T) {
	for n := 1; n <= gbitset.MaxWidth; n++ {
		for i := 0; i < n; i++ {
			b := zero(t, n).Set(i)
			assert.Equal(t, uint32(1)<<uint(i), b.Uint32())
			assert.Equal(t, 1<<uint(i), b.Int())
			assert.True(t, b.Test(i))
			assert.Equal(t, 1, b.Count())
			s := b.String()
			require.Len(t, s, n)
			assert.Equal(t, byte('1'), s[n-1-i])
		}
	}
}

func TestSetReturnsCopy(t *testing.T) {
	b := zero(t, 5)
	c := b.Set(3)
	assert.False(t, b.Test(3))
	assert.True(t, c.Test(3))
	assert.Equal(t, c, c.Set(3))
}

func TestRender(t *testing.T) {
	b := zero(t, 5).Set(0).Set(4)
	assert.Equal(t, "10001", b.String())
	assert.Equal(t, "10001", fmt.Sprint(b))
	assert.Equal(t, 17, b.Int())
	b = zero(t, 5).Set(1).Set(3)
	assert.Equal(t, "01010", b.String())
	assert.Equal(t, 10, b.Int())
}

func TestOutOfRangePanics(t *testing.T) {
	b := zero(t, 4)
	assert.Panics(t, func() { b.Set(4) })
	assert.Panics(t, func() { b.Set(-1) })
	assert.Panics(t, func() { b.Test(4) })
	var empty gbitset.Bits
	assert.Panics(t, func() { empty.Set(0) })
}

func TestScanner(t *testing.T) {
	b := zero(t, 8).Set(1).Set(3).Set(7)
	var got []int
	for s, i := b.Scanner(); i != -1; i = s.Next() {
		got = append(got, i)
	}
	assert.Equal(t, []int{1, 3, 7}, got)
	assert.Equal(t, "10001010", b.String())

	s, i := zero(t, 8).Scanner()
	assert.Equal(t, -1, i)
	assert.Equal(t, -1, s.Next())
}

// TestRandom cross-checks Bits against github.com/willf/bitset and
// strconv on fuzzed words.
func TestRandom(t *testing.T) {
	f := fuzz.New()
	for iter := 0; iter < 1000; iter++ {
		var (
			width uint8
			word  uint32
		)
		f.Fuzz(&width)
		f.Fuzz(&word)
		n := int(width)%gbitset.MaxWidth + 1
		word &= 1<<uint(n) - 1

		b := zero(t, n)
		oracle := bitset.New(uint(n))
		for i := 0; i < n; i++ {
			if word&(1<<uint(i)) != 0 {
				b = b.Set(i)
				oracle.Set(uint(i))
			}
		}
		require.Equal(t, word, b.Uint32())
		require.Equal(t, int(oracle.Count()), b.Count())
		for i := 0; i < n; i++ {
			require.Equal(t, oracle.Test(uint(i)), b.Test(i), "bit %d of %b", i, word)
		}
		want := strconv.FormatUint(uint64(word), 2)
		want = strings.Repeat("0", n-len(want)) + want
		require.Equal(t, want, b.String())

		var scanned []int
		for s, i := b.Scanner(); i != -1; i = s.Next() {
			scanned = append(scanned, i)
		}
		var want2 []int
		for i, ok := oracle.NextSet(0); ok; i, ok = oracle.NextSet(i + 1) {
			want2 = append(want2, int(i))
		}
		require.Equal(t, want2, scanned)
	}
}

func ExampleBits() {
	b, err := gbitset.Zero(5)
	if err != nil {
		panic(err)
	}
	b = b.Set(0).Set(4)
	fmt.Println(b, b.Int(), b.Count())
	// Output: 10001 17 2
}
