// This file was auto-generated via go generate.
// DO NOT UPDATE MANUALLY

/*
Command buckets prints the buckets of a multi-attribute hashed file that must be
examined to answer a partial-match query.

The query hash is a string of '0', '1' and '*' characters, most significant bit
first, with at most 31 characters. Each '*' is a bit left unconstrained by the
query. Buckets prints the known and unknown bit-strings, then one bucket id per
line for every assignment of values to the '*' bits.

For example, "buckets 1*0*1" prints buckets 17, 19, 25 and 27.

Usage:
   buckets [flags] <query-hash>

<query-hash> is a bit-string over '0', '1' and '*'.

The buckets flags are:
 -bits=false
   Follow each bucket id with a tab and its bit-string.
 -count=false
   Print only the number of buckets.

*/
package main
