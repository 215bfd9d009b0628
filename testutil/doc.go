// Package testutil provides testing utilities for bitmatch.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random number generator for
// reproducible randomized tests and helpers for building bit-level
// fixtures from literal bit strings.
//
// # Random Fixtures
//
//	rng := testutil.NewRNG(seed)
//	haystack := rng.Bytes(512)
//	nibbles := rng.Nibbles(4)
//
// # Literal Bit Strings
//
//	buf := testutil.Bits("1010 1111")  // -> []byte{0xAF}
//	bit := testutil.BitAt(buf, 4)      // -> 1
package testutil
