// Package rabinkarp implements bit-granular first-match search using the
// Rabin–Karp algorithm generalized from byte to single-bit granularity.
//
// # Hash Function
//
// Let Bk Bk-1 ... B1 B0 be the bits of a window. The window hash is
//
//	F = (Bk*2^k + ... + B2*4 + B1*2 + B0) mod P
//
// where P is a small prime. Sliding the window one bit to the right removes
// the contribution of Bk and folds in one new low-order bit. The removal is
// done by adding a precomputed cancellation term equal to -(2^k) mod P, so
// the per-shift cost is O(1) with no division beyond the modulo reduction.
//
// The cancellation term is produced during compilation from the modular
// inverse of 2: starting at 2^-1 mod P, one shift-and-reduce per pattern bit
// leaves 2^(k) mod P after the last bit, and P minus that is the term. This
// shares the loop that folds the pattern hash, so both constants come out of
// a single pass over the pattern.
//
// # Verification
//
// A hash hit is only a candidate. The window is confirmed by an exact
// bit-by-bit comparison (chunked in bytes) before a match is reported, so
// hash collisions can never produce a false positive.
package rabinkarp
