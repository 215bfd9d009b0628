// Package bitmatch locates an arbitrary-length bit pattern, not necessarily
// byte-aligned, inside binary data.
//
// The engine is a Rabin–Karp search generalized from byte to single-bit
// granularity: a pattern is compiled once into its packed bits, a rolling
// hash and a precomputed cancellation term, then slid across the haystack one
// bit at a time with O(1) hash updates. Hash hits are confirmed by an exact
// bit-level comparison, so collisions never produce false matches.
//
// # Quick Start
//
//	// "1010 0101 1" — nine significant bits of the hex digits A5 8
//	pat, err := bitmatch.Compile("A58", 9)
//	if err != nil { ... }
//
//	offset, found := pat.Find(data)
//
// Patterns are immutable after compilation and safe for concurrent use; a
// single Pattern may scan many haystacks, in parallel if desired.
//
// # Bit Addressing
//
// Offsets count bits from the start of the buffer, most significant bit
// first within each byte: offset 0 is bit 7 of data[0]. A pattern's bit
// count need not be a multiple of four or eight; trailing bits of the last
// hex digit beyond the bit count are ignored.
//
// # Haystack Sources
//
// Haystacks are plain byte slices. The blobstore package supplies them from
// local files (zero-copy via mmap), memory, S3 or MinIO, and FindInStore
// scans many named blobs concurrently:
//
//	store := blobstore.NewLocalStore("/var/dumps")
//	results, err := pat.FindInStore(ctx, store, []string{"a.bin", "b.bin"})
//
// Streams, including zstd- or lz4-compressed ones, are materialized with the
// input package:
//
//	r, _, err := input.NewAutoReader(os.Stdin)
//	offset, found, err := pat.FindReader(r)
//
// # Empty Patterns and Verdicts
//
// A pattern with zero significant bits matches any haystack at offset 0. A
// pattern longer than the haystack is never found. The verdict is the
// (offset, found) pair; errors are reserved for malformed pattern input.
package bitmatch
