// Package input materializes haystack byte streams for scanning.
//
// The search engine operates on fully-buffered data, so arbitrary-length
// streams (stdin, pipes, network bodies) are slurped into an owned buffer
// first. ReadAll grows that buffer with amortized doubling and returns it by
// value; there is no fixed scratch area and no abort-on-allocation-failure
// path.
//
// Compressed haystacks are handled transparently: NewAutoReader sniffs the
// zstd and lz4 frame magic numbers and stacks the matching decoder, so
// callers scan the decompressed bit stream without caring how the bytes
// arrived.
//
// NewThrottledReader bounds read throughput with a token-bucket limiter,
// for callers that slurp from shared or metered sources.
package input
