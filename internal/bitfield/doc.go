// Package bitfield provides bit-granular access to byte buffers.
//
// # Addressing Convention
//
// Bits are addressed by a single global index counted from the start of the
// buffer. Within each byte the most significant bit carries the smallest
// index, so index 0 is bit 7 of buffer[0] and index 8 is bit 7 of buffer[1]:
//
//	buffer[0]            buffer[1]
//	7 6 5 4 3 2 1 0      7 6 5 4 3 2 1 0   (bit position)
//	0 1 2 3 4 5 6 7      8 9 ...           (global bit index)
//
// This matches network bit order and the layout produced by MSB-first bit
// writers, which is what pattern buffers and haystacks in this module use.
//
// # Usage
//
//	// bits 4..9 of buf, spanning the first byte boundary
//	v := bitfield.Extract(buf, 4, 6)
//
// Extract is a pure function and performs no bounds checking beyond what the
// Go runtime provides; callers are responsible for staying within the buffer.
package bitfield
