package bitfield

// Extract returns count contiguous bits of buf starting at the global bit
// index off, with the first-extracted bit in the most significant position of
// the result. count must be in [1, 8]; the field may straddle one byte
// boundary, in which case it is consumed in two steps.
//
// Callers must ensure off+count does not exceed the bit length of buf.
func Extract(buf []byte, off, count int) byte {
	var v uint

	for count > 0 {
		// Bits still available in the current byte, starting at off.
		avail := 8 - off&7
		take := count
		if take > avail {
			take = avail
		}
		// Bits below the consumed field that stay in this byte.
		left := avail - take

		part := uint(buf[off>>3])
		mask := (uint(1)<<avail - 1) &^ (uint(1)<<left - 1)

		v = v<<take | (part&mask)>>left

		count -= take
		off += take
	}

	return byte(v)
}
