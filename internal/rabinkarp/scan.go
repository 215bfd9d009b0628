package rabinkarp

import (
	"github.com/popov-nikita/bitmatch/internal/bitfield"
)

// Stats describes the work performed by a single scan.
type Stats struct {
	// Windows is the number of window positions whose hash was compared.
	Windows int
	// Collisions is the number of hash hits rejected by exact comparison.
	Collisions int
}

// Find reports the bit offset of the first occurrence of the pattern in buf
// and whether one was found. An empty pattern matches at offset 0; a pattern
// longer than buf never matches.
func (p *Pattern) Find(buf []byte) (int, bool) {
	off, found, _ := p.find(buf)
	return off, found
}

// FindWithStats is Find with scan statistics for metrics collection.
func (p *Pattern) FindWithStats(buf []byte) (int, bool, Stats) {
	return p.find(buf)
}

func (p *Pattern) find(buf []byte) (int, bool, Stats) {
	var st Stats

	if p.bitLen == 0 {
		return 0, true, st
	}
	total := len(buf) * 8
	if p.bitLen > total {
		return 0, false, st
	}

	// Hash of the leading window, folded in chunks of up to 8 bits. The
	// result is identical to folding bit by bit.
	var hash uint32
	for off := 0; off < p.bitLen; {
		count := p.bitLen - off
		if count > 8 {
			count = 8
		}
		hash = (hash<<count + uint32(bitfield.Extract(buf, off, count))) % Prime
		off += count
	}

	// Every window position is checked exactly once, the final one
	// included, before the window advances past it.
	for end := p.bitLen; ; end++ {
		start := end - p.bitLen

		st.Windows++
		if hash == p.hash {
			if p.MatchAt(buf, start) {
				return start, true, st
			}
			st.Collisions++
		}

		if end == total {
			return 0, false, st
		}

		// The departing bit was counted with weight 2^(bitLen-1); if it
		// is set, adding the cancellation term removes it. Then fold in
		// the bit entering at the new end.
		if bitfield.Extract(buf, start, 1) == 1 {
			hash = (hash + p.cancel) % Prime
		}
		hash = (hash<<1 + uint32(bitfield.Extract(buf, end, 1))) % Prime
	}
}

// MatchAt reports whether the pattern matches buf at the given bit offset,
// comparing in chunks of up to 8 bits and stopping at the first difference.
// Callers must ensure off+BitLen() does not exceed the bit length of buf.
func (p *Pattern) MatchAt(buf []byte, off int) bool {
	for patOff := 0; patOff < p.bitLen; {
		count := p.bitLen - patOff
		if count > 8 {
			count = 8
		}
		if bitfield.Extract(buf, off+patOff, count) != bitfield.Extract(p.bits, patOff, count) {
			return false
		}
		patOff += count
	}
	return true
}
