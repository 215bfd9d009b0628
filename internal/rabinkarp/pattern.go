package rabinkarp

import (
	"errors"
	"fmt"
)

const (
	// Prime is the modulus of the rolling-hash field.
	//
	// Changing it requires changing initRNum: the two are tied by
	// initRNum == 2^-1 mod Prime.
	Prime = 167

	// initRNum is the modular inverse of 2 mod Prime. Seeding the
	// cancellation accumulator with it lets 2^(bitLen-1) mod Prime fall
	// out of the shift-and-reduce loop in Compile.
	initRNum = 84
)

// ErrShortInput is returned by Compile when the nibble sequence holds fewer
// bits than the requested bit count.
var ErrShortInput = errors.New("rabinkarp: nibble sequence shorter than bit count")

// InvalidNibbleError reports a nibble value outside [0, 15]. The decoding
// layer is expected to reject such input before compilation; this is the
// compiler's defense against callers that bypass it.
type InvalidNibbleError struct {
	Index int
	Value byte
}

func (e *InvalidNibbleError) Error() string {
	return fmt.Sprintf("rabinkarp: nibble %d out of range at index %d", e.Value, e.Index)
}

// Pattern is a compiled search pattern: the pattern bits packed MSB-first,
// the number of significant bits, the rolling hash of the whole pattern and
// the precomputed cancellation term for the outgoing window bit.
//
// A Pattern is immutable after Compile and safe for concurrent use.
type Pattern struct {
	bits   []byte
	bitLen int
	hash   uint32
	cancel uint32
}

// Compile builds a Pattern from a sequence of 4-bit nibble values consumed
// left to right, packing two nibbles per byte (high nibble first) and folding
// each consumed chunk into the rolling hash as it goes. Only the first
// bitLen bits are significant; for a bitLen that is not a multiple of 4 the
// final nibble contributes its high-order bits only.
//
// A bitLen of zero yields an empty pattern, which matches any haystack at
// offset 0. Negative bitLen, short input and out-of-range nibble values are
// rejected.
func Compile(nibbles []byte, bitLen int) (*Pattern, error) {
	if bitLen < 0 {
		return nil, fmt.Errorf("rabinkarp: negative bit count %d", bitLen)
	}

	p := &Pattern{
		bits:   make([]byte, (bitLen+7)/8),
		bitLen: bitLen,
	}

	rnum := uint32(initRNum)

	idx := 0
	for remaining := bitLen; remaining > 0; idx++ {
		if idx >= len(nibbles) {
			return nil, ErrShortInput
		}
		val := nibbles[idx]
		if val > 0xF {
			return nil, &InvalidNibbleError{Index: idx, Value: val}
		}

		width := remaining
		if width > 4 {
			width = 4
		}

		// A partial final nibble contributes its high-order bits.
		p.hash = (p.hash<<width + uint32(val>>(4-width))) % Prime
		rnum = rnum << width % Prime

		// The full nibble is packed regardless of width; bits beyond
		// bitLen are padding and are never read back.
		if idx&1 == 0 {
			p.bits[idx/2] = val << 4
		} else {
			p.bits[idx/2] |= val
		}

		remaining -= width
	}

	if bitLen > 0 {
		p.cancel = Prime - rnum
	}

	return p, nil
}

// BitLen returns the number of significant bits in the pattern.
func (p *Pattern) BitLen() int { return p.bitLen }

// Hash returns the rolling hash of the whole pattern, in [0, Prime).
func (p *Pattern) Hash() uint32 { return p.hash }
