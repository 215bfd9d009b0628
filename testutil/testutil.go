package testutil

import (
	"math/rand"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bytes returns a pseudo-random byte slice of length n.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	buf := make([]byte, n)
	_, _ = r.rand.Read(buf)
	return buf
}

// Nibbles returns n pseudo-random nibble values in [0, 15].
func (r *RNG) Nibbles(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(r.rand.Intn(16))
	}
	return buf
}

// Bits packs a literal bit string such as "1010 1111" into a byte slice,
// MSB-first, padding the final byte with zero bits. Spaces are ignored.
// It panics on any other character; it is meant for test fixtures only.
func Bits(s string) []byte {
	s = strings.ReplaceAll(s, " ", "")
	buf := make([]byte, (len(s)+7)/8)
	for i, c := range s {
		switch c {
		case '1':
			buf[i/8] |= 0x80 >> (i % 8)
		case '0':
		default:
			panic("testutil: bit string may contain only '0', '1' and spaces")
		}
	}
	return buf
}

// BitAt returns bit i of buf under the MSB-first convention
// (bit 0 of a byte is its most significant bit).
func BitAt(buf []byte, i int) byte {
	return buf[i/8] >> (7 - i%8) & 1
}
