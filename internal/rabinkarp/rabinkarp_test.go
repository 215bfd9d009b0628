package rabinkarp

import (
	"testing"

	"github.com/popov-nikita/bitmatch/testutil"
	"github.com/stretchr/testify/require"
)

func TestCompileConstants(t *testing.T) {
	// hash of 1010 is 10; the cancellation term for a 4-bit window is
	// -(2^3) mod 167 = 159.
	p, err := Compile([]byte{0xA}, 4)
	require.NoError(t, err)
	require.Equal(t, 4, p.BitLen())
	require.Equal(t, uint32(10), p.Hash())
	require.Equal(t, uint32(159), p.cancel)
	require.Equal(t, []byte{0xA0}, p.bits)
}

func TestCompilePartialNibble(t *testing.T) {
	// 101010101: two full nibbles plus the high bit of the third.
	p, err := Compile([]byte{0xA, 0xA, 0x8}, 9)
	require.NoError(t, err)
	require.Equal(t, 9, p.BitLen())
	// ((10<<4 + 10) mod 167) << 1 + 1 = 3<<1 + 1 = 7
	require.Equal(t, uint32(7), p.Hash())
	require.Equal(t, []byte{0xAA, 0x80}, p.bits)
}

func TestCompileErrors(t *testing.T) {
	_, err := Compile(nil, -1)
	require.Error(t, err)

	_, err = Compile([]byte{0xA}, 8)
	require.ErrorIs(t, err, ErrShortInput)

	_, err = Compile([]byte{0xA, 0x10}, 8)
	var nerr *InvalidNibbleError
	require.ErrorAs(t, err, &nerr)
	require.Equal(t, 1, nerr.Index)
	require.Equal(t, byte(0x10), nerr.Value)
}

func TestCompileEmpty(t *testing.T) {
	p, err := Compile(nil, 0)
	require.NoError(t, err)
	require.Equal(t, 0, p.BitLen())

	// An empty pattern matches anything, a zero-length haystack included.
	off, found := p.Find(nil)
	require.True(t, found)
	require.Equal(t, 0, off)

	off, found = p.Find([]byte{0xFF})
	require.True(t, found)
	require.Equal(t, 0, off)
}

func TestFindScenarios(t *testing.T) {
	tests := []struct {
		name     string
		nibbles  []byte
		bitLen   int
		haystack []byte
		wantOff  int
		want     bool
	}{
		{"1010 in 0xAF", []byte{0xA}, 4, []byte{0xAF}, 0, true},
		{"1111 in 0xAF", []byte{0xF}, 4, []byte{0xAF}, 4, true},
		{"0000 in 0xAF", []byte{0x0}, 4, []byte{0xAF}, 0, false},
		{"101010101 in 0xAAAA", []byte{0xA, 0xA, 0x8}, 9, []byte{0xAA, 0xAA}, 0, true},
		{"unaligned middle", []byte{0xE, 0x8}, 5, testutil.Bits("0001 1101 0000"), 3, true},
		{"at very end", []byte{0xF}, 4, []byte{0x00, 0x0F}, 12, true},
		{"single bit", []byte{0x8}, 1, []byte{0x01}, 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.nibbles, tt.bitLen)
			require.NoError(t, err)

			off, found := p.Find(tt.haystack)
			require.Equal(t, tt.want, found)
			if tt.want {
				require.Equal(t, tt.wantOff, off)
			}
		})
	}
}

func TestFindPatternLongerThanHaystack(t *testing.T) {
	p, err := Compile([]byte{0xA, 0xA, 0xA}, 12)
	require.NoError(t, err)

	_, found := p.Find([]byte{0xAA})
	require.False(t, found)

	_, found = p.Find(nil)
	require.False(t, found)
}

func TestFindFullHaystackWindow(t *testing.T) {
	// Pattern of exactly the haystack bit length: a single window position.
	p, err := Compile([]byte{0xA, 0xF}, 8)
	require.NoError(t, err)

	off, found, st := p.FindWithStats([]byte{0xAF})
	require.True(t, found)
	require.Equal(t, 0, off)
	require.Equal(t, 1, st.Windows)

	_, found, st = p.FindWithStats([]byte{0xAE})
	require.False(t, found)
	require.Equal(t, 1, st.Windows)
}

func TestFindHashCollision(t *testing.T) {
	// 000000000001 and 000010101000 (value 168) both hash to 1 mod 167.
	// The haystack carries the colliding window first; the exact matcher
	// must reject it and the scan must go on to the true occurrence.
	p, err := Compile([]byte{0x0, 0xA, 0x8}, 12)
	require.NoError(t, err)
	require.Equal(t, uint32(1), p.Hash())

	haystack := testutil.Bits("000000000001 000010101000")

	require.False(t, p.MatchAt(haystack, 0))

	off, found, st := p.FindWithStats(haystack)
	require.True(t, found)
	require.Equal(t, 12, off)
	require.Equal(t, 1, st.Collisions)
}

func TestFindIdempotent(t *testing.T) {
	rng := testutil.NewRNG(4711)
	p, err := Compile(rng.Nibbles(4), 16)
	require.NoError(t, err)
	haystack := rng.Bytes(256)

	off1, found1 := p.Find(haystack)
	off2, found2 := p.Find(haystack)
	require.Equal(t, found1, found2)
	require.Equal(t, off1, off2)
}

// naiveFind is the brute-force reference: bit-by-bit comparison at every
// window position.
func naiveFind(nibbles []byte, bitLen int, haystack []byte) (int, bool) {
	if bitLen == 0 {
		return 0, true
	}
	total := len(haystack) * 8
	patBit := func(i int) byte {
		return nibbles[i/4] >> (3 - i%4) & 1
	}
	for off := 0; off+bitLen <= total; off++ {
		ok := true
		for i := 0; i < bitLen; i++ {
			if testutil.BitAt(haystack, off+i) != patBit(i) {
				ok = false
				break
			}
		}
		if ok {
			return off, true
		}
	}
	return 0, false
}

func TestFindAgainstNaiveReference(t *testing.T) {
	rng := testutil.NewRNG(1)

	for bitLen := 1; bitLen <= 64; bitLen++ {
		nibbles := rng.Nibbles((bitLen + 3) / 4)
		p, err := Compile(nibbles, bitLen)
		require.NoError(t, err)

		for trial := 0; trial < 8; trial++ {
			haystack := rng.Bytes(1 + rng.Intn(512))

			wantOff, want := naiveFind(nibbles, bitLen, haystack)
			off, found := p.Find(haystack)

			require.Equal(t, want, found, "bitLen=%d trial=%d", bitLen, trial)
			if want {
				require.Equal(t, wantOff, off, "bitLen=%d trial=%d", bitLen, trial)
			}
		}
	}
}

func TestFindPlantedPattern(t *testing.T) {
	// Random patterns planted at random bit offsets must always be found
	// at or before the planted offset.
	rng := testutil.NewRNG(2)

	for trial := 0; trial < 64; trial++ {
		bitLen := 1 + rng.Intn(64)
		nibbles := rng.Nibbles((bitLen + 3) / 4)
		p, err := Compile(nibbles, bitLen)
		require.NoError(t, err)

		haystack := rng.Bytes(64)
		plant := rng.Intn(len(haystack)*8 - bitLen + 1)
		for i := 0; i < bitLen; i++ {
			bit := nibbles[i/4] >> (3 - i%4) & 1
			pos := plant + i
			if bit == 1 {
				haystack[pos/8] |= 0x80 >> (pos % 8)
			} else {
				haystack[pos/8] &^= 0x80 >> (pos % 8)
			}
		}

		off, found := p.Find(haystack)
		require.True(t, found, "trial=%d bitLen=%d plant=%d", trial, bitLen, plant)
		require.LessOrEqual(t, off, plant)
		require.True(t, p.MatchAt(haystack, off))
	}
}
