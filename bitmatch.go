package bitmatch

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/popov-nikita/bitmatch/input"
	"github.com/popov-nikita/bitmatch/internal/rabinkarp"
)

// Pattern is a compiled, immutable bit pattern. It is safe for concurrent
// use; a single Pattern may scan many haystacks in parallel.
type Pattern struct {
	rk   *rabinkarp.Pattern
	opts *options
}

// Compile compiles a pattern from hex text. The first bitCount bits of the
// digit sequence, most significant bit first, are significant; hexDigits
// must supply at least ceil(bitCount/4) digits and trailing digits beyond
// that are ignored. Upper- and lower-case digits are accepted.
//
// A bitCount of zero yields an empty pattern, which matches any haystack at
// offset 0.
func Compile(hexDigits string, bitCount int, opts ...Option) (*Pattern, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if bitCount < 0 {
		return nil, ErrNegativeBitCount
	}

	need := (bitCount + 3) / 4
	if len(hexDigits) < need {
		err := &PatternLengthError{BitCount: bitCount, Digits: len(hexDigits)}
		o.metrics.RecordCompile(bitCount, 0, err)
		o.logger.LogCompile(bitCount, err)
		return nil, err
	}

	nibbles := make([]byte, need)
	for i := 0; i < need; i++ {
		v, ok := decodeHexDigit(hexDigits[i])
		if !ok {
			err := &MalformedPatternError{Position: i, Char: hexDigits[i]}
			o.metrics.RecordCompile(bitCount, 0, err)
			o.logger.LogCompile(bitCount, err)
			return nil, err
		}
		nibbles[i] = v
	}

	return compile(nibbles, bitCount, o)
}

// CompileNibbles compiles a pattern from already-decoded nibble values, each
// in [0, 15], consumed left to right. It is the entry point for callers that
// decode pattern text themselves.
func CompileNibbles(nibbles []byte, bitCount int, opts ...Option) (*Pattern, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if bitCount < 0 {
		return nil, ErrNegativeBitCount
	}

	return compile(nibbles, bitCount, o)
}

func compile(nibbles []byte, bitCount int, o *options) (*Pattern, error) {
	start := time.Now()

	if need := (bitCount + 3) / 4; len(nibbles) < need {
		err := &PatternLengthError{BitCount: bitCount, Digits: len(nibbles)}
		o.metrics.RecordCompile(bitCount, 0, err)
		o.logger.LogCompile(bitCount, err)
		return nil, err
	}

	rk, err := rabinkarp.Compile(nibbles, bitCount)
	if err != nil {
		err = translateError(err)
		o.metrics.RecordCompile(bitCount, time.Since(start), err)
		o.logger.LogCompile(bitCount, err)
		return nil, err
	}

	o.metrics.RecordCompile(bitCount, time.Since(start), nil)
	o.logger.LogCompile(bitCount, nil)

	return &Pattern{rk: rk, opts: o}, nil
}

func decodeHexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}

func translateError(err error) error {
	var nerr *rabinkarp.InvalidNibbleError
	if errors.As(err, &nerr) {
		return &MalformedPatternError{Position: nerr.Index, cause: err}
	}
	return err
}

// BitLen returns the number of significant bits in the pattern.
func (p *Pattern) BitLen() int {
	return p.rk.BitLen()
}

// Find reports the bit offset of the first occurrence of the pattern in
// data and whether one was found. An empty pattern matches at offset 0; a
// pattern longer than data never matches. The scan is deterministic:
// repeated calls return the same verdict.
func (p *Pattern) Find(data []byte) (int, bool) {
	start := time.Now()

	off, found, st := p.rk.FindWithStats(data)

	duration := time.Since(start)
	p.opts.metrics.RecordScan(p.BitLen(), st.Windows, st.Collisions, duration, found)
	p.opts.logger.LogScan(context.Background(), p.BitLen(), st.Windows, st.Collisions, off, found, duration)

	return off, found
}

// Match reports whether the pattern occurs anywhere in data.
func (p *Pattern) Match(data []byte) bool {
	_, found := p.Find(data)
	return found
}

// FindReader materializes r into memory and searches it. The stream is read
// to EOF before scanning; use the input package to stack decompression or
// throttling on r first.
func (p *Pattern) FindReader(r io.Reader) (int, bool, error) {
	data, err := input.ReadAll(r)
	if err != nil {
		return 0, false, err
	}
	off, found := p.Find(data)
	return off, found, nil
}
