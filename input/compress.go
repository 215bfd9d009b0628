package input

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the framing of a haystack stream.
type Compression uint8

const (
	// CompressionNone indicates a raw byte stream.
	CompressionNone Compression = iota
	// CompressionZSTD indicates a zstd-framed stream.
	CompressionZSTD
	// CompressionLZ4 indicates an lz4-framed stream.
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionZSTD:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return "none"
	}
}

// Frame magic numbers, as they appear on the wire.
var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
)

// Detect sniffs the compression framing from the first bytes of a stream.
// Streams shorter than a magic number are reported as uncompressed.
func Detect(head []byte) Compression {
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		return CompressionZSTD
	case bytes.HasPrefix(head, lz4Magic):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// NewReader wraps r with the decoder for the given compression. The returned
// ReadCloser must be closed to release decoder resources; for uncompressed
// streams Close is a no-op and does not close r.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("input: zstd reader: %w", err)
		}
		return dec.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case CompressionNone:
		return io.NopCloser(r), nil
	default:
		return nil, fmt.Errorf("input: unknown compression %d", c)
	}
}

// NewAutoReader sniffs the framing of r and stacks the matching decoder.
// It reports which compression was detected.
func NewAutoReader(r io.Reader) (io.ReadCloser, Compression, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF {
		return nil, CompressionNone, err
	}

	c := Detect(head)
	rc, err := NewReader(br, c)
	if err != nil {
		return nil, c, err
	}
	return rc, c, nil
}
