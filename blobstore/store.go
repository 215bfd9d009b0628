package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for accessing immutable haystack blobs.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
	// Reader returns a new reader over the whole blob.
	Reader(ctx context.Context) (io.ReadCloser, error)
}

// Mappable is an optional interface for Blobs that support zero-copy access.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	Bytes() ([]byte, error)
}

// Fetcher is an optional interface for Blobs that can materialize their
// contents more efficiently than a sequential read (e.g. parallel ranged
// downloads from object storage).
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// ReadAll materializes the whole blob into memory. Mappable blobs are
// returned zero-copy; Fetcher blobs use their own fetch path; everything
// else is read sequentially into a buffer sized from Size().
func ReadAll(ctx context.Context, b Blob) ([]byte, error) {
	if m, ok := b.(Mappable); ok {
		return m.Bytes()
	}
	if f, ok := b.(Fetcher); ok {
		return f.Fetch(ctx)
	}

	r, err := b.Reader(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	buf := make([]byte, 0, b.Size())
	for {
		if len(buf) == cap(buf) {
			buf = append(buf, 0)[:len(buf)]
		}
		n, err := r.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]
		if err == io.EOF {
			return buf, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
