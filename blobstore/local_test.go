package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	tmpDir := t.TempDir()
	ctx := context.Background()

	data := []byte{0xAF, 0x10, 0xA8}
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "trace.bin"), data, 0o644))

	store := NewLocalStore(tmpDir)

	blob, err := store.Open(ctx, "trace.bin")
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	// Zero-copy path
	m, ok := blob.(Mappable)
	require.True(t, ok)
	got, err := m.Bytes()
	require.NoError(t, err)
	require.Equal(t, data, got)

	// Streaming path
	r, err := blob.Reader(ctx)
	require.NoError(t, err)
	defer r.Close()
	streamed, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, data, streamed)
}

func TestLocalStoreMissing(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	_, err := store.Open(context.Background(), "nope.bin")
	require.ErrorIs(t, err, ErrNotFound)
}
