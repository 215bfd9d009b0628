package bitmatch

import (
	"context"
	"fmt"

	"github.com/popov-nikita/bitmatch/blobstore"
	"golang.org/x/sync/errgroup"
)

// StoreResult is the verdict for one named haystack scanned by FindInStore.
type StoreResult struct {
	// Name is the blob name the verdict belongs to.
	Name string
	// Offset is the bit offset of the first match; meaningful only when
	// Found is true.
	Offset int
	// Found reports whether the pattern occurs in the blob.
	Found bool
}

// FindInStore scans the named blobs of a store and returns one verdict per
// name, in input order. Blobs are materialized and scanned concurrently,
// bounded by the pattern's parallelism option; sources are independent, so
// one scan never affects another.
//
// The first open or read failure cancels the remaining work and is returned.
func (p *Pattern) FindInStore(ctx context.Context, store blobstore.BlobStore, names []string) ([]StoreResult, error) {
	results := make([]StoreResult, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.parallelism)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			blob, err := store.Open(ctx, name)
			if err != nil {
				return fmt.Errorf("open %q: %w", name, err)
			}
			defer blob.Close()

			data, err := blobstore.ReadAll(ctx, blob)
			if err != nil {
				return fmt.Errorf("read %q: %w", name, err)
			}

			off, found := p.Find(data)
			if found {
				p.opts.logger.WithSource(name).Debug("pattern found", "offset", off)
			}

			results[i] = StoreResult{Name: name, Offset: off, Found: found}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
