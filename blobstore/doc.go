// Package blobstore provides read-only access to haystack sources.
//
// A BlobStore hands out named, immutable blobs; the scanner materializes a
// blob into a contiguous byte buffer and searches it. Implementations must be
// safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, zero-copy via mmap
//   - MemoryStore: in-memory, for tests and embedding
//   - s3.Store: Amazon S3, whole-object fetch via the transfer manager
//   - minio.Store: MinIO and other S3-compatible object stores
//
// # Custom Implementations
//
// Implement the BlobStore interface to supply haystacks from any backend:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	}
//
// Blobs that can expose their contents without copying should additionally
// implement Mappable; ReadAll prefers it over streaming.
package blobstore
