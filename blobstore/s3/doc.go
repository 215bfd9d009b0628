// Package s3 implements blobstore.BlobStore for Amazon S3.
//
// Haystacks are fetched whole: Fetch uses the AWS transfer manager for
// parallel ranged downloads, which is significantly faster than a single
// GetObject stream for large objects.
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(s3.NewFromConfig(cfg), "my-bucket", "dumps/")
package s3
