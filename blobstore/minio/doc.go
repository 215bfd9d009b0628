// Package minio implements blobstore.BlobStore for MinIO and other
// S3-compatible object stores using the native MinIO client.
//
//	client, _ := minio.New(endpoint, &minio.Options{
//	    Creds: credentials.NewStaticV4(accessKey, secretKey, ""),
//	})
//	store := miniostore.NewStore(client, "haystacks", "dumps/")
package minio
