// Package storage provides the bucket source for the served root.
//
// It wraps the MinIO Go client behind a small read-only Client interface and
// adapts a bucket (plus an optional key prefix) into an http.FileSystem, so the
// static file middleware can serve a site straight out of AWS S3 or MinIO.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Layout
//
// Objects map to files by key. A key prefix ending in "/" is a directory, whether
// or not a folder marker object exists for it. Directory listings are built from
// non-recursive ListObjects calls.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.VerifyBucket(ctx, client, cfg.Storage.Bucket); err != nil {
//	    return err
//	}
//	fsys := storage.NewFileSystem(client, cfg.Storage.Bucket, cfg.Storage.Prefix, cfg.Storage.Timeout())
package storage
