// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a narrow interface for the operations
// the derivative pipeline needs: reading originals, probing for derivatives,
// writing derivatives and listing a prefix. This abstraction supports both AWS S3
// and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easy
// to mock storage interactions for unit testing (see core/storage/mocks) or to run
// against an in-memory bucket (see core/storage/memstore).
//
// # Helpers
//
//   - ReadObject: download with a size limit, returning the declared content type.
//   - Exists: HEAD probe that maps "not found" to false.
//   - PutBytes: upload with Content-Type and Cache-Control.
//   - Shared: lazily built process-wide client, safe for concurrent first use.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	ok, err := storage.Exists(ctx, client, "photos", "owners/1/plant/2/thumb-64/x.webp")
package storage
