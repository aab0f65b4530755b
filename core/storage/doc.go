// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface covering the
// operations treeboard actually performs: verifying buckets at startup,
// listing the asset inventory for the storage provider, and reading/writing
// the serialized tree cache object in development mode. The abstraction
// supports both AWS S3 and self-hosted MinIO instances and keeps storage
// interactions mockable for unit tests (see core/storage/mocks).
//
// # Timeouts
//
// All hard timeouts live in this layer's HTTP transport. Callers above it
// cancel cooperatively via context; the transport guarantees a stuck
// endpoint cannot hold a connection open indefinitely.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "assets")
package storage
