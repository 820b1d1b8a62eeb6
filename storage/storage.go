package storage

import (
	"context"
	"errors"
	"io"

	cmap "github.com/orcaman/concurrent-map/v2"

	"server/config"
)

// BlobStore is key-addressed binary object storage. Delete of a key that does
// not exist is not guaranteed to fail.
type BlobStore interface {
	Save(ctx context.Context, key, contentType string, body io.Reader) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

var cached = cmap.New[BlobStore]()

// Get returns the blob store for a bucket, creating and caching the client on
// first use. Cached clients are reused across requests on a warm process.
func Get(bucket string) (BlobStore, error) {
	if bucket == "" {
		return nil, errors.New("storage: no bucket configured")
	}
	if s, ok := cached.Get(bucket); ok {
		return s, nil
	}
	s, err := NewS3Storage(bucket)
	if err != nil {
		return nil, err
	}
	cached.SetIfAbsent(bucket, s)
	// Another goroutine may have won the race; use whatever is cached.
	stored, _ := cached.Get(bucket)
	return stored, nil
}

// Default returns the blob store for the configured gallery bucket.
func Default() (BlobStore, error) {
	return Get(config.S3_BUCKET)
}
