// Package storage abstracts blob storage for product images and videos.
// The rest of the application only ever sees opaque URL strings.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/samsaracrafts/storefront/internal"
)

// Storage defines the interface for file storage operations.
// Implementations can use the local filesystem or any S3-compatible backend.
type Storage interface {
	// Put stores a file and returns its URL for retrieval.
	// The key should be a unique identifier (e.g., "products/uuid/image.jpg").
	Put(ctx context.Context, key string, content io.Reader, contentType string) (string, error)

	// Get retrieves a file by its key.
	// Returns an io.ReadCloser that must be closed by the caller.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a file by its key.
	// Returns nil if the file doesn't exist (idempotent).
	Delete(ctx context.Context, key string) error

	// URL returns the public URL for accessing a stored file.
	// For local storage, this might be a relative path.
	// For S3, this would be the full HTTPS URL.
	URL(key string) string

	// Exists checks if a file exists at the given key.
	Exists(ctx context.Context, key string) (bool, error)
}

// New builds the Storage implementation named by the configuration.
func New(cfg internal.StorageConfig) (Storage, error) {
	switch cfg.Provider {
	case "local", "":
		return NewLocalStorage(cfg.LocalPath, cfg.LocalURL)
	case "s3":
		return NewS3Storage(S3Config{
			Endpoint:    cfg.S3Endpoint,
			Region:      cfg.S3Region,
			AccessKeyID: cfg.S3AccessKey,
			SecretKey:   cfg.S3SecretKey,
			BucketName:  cfg.S3Bucket,
			PublicURL:   cfg.S3PublicURL,
		})
	default:
		return nil, fmt.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}
