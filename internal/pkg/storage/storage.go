// Package storage abstracts blob storage for uploaded documents.
package storage

import (
	"context"
	"io"
)

// Storage persists file blobs under storage-relative paths. Paths are
// chosen by the caller; implementations must not interpret them beyond
// treating "/" as a separator.
type Storage interface {
	Save(ctx context.Context, path string, content io.Reader) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}
