package storage

import (
	"context"
	"errors"
	"io"
)

var ErrObjectNotFound = errors.New("object not found")

// ObjectStore is the blob backend holding uploaded PDF bytes.
type ObjectStore interface {
	Upload(ctx context.Context, path string, contentType string, r io.Reader) error
	Download(ctx context.Context, path string) ([]byte, error)
	Remove(ctx context.Context, path string) error
}
