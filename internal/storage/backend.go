package storage

import "context"

// Backend stores opaque blobs under string keys.
type Backend interface {
	// Read returns ErrNotFound when nothing is stored under key.
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, blob []byte) error
	Delete(ctx context.Context, key string) error
}
