package storage

import "errors"

var (
	ErrNotFound       = errors.New("key not found")
	ErrEmptyKey       = errors.New("storage key is empty")
	ErrUnknownBackend = errors.New("unknown storage backend")
)
