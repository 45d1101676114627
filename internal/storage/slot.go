package storage

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"priyasi-storefront/internal/logger"
	"priyasi-storefront/internal/metrics"

	"go.uber.org/zap"
)

// Slot reads and writes one JSON value under a single key.
//
// After the first backend read or write failure the slot is degraded: it stops
// touching the backend and the owning store carries on in memory for the rest
// of its lifetime. Load then returns the zero value and Save is a no-op.
//
// A blob that does not decode is not a backend failure. Load starts from the
// zero value and the next Save overwrites the bad blob.
type Slot[T any] struct {
	backend Backend
	key     string

	mu       sync.Mutex
	degraded bool
}

func NewSlot[T any](backend Backend, key string) *Slot[T] {
	return &Slot[T]{backend: backend, key: key}
}

func (s *Slot[T]) Key() string { return s.key }

// Degraded reports whether the slot has fallen back to memory-only mode.
func (s *Slot[T]) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// Load returns the stored value, or the zero value when the key is missing or
// unreadable.
func (s *Slot[T]) Load(ctx context.Context) T {
	var v T
	if s.Degraded() {
		return v
	}

	blob, err := s.backend.Read(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.degrade(ctx, "read", err)
		}
		return v
	}

	if err := json.Unmarshal(blob, &v); err != nil {
		metrics.StorageFailures.Inc()
		logger.FromCtx(ctx).Warn("discarding unreadable persisted state",
			zap.String("layer", "storage"),
			zap.String("key", s.key),
			zap.String("op", "decode"),
			zap.Error(err),
		)
		var zero T
		return zero
	}
	return v
}

// Save writes v. Failures degrade the slot and are otherwise swallowed.
func (s *Slot[T]) Save(ctx context.Context, v T) {
	if s.Degraded() {
		return
	}

	blob, err := json.Marshal(v)
	if err != nil {
		s.degrade(ctx, "encode", err)
		return
	}
	if err := s.backend.Write(ctx, s.key, blob); err != nil {
		s.degrade(ctx, "write", err)
	}
}

func (s *Slot[T]) degrade(ctx context.Context, op string, err error) {
	s.mu.Lock()
	already := s.degraded
	s.degraded = true
	s.mu.Unlock()

	metrics.StorageFailures.Inc()
	if !already {
		metrics.DegradedSlots.Inc()
	}

	logger.FromCtx(ctx).Warn("persisted state unavailable, continuing in memory",
		zap.String("layer", "storage"),
		zap.String("key", s.key),
		zap.String("op", op),
		zap.Error(err),
	)
}
