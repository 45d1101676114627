package storage

import (
	"context"
	"fmt"
	"time"

	"priyasi-storefront/internal/config"
	"priyasi-storefront/internal/db"
	"priyasi-storefront/internal/logger"

	"go.uber.org/zap"
)

// Open builds the backend selected by cfg.StorageBackend. The returned close
// func releases the underlying connection.
func Open(ctx context.Context, cfg *config.Config) (Backend, func() error, error) {
	log := logger.FromCtx(ctx).With(zap.String("backend", cfg.StorageBackend))
	noop := func() error { return nil }

	switch cfg.StorageBackend {
	case "", config.StorageMemory:
		log.Info("using in-memory shopper state")
		return NewMemoryBackend(), noop, nil

	case config.StoragePostgres:
		sqlDB, err := db.NewDatabase(cfg)
		if err != nil {
			return nil, noop, err
		}
		log.Info("using postgres shopper state")
		return NewPostgresBackend(sqlDB), sqlDB.Close, nil

	case config.StorageRedis:
		client, err := db.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		ttl := time.Duration(cfg.RedisTTLHours) * time.Hour
		log.Info("using redis shopper state", zap.Duration("ttl", ttl))
		return NewRedisBackend(client, ttl), client.Close, nil

	case config.StorageSQLite:
		gdb, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		backend, err := NewSQLiteBackend(gdb)
		if err != nil {
			return nil, noop, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, noop, err
		}
		log.Info("using sqlite shopper state", zap.String("path", cfg.SQLitePath))
		return backend, sqlDB.Close, nil
	}

	return nil, noop, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.StorageBackend)
}
