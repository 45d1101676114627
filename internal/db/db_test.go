package db

import (
	"context"
	"errors"
	"testing"

	"priyasi-storefront/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "localhost",
		DBUser:     "priyasi",
		DBPassword: "secret",
		DBName:     "storefront",
		DBPort:     "5432",
	}

	assert.Equal(t,
		"host=localhost user=priyasi password=secret dbname=storefront port=5432 sslmode=disable",
		buildDSN(cfg),
	)
}

// mockConfig gives each test its own DSN so the sqlmock driver hands out the
// connection registered for it.
func mockConfig(t *testing.T) (*config.Config, sqlmock.Sqlmock) {
	t.Helper()
	cfg := &config.Config{DBHost: "mock", DBName: t.Name(), DBPort: "5432"}

	conn, mock, err := sqlmock.NewWithDSN(buildDSN(cfg), sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return cfg, mock
}

func TestNewDatabase(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cfg, mock := mockConfig(t)
		mock.ExpectPing()

		db, err := newDatabaseWithDriver(cfg, "sqlmock")

		require.NoError(t, err)
		assert.NotNil(t, db)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ping failure", func(t *testing.T) {
		cfg, mock := mockConfig(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		db, err := newDatabaseWithDriver(cfg, "sqlmock")

		assert.Nil(t, db)
		assert.ErrorContains(t, err, "failed to ping DB")
	})

	t.Run("Unknown driver", func(t *testing.T) {
		db, err := newDatabaseWithDriver(&config.Config{}, "no_such_driver")

		assert.Nil(t, db)
		assert.ErrorContains(t, err, "failed to connect to DB")
	})
}

func TestOpenSQLite_InMemory(t *testing.T) {
	gdb, err := OpenSQLite(":memory:")
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	defer sqlDB.Close()
	assert.NoError(t, sqlDB.Ping())
}

func TestNewRedis(t *testing.T) {
	t.Run("Invalid URL", func(t *testing.T) {
		client, err := NewRedis(context.Background(), "://not-a-url")

		assert.Nil(t, client)
		assert.ErrorContains(t, err, "invalid redis url")
	})

	t.Run("Unreachable server", func(t *testing.T) {
		client, err := NewRedis(context.Background(), "redis://127.0.0.1:1/0")

		assert.Nil(t, client)
		assert.ErrorContains(t, err, "failed to ping redis")
	})
}
