package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"priyasi-storefront/internal/config"
	"priyasi-storefront/internal/email"
	"priyasi-storefront/internal/shopper"
	"priyasi-storefront/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppPort:            "8080",
		AppEnv:             "test",
		StoreDomain:        "priyasi.myshopify.com",
		APIVersion:         "2025-07",
		CatalogLimit:       50,
		StorageBackend:     config.StorageMemory,
		EmailFrom:          "Priyasi <onboarding@resend.dev>",
		EmailAdmin:         "onboarding@resend.dev",
		ShopperTokenSecret: "secret",
		AllowedOrigin:      "*",
	}
}

func TestSetupRouter(t *testing.T) {
	gql := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("graphql"))
	})
	emailHandler := email.NewHandler(email.NewService(email.LogSender{}, "Priyasi <a@b.co>", "a@b.co"))

	router := setupRouter(gql, emailHandler)

	t.Run("Health Check", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/health", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var body struct {
			Status  string            `json:"status"`
			Metrics map[string]uint64 `json:"metrics"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "OK", body.Status)
		assert.Contains(t, body.Metrics, "degraded_slots")
	})

	t.Run("GraphQL Playground", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "GraphQL Playground")
	})

	t.Run("Query", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/query", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, "graphql", rr.Body.String())
	})

	t.Run("Email function", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/functions/send-newsletter-email", strings.NewReader(`{"email":"a@b.co"}`))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestNewServer(t *testing.T) {
	router, err := newServer(testConfig(), storage.NewMemoryBackend())
	require.NoError(t, err)

	t.Run("Health carries request id and shopper token", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/health", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		assert.NotEmpty(t, rr.Header().Get(shopper.HeaderName))
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Cart over GraphQL", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/query", strings.NewReader(`{"query":"{ cart { totalQuantity } }"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"data":{"cart":{"totalQuantity":0}}}`, rr.Body.String())
	})

	t.Run("Production requires a token secret", func(t *testing.T) {
		cfg := testConfig()
		cfg.AppEnv = "production"
		cfg.ShopperTokenSecret = ""

		_, err := newServer(cfg, storage.NewMemoryBackend())
		assert.ErrorIs(t, err, shopper.ErrMissingSecret)
	})
}

func TestRun(t *testing.T) {
	origInit := initBackendFunc
	defer func() { initBackendFunc = origInit }()
	initBackendFunc = func(ctx context.Context, cfg *config.Config) (storage.Backend, func() error, error) {
		return storage.NewMemoryBackend(), func() error { return nil }, nil
	}

	origStartServer := startServerFunc
	defer func() { startServerFunc = origStartServer }()
	var addr string
	startServerFunc = func(a string, handler http.Handler) error {
		addr = a
		return nil
	}

	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "test")
	t.Setenv("SHOPIFY_STORE_DOMAIN", "priyasi.myshopify.com")
	t.Setenv("STORAGE_BACKEND", "memory")

	assert.NoError(t, run())
	assert.Equal(t, ":9090", addr)
}

func TestRun_StorageFailure(t *testing.T) {
	origInit := initBackendFunc
	defer func() { initBackendFunc = origInit }()
	initBackendFunc = func(ctx context.Context, cfg *config.Config) (storage.Backend, func() error, error) {
		return nil, func() error { return nil }, errors.New("redis down")
	}

	t.Setenv("APP_ENV", "test")
	t.Setenv("SHOPIFY_STORE_DOMAIN", "priyasi.myshopify.com")

	assert.ErrorContains(t, run(), "redis down")
}
