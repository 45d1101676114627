package main

import (
	"context"
	"fmt"
	"net/http"

	"priyasi-storefront/internal/catalog"
	"priyasi-storefront/internal/config"
	"priyasi-storefront/internal/email"
	"priyasi-storefront/internal/graph"
	"priyasi-storefront/internal/logger"
	"priyasi-storefront/internal/metrics"
	"priyasi-storefront/internal/middleware"
	"priyasi-storefront/internal/session"
	"priyasi-storefront/internal/shopper"
	"priyasi-storefront/internal/storage"
	"priyasi-storefront/internal/utils"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	initBackendFunc = storage.Open
	startServerFunc = http.ListenAndServe
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	ctx := context.Background()
	backend, closeBackend, err := initBackendFunc(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer closeBackend()

	router, err := newServer(cfg, backend)
	if err != nil {
		return err
	}

	logger.L().Info("GraphQL server running",
		zap.String("url", "http://localhost:"+cfg.AppPort+"/"),
		zap.String("storage", cfg.StorageBackend),
	)
	return startServerFunc(":"+cfg.AppPort, router)
}

// newServer wires the catalog, shopper state and email services behind the
// middleware chain.
func newServer(cfg *config.Config, backend storage.Backend) (http.Handler, error) {
	gateway := catalog.NewStorefrontClient(cfg.StoreDomain, cfg.APIVersion, cfg.StorefrontToken)

	schema, err := graph.NewSchema(&graph.Resolver{
		Catalog:      catalog.NewService(gateway),
		Sessions:     session.NewFactory(backend),
		DefaultLimit: cfg.CatalogLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	var sender email.Sender = email.LogSender{}
	if cfg.ResendAPIKey != "" {
		if sender, err = email.NewResendClient(cfg.ResendAPIKey); err != nil {
			return nil, err
		}
	}
	emailHandler := email.NewHandler(email.NewService(sender, cfg.EmailFrom, cfg.EmailAdmin))

	secret := cfg.ShopperTokenSecret
	if secret == "" {
		if cfg.AppEnv == "production" {
			return nil, shopper.ErrMissingSecret
		}
		logger.L().Warn("SHOPPER_TOKEN_SECRET not set, shopper tokens will not survive a restart")
		secret = uuid.NewString()
	}
	tokens, err := shopper.NewTokens(secret)
	if err != nil {
		return nil, err
	}

	router := setupRouter(graph.Handler(schema), emailHandler)

	var h http.Handler = router
	h = middleware.RateLimit(cfg.InternalSecretKey)(h)
	h = shopper.Middleware(tokens, cfg.AppEnv == "production")(h)
	h = middleware.CORS(cfg.AllowedOrigin)(h)
	h = logger.LoggingMiddleware(h)
	h = logger.RequestIDMiddleware(h)
	return h, nil
}

func setupRouter(gqlHandler http.Handler, emailHandler *email.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]any{
			"status":  "OK",
			"metrics": metrics.Snapshot(),
		})
	})
	mux.Handle("/", playground.Handler("GraphQL Playground", "/query"))
	mux.Handle("/query", gqlHandler)
	emailHandler.Register(mux)

	return mux
}
