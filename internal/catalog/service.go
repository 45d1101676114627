package catalog

import (
	"context"
	"strings"

	"priyasi-storefront/internal/logger"
	"priyasi-storefront/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// handleFetchConcurrency bounds parallel product-by-handle lookups.
const handleFetchConcurrency = 4

// Service applies the storefront's fallback rules on top of a Gateway:
// upstream failures are logged and turned into "no products", never surfaced.
type Service struct {
	gateway Gateway
}

func NewService(gateway Gateway) *Service {
	return &Service{gateway: gateway}
}

// ListProducts fetches up to limit products, or an empty list if the gateway fails.
func (s *Service) ListProducts(ctx context.Context, limit int) []Product {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListProducts"),
	)

	timer := metrics.StartTimer()
	products, err := s.gateway.FetchProducts(ctx, limit)
	if err != nil {
		metrics.GatewayFailures.Inc()
		log.Error("failed to fetch products, showing empty catalog",
			zap.Error(err),
			zap.Duration("duration", timer.Duration()),
		)
		return []Product{}
	}
	if products == nil {
		products = []Product{}
	}

	log.Info("fetched products",
		zap.Int("count", len(products)),
		zap.Int("limit", limit),
		zap.Duration("duration", timer.Duration()),
	)
	return products
}

// ProductByHandle returns nil when the handle is blank, the product is missing or
// the gateway fails.
func (s *Service) ProductByHandle(ctx context.Context, handle string) *Product {
	if strings.TrimSpace(handle) == "" {
		return nil
	}

	p, err := s.gateway.FetchProductByHandle(ctx, handle)
	if err != nil {
		metrics.GatewayFailures.Inc()
		logger.FromCtx(ctx).Error("failed to fetch product",
			zap.String("handle", handle),
			zap.Error(err),
		)
		return nil
	}
	return p
}

// ProductsByHandles looks every handle up concurrently and returns the products found,
// in the order of handles. Missing and failed lookups are dropped.
func (s *Service) ProductsByHandles(ctx context.Context, handles []string) []Product {
	found := make([]*Product, len(handles))

	var g errgroup.Group
	g.SetLimit(handleFetchConcurrency)
	for i, h := range handles {
		g.Go(func() error {
			found[i] = s.ProductByHandle(ctx, h)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]Product, 0, len(handles))
	for _, p := range found {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// Search returns the products whose title or description contains query, case-insensitively.
func (s *Service) Search(ctx context.Context, query string, limit int) []Product {
	if strings.TrimSpace(query) == "" {
		return []Product{}
	}

	return Match(s.ListProducts(ctx, limit), query)
}

// Match keeps the products whose title or description contains query, ignoring case.
// A blank query matches nothing.
func Match(products []Product, query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Product, 0)
	if q == "" {
		return out
	}

	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}
