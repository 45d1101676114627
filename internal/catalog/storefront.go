package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"priyasi-storefront/internal/logger"

	"go.uber.org/zap"
)

const (
	maxPageSize     = 250
	tokenHeader     = "X-Shopify-Storefront-Access-Token"
	maxResponseBody = 4 << 20
)

// StorefrontClient talks to the Shopify Storefront GraphQL API.
type StorefrontClient struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// NewStorefrontClient builds a client for https://{domain}/api/{version}/graphql.json.
func NewStorefrontClient(domain, version, token string) *StorefrontClient {
	if token == "" {
		logger.L().Warn("storefront access token is empty")
	}

	domain = strings.TrimSuffix(strings.TrimPrefix(domain, "https://"), "/")

	return &StorefrontClient{
		endpoint: fmt.Sprintf("https://%s/api/%s/graphql.json", domain, version),
		token:    token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *StorefrontClient) FetchProducts(ctx context.Context, limit int) ([]Product, error) {
	if limit <= 0 {
		limit = 50
	} else if limit > maxPageSize {
		limit = maxPageSize
	}

	var resp graphQLResponse[productsData]
	if err := c.do(ctx, productsQuery, map[string]any{"first": limit}, &resp); err != nil {
		return nil, err
	}

	return mapProducts(resp.Data), nil
}

func (c *StorefrontClient) FetchProductByHandle(ctx context.Context, handle string) (*Product, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, ErrInvalidHandle
	}

	var resp graphQLResponse[productData]
	if err := c.do(ctx, productByHandleQuery, map[string]any{"handle": handle}, &resp); err != nil {
		return nil, err
	}

	if resp.Data.Product == nil {
		return nil, nil
	}
	p := mapProduct(*resp.Data.Product)
	return &p, nil
}

// do posts one GraphQL operation and decodes the envelope into out.
func (c *StorefrontClient) do(ctx context.Context, query string, vars map[string]any, out interface{ firstError() string }) error {
	log := logger.FromCtx(ctx).With(zap.String("layer", "catalog"), zap.String("endpoint", c.endpoint))

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("marshal storefront request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create storefront request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tokenHeader, c.token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("storefront request failed", zap.Error(err))
		return fmt.Errorf("storefront request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("read storefront response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error("storefront returned non-2xx",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw),
		)
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	if msg := out.firstError(); msg != "" {
		log.Warn("storefront graphql error", zap.String("message", msg))
		return fmt.Errorf("%w: %s", ErrGraphQL, msg)
	}

	log.Debug("storefront request ok", zap.Duration("duration", time.Since(start)))
	return nil
}

func (r *graphQLResponse[T]) firstError() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}
