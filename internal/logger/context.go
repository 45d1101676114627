package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	shopperIDKey ctxKey = "shopper_id"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// WithShopperID tags the context so every log line of the request carries the shopper.
func WithShopperID(ctx context.Context, shopperID string) context.Context {
	return context.WithValue(ctx, shopperIDKey, shopperID)
}

func ShopperIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(shopperIDKey).(string); ok {
		return v
	}
	return ""
}

// FromCtx returns the global logger enriched with request_id and shopper_id when present.
func FromCtx(ctx context.Context) *zap.Logger {
	l := L()
	if reqID := RequestIDFrom(ctx); reqID != "" {
		l = l.With(zap.String("request_id", reqID))
	}
	if shopperID := ShopperIDFrom(ctx); shopperID != "" {
		l = l.With(zap.String("shopper_id", shopperID))
	}
	return l
}
