package shopper

import (
	"context"
	"net/http"

	"priyasi-storefront/internal/logger"

	"go.uber.org/zap"
)

// HeaderName carries a freshly issued token back to non-browser clients.
const HeaderName = "X-Shopper-Token"

func WithID(ctx context.Context, shopperID string) context.Context {
	return logger.WithShopperID(ctx, shopperID)
}

type ctxKey string

const issuedKey ctxKey = "shopper_issued"

// Issued reports whether the request's shopper id was minted by this request
// rather than carried in by a valid token. Such ids prove nothing about the caller.
func Issued(ctx context.Context) bool {
	v, _ := ctx.Value(issuedKey).(bool)
	return v
}

// IDFrom returns the shopper id bound to the request, or "".
func IDFrom(ctx context.Context) string {
	return logger.ShopperIDFrom(ctx)
}

// Middleware binds every request to a shopper id. A missing or invalid token is
// replaced with a newly issued one, sent back as a cookie and a header.
func Middleware(tokens *Tokens, secureCookie bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if raw := ExtractToken(r); raw != "" {
				id, err := tokens.Parse(raw)
				if err == nil {
					next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
					return
				}
				logger.FromCtx(r.Context()).Debug("discarding shopper token", zap.Error(err))
			}

			token, id, err := tokens.Issue()
			if err != nil {
				logger.FromCtx(r.Context()).Error("failed to issue shopper token", zap.Error(err))
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(TokenTTL.Seconds()),
				HttpOnly: true,
				Secure:   secureCookie,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(HeaderName, token)

			ctx := context.WithValue(WithID(r.Context(), id), issuedKey, true)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
