package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"priyasi-storefront/internal/logger"
	"priyasi-storefront/internal/shopper"
	"priyasi-storefront/internal/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Rate Limit Tiers
const (
	// Email functions (Strict)
	limitStrict = rate.Limit(2)
	burstStrict = 5

	// Storefront API (Default)
	limitGeneral = rate.Limit(10)
	burstGeneral = 20

	// Internal / trusted services
	limitInternal = rate.Limit(100)
	burstInternal = 200
)

const visitorTTL = 3 * time.Minute

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*visitor)
	mu       sync.Mutex
)

func init() {
	go cleanupVisitors()
}

// getVisitor retrieves or creates the limiter for key.
func getVisitor(key string, r rate.Limit, b int) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r, b)
		visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors removes idle entries from the visitors map.
func cleanupVisitors() {
	for {
		time.Sleep(time.Minute)
		evictIdle(time.Now())
	}
}

func evictIdle(now time.Time) {
	mu.Lock()
	defer mu.Unlock()
	for key, v := range visitors {
		if now.Sub(v.lastSeen) > visitorTTL {
			delete(visitors, key)
		}
	}
}

// RateLimit limits requests per identity and tier. Requests carrying
// internalKey in X-Service-Auth get the internal tier and are marked internal
// on the context.
func RateLimit(internalKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limit, burst, tier := resolveRateTier(r, internalKey)
			if tier == "internal" {
				r = r.WithContext(utils.WithInternalRequest(r.Context()))
			}

			// Separate buckets per tier, e.g. "shopper:<id>:general".
			key := identity(r, tier) + ":" + tier

			if !getVisitor(key, limit, burst).Allow() {
				logger.FromCtx(r.Context()).Warn("rate limited",
					zap.String("key", key),
					zap.String("path", r.URL.Path),
				)
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// identity prefers a shopper id that came from a valid token, then a client
// supplied device id, then the IP. Shopper and device ids cost the caller nothing
// to rotate, so the strict tier always keys on the IP.
func identity(r *http.Request, tier string) string {
	if tier != "strict" {
		if id := shopper.IDFrom(r.Context()); id != "" && !shopper.Issued(r.Context()) {
			return "shopper:" + id
		}
		if deviceID := r.Header.Get("X-Device-ID"); deviceID != "" {
			return "device:" + deviceID
		}
	}
	return "ip:" + clientIP(r)
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// resolveRateTier determines which rate limit policy applies to the request.
func resolveRateTier(r *http.Request, internalKey string) (rate.Limit, int, string) {
	if internalKey != "" && r.Header.Get("X-Service-Auth") == internalKey {
		return limitInternal, burstInternal, "internal"
	}

	// Outbound email is the expensive path.
	if strings.HasPrefix(r.URL.Path, "/functions/") {
		return limitStrict, burstStrict, "strict"
	}

	return limitGeneral, burstGeneral, "general"
}
