package shopper

import (
	"net/http"
	"strings"
)

const CookieName = "shopper_token"

// ExtractToken reads the shopper token from the cookie, falling back to a
// bearer Authorization header.
func ExtractToken(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil {
		if cookie.Value != "" {
			return cookie.Value
		}
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}
