package middleware

import (
	"net/http"
	"strings"
)

// TokenVerifier reports whether an admin token is well-formed.
type TokenVerifier interface {
	Verify(token string) bool
}

// AdminAuth returns middleware that gates admin routes on a Bearer token
// passing the verifier's check.
func AdminAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeJSONError(w, http.StatusUnauthorized, "missing or invalid authorization header")
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if !verifier.Verify(token) {
				writeJSONError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
