package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
)

// SecretHeader carries the pre-shared secret on submission requests.
const SecretHeader = "X-Secret"

// RequireSecret guards the submission endpoints:
// - secret configured => the header must match (constant-time compare).
// - empty secret => dev mode, everything passes.
func RequireSecret(secret string) func(http.Handler) http.Handler {
	secret = strings.TrimSpace(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			got := strings.TrimSpace(r.Header.Get(SecretHeader))
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
