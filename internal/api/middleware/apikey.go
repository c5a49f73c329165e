package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/itsdelka001/steam-investment-backend/internal/api/response"
)

// APIKeyMiddleware protects mutating settings routes with a shared key.
// The expected key is read from INTERNAL_API_KEY on every request so tests
// and operators can rotate it without restarting. Requests must send it in
// the X-API-Key header.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := os.Getenv("INTERNAL_API_KEY")
		if expected == "" {
			response.RespondError(w, http.StatusServiceUnavailable, "API key not configured", "")
			return
		}

		provided := r.Header.Get("X-API-Key")
		if provided == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}
