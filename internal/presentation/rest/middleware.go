package rest

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/leaselab/screening-service/pkg/auth"
)

// AuthMiddleware validates the Bearer token on every /api request and
// attaches the claims to the request context. Health probes and metrics
// stay unauthenticated.
func AuthMiddleware(jwtService *auth.JWTService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, "/api/") {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing authorization header"})
				return
			}
			token := strings.TrimPrefix(header, "Bearer ")

			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				logger.Warn("token rejected", "path", r.URL.Path, "error", err)
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.ContextWithClaims(r.Context(), claims)))
		})
	}
}
