package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type TokenVerifier interface {
	Verify(token string) (uint, error)
}

type contextKey struct{}

var userIDKey = contextKey{}

// UserIDFromContext returns the authenticated user id attached by
// RequireAuth. The second return is false for requests that never went
// through the middleware.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(userIDKey).(uint)
	return userID, ok
}

// RequireAuth rejects requests without a valid bearer token before any
// handler runs, and attaches the verified user id to the request context.
func RequireAuth(verifier TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				writeUnauthorized(w, "missing token")
				return
			}

			parts := strings.SplitN(raw, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeUnauthorized(w, "invalid token")
				return
			}

			userID, err := verifier.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				logger.Warn("token verification failed", zap.Error(err))
				writeUnauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   "UNAUTHORIZED",
		"message": message,
	})
}
