package http

import (
	"context"
	"net/http"
	"strings"

	"fleetrental-backend/internal/security"
)

type contextKey string

const userIDKey contextKey = "user_id"

// authPassthrough lists the endpoints reachable without a token.
var authPassthrough = map[string]bool{
	"/api/auth/login":   true,
	"/api/auth/refresh": true,
}

// authenticate requires a valid bearer access token on every /api route
// except the auth endpoints themselves.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if authPassthrough[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		if header == "" {
			respondError(w, http.StatusUnauthorized, "missing authorization header")
			return
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			respondError(w, http.StatusUnauthorized, "authorization header must be a bearer token")
			return
		}

		claims, err := s.tokens.ValidateToken(token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		if claims.Type != security.TokenTypeAccess {
			respondError(w, http.StatusUnauthorized, "access token required")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
