// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const emailKey ctxKey = "email"

// TokenValidator resolves a bearer token to the email it was issued for.
type TokenValidator interface {
	EmailForToken(token string) (string, bool)
}

// BearerAuth is a middleware that enforces bearer-token authentication.
//
// It expects an "Authorization: Bearer <token>" header and validates the
// token against the provided TokenValidator. On success the resolved
// email is stored in the request context for downstream handlers. On
// failure it responds 401 with the API's JSON error shape.
func BearerAuth(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				unauthorized(w)
				return
			}
			email, ok := tokens.EmailForToken(token)
			if !ok {
				unauthorized(w)
				return
			}
			ctx := context.WithValue(r.Context(), emailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"success":false,"message":"unauthorized"}`))
}

// EmailFromContext extracts the authenticated user's email from the
// request context. Returns an empty string if not found.
func EmailFromContext(ctx context.Context) string {
	val := ctx.Value(emailKey)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
