package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/anonboard-dev/anonboard/internal/domain"
	"github.com/anonboard-dev/anonboard/internal/jwt"
	"github.com/anonboard-dev/anonboard/internal/utils"
)

// Key to store the user claims in the request context
type key int

const userClaimsKey key = 0

// RequireAuth rejects requests without a valid bearer credential.
func RequireAuth(jwtService jwt.JwtService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := bearerToken(r)
			if !ok {
				http.Error(w, "Please sign in", http.StatusUnauthorized)
				return
			}

			user, err := jwtService.DecodeToken(tokenStr)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), &user)))
		})
	}
}

// OptionalAuth attaches the user when a valid bearer credential is present
// and lets the request through unauthenticated otherwise. Thread and reply
// creation use it for the authorName fallback only.
func OptionalAuth(jwtService jwt.JwtService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tokenStr, ok := bearerToken(r); ok {
				if user, err := jwtService.DecodeToken(tokenStr); err == nil {
					r = r.WithContext(withUser(r.Context(), &user))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func withUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userClaimsKey, user)
}

// GetUserFromContext returns nil when the request is unauthenticated.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
