package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/madr-io/madr-api/internal/api/shared"
	"github.com/madr-io/madr-api/internal/platform/logger"
	"github.com/madr-io/madr-api/internal/service/auth"
	"github.com/madr-io/madr-api/internal/store"
)

// AuthMiddleware validates bearer tokens and resolves the authenticated
// account. Every failure mode collapses to the same 401 response so the
// API never leaks whether a token was malformed, expired, or referencing
// a deleted account.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates an AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate validates the Authorization header, loads the account named
// by the token subject, and stores it in the request context under
// shared.CurrentUserContextKey.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		tokenString, ok := extractBearerToken(r)
		if !ok {
			shared.RespondUnauthorized(w, r)
			return
		}

		claims, err := m.jwtService.ValidateToken(ctx, tokenString)
		if err != nil {
			log.Debug("token validation failed", "error", err)
			shared.RespondUnauthorized(w, r)
			return
		}

		user, err := m.userStore.GetByEmail(ctx, claims.Email)
		if err != nil {
			if !store.IsNotFoundError(err) {
				log.Error("failed to load account for token subject", "error", err)
			}
			shared.RespondUnauthorized(w, r)
			return
		}

		ctx = context.WithValue(ctx, shared.CurrentUserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractBearerToken pulls the token out of the Authorization header.
// The "Bearer" scheme is matched case-insensitively.
func extractBearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
