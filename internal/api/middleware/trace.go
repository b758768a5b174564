// Package middleware provides HTTP middleware for the API: trace-ID
// injection and bearer-token authentication.
package middleware

import (
	"net/http"

	"github.com/madr-io/madr-api/internal/api/shared"
)

// TraceMiddleware adds a unique trace ID to each request's context so that
// logs and error responses for the same request can be correlated.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
