// Package requestid assigns each HTTP request an ID so log lines from one
// request can be correlated.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// Header is the HTTP header carrying the request ID in both directions.
const Header = "X-Request-ID"

// FromContext returns the request ID stored in ctx, or "" when the request
// did not pass through the middleware.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// Middleware propagates an incoming X-Request-ID or mints a UUID when the
// client sent none. The ID ends up on the response header and in the request
// context for the logging middleware and handlers.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}
