package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const REQUEST_ID_HEADER = "X-Request-Id"

type requestIDKey struct{}

// RequestIDMiddleware tags every request with an id, reusing an incoming
// X-Request-Id when the caller sends one.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(REQUEST_ID_HEADER)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(REQUEST_ID_HEADER, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

// RequestID returns the id stored by RequestIDMiddleware, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
