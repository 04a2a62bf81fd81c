package middlewarex

import (
	"context"
	"net/http"
	"time"
)

// Timeout only puts a deadline on the request context. The handler turns
// context.DeadlineExceeded into a response itself, so nothing is written here.
func Timeout(timeout time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
