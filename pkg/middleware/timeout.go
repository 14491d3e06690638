package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout bounds every request with a deadline. Storage calls that block
// on lock contention hit the deadline and surface as 503 instead of
// hanging the worker; the transaction rollback is left to the store.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
