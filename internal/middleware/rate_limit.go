package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/manju-ramakrishnan/phonepe-capstone-project/internal/api/httpx"
)

// RateLimit caps the whole API at rps requests per second with a burst of the
// same size. The dashboard is read-only, so a single shared limiter is enough.
func RateLimit(rps int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	lim := rate.NewLimiter(rate.Limit(rps), rps)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !lim.Allow() {
				httpx.WriteError(w, http.StatusTooManyRequests, "rate_limited", "too many requests", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
