package api

import (
	"net"
	"net/http"

	"github.com/slovar-dev/slovar/internal/http/response"
	"github.com/slovar-dev/slovar/internal/logger"
	"github.com/slovar-dev/slovar/internal/ratelimit"
)

// RateLimitMiddleware rejects requests over the per-IP budget with 429.
// /health is exempt so probes never trip the limiter.
func RateLimitMiddleware(limiter *ratelimit.KeyedRateLimiter, log *logger.Logger) func(http.Handler) http.Handler {
	retryAfter := retryAfterSeconds(limiter.RPS())

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			key := getClientIP(r)
			if !limiter.Allow(key) {
				log.Warn("Rate limit exceeded",
					"ip", key,
					"path", r.URL.Path,
				)
				response.TooManyRequests(w, "Too many requests. Please try again later.", retryAfter, log.Logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP returns the host part of RemoteAddr. Forwarding headers are never
// read here: with TrustProxy the RealIP middleware has already applied them.
func getClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
