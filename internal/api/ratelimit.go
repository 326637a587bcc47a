package api

import (
	"net/http"
	"time"

	"github.com/tanamapapp/tanamap-server/internal/http/response"
	"github.com/tanamapapp/tanamap-server/internal/ratelimit"
)

// NewRateLimiter creates a rate limiter allowing ratePerMinute requests
// per key per minute with the given burst size.
func NewRateLimiter(ratePerMinute int, burst int) *ratelimit.KeyedRateLimiter {
	rps := float64(ratePerMinute) / time.Minute.Seconds()
	return ratelimit.New(rps, burst)
}

// MutationRateLimitMiddleware rate limits write requests by client IP.
// Reads pass through unrestricted since the editor polls the composed view.
// Returns 429 Too Many Requests when the limit is exceeded.
func MutationRateLimitMiddleware(limiter *ratelimit.KeyedRateLimiter, logger interface{ Warn(msg string, args ...any) }) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			// Use IP address as the rate limit key.
			key := getClientIP(r)

			if !limiter.Allow(key) {
				logger.Warn("Rate limit exceeded",
					"ip", key,
					"path", r.URL.Path,
				)
				response.TooManyRequests(w, "Too many requests. Please try again later.", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP extracts the client IP from the request.
// Checks X-Forwarded-For and X-Real-IP headers before falling back to RemoteAddr.
func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For (may contain multiple IPs, first is client).
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Take first IP in the chain.
		for i := 0; i < len(xff); i++ {
			if xff[i] == ',' {
				return xff[:i]
			}
		}
		return xff
	}

	// Check X-Real-IP.
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	// Fall back to RemoteAddr (strip port).
	ip := r.RemoteAddr
	for i := len(ip) - 1; i >= 0; i-- {
		if ip[i] == ':' {
			return ip[:i]
		}
	}
	return ip
}
