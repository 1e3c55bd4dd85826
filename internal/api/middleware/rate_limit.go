package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/almasezhe/warauction/internal/errors"
	"github.com/almasezhe/warauction/internal/utils/response"
)

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, int, int, error)
}

// RateLimit throttles next per user, or per client address for anonymous
// requests. Limiter failures let the request through.
func RateLimit(limiter Limiter, scope string, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := LoggerFromContext(r.Context())

		subject := clientAddr(r)
		if claims := ClaimsFromContext(r.Context()); claims != nil {
			subject = claims.UserID.String()
		}

		allowed, remaining, retryAfter, err := limiter.Allow(r.Context(), scope+":"+subject)
		if err != nil {
			logger.Error("Rate limiter unavailable", slog.String("scope", scope), slog.String("error", err.Error()))
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			logger.Warn("Rate limit exceeded", slog.String("scope", scope), slog.Int("retryAfter", retryAfter))
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			response.Error(w, errors.RateLimitedError("Too many requests, try again later"))
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		next.ServeHTTP(w, r)
	}
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
