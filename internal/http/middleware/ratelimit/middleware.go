package ratelimit

import (
	"net"
	"net/http"

	"parcelpoint/internal/logx"
)

type counter interface {
	Inc()
}

// Middleware rejects requests whose client exceeded the limiter budget.
type Middleware struct {
	logger   logx.Logger
	exceeded counter
	limiter  Limiter
}

// New creates rate limiting middleware keyed by client IP.
func New(logger logx.Logger, exceeded counter, limiter Limiter) *Middleware {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Middleware{logger: logger, exceeded: exceeded, limiter: limiter}
}

// Handler wraps next with the rate limit check.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)
		if !m.limiter.Allow(key) {
			if m.exceeded != nil {
				m.exceeded.Inc()
			}
			m.logger.Warn("rate limit exceeded",
				logx.String("ip", key),
				logx.String("path", r.URL.Path),
			)
			w.Header().Set("Retry-After", "1")
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"too many requests"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
