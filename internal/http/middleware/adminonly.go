package middleware

import (
	"net/http"

	"parcelpoint/internal/auth"
	"parcelpoint/internal/logx"
)

type sessionChecker interface {
	IsAdmin(token string) bool
}

// AdminOnly rejects requests that do not carry a live admin session cookie.
func AdminOnly(logger logx.Logger, gate sessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(auth.SessionCookie)
			if err != nil || !gate.IsAdmin(c.Value) {
				logger.Warn("unauthorized admin request",
					logx.String("method", r.Method),
					logx.String("path", r.URL.Path),
				)
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
