package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"parcelpoint/internal/logx"
)

type stubLimiter struct {
	allow bool
	keys  []string
}

func (s *stubLimiter) Allow(key string) bool {
	s.keys = append(s.keys, key)
	return s.allow
}

func TestMiddleware_Allows_RequestPassesToNext(t *testing.T) {
	t.Parallel()

	nextCalled := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled++
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	m := New(logx.Nop(), nil, &stubLimiter{allow: true})
	h := m.Handler(next)

	r := httptest.NewRequest(http.MethodPost, "http://example/api/pickup", nil)
	r.RemoteAddr = "1.2.3.4:5678"
	w := httptest.NewRecorder()

	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, nextCalled)
}

func TestMiddleware_Blocks_Returns429AndIncrementsCounter(t *testing.T) {
	t.Parallel()

	nextCalled := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled++
	})

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_ratelimit_denied_total",
		Help: "denied requests",
	})

	m := New(logx.Nop(), counter, &stubLimiter{allow: false})
	h := m.Handler(next)

	r := httptest.NewRequest(http.MethodPost, "http://example/api/pickup", nil)
	r.RemoteAddr = "1.2.3.4:5678"
	w := httptest.NewRecorder()

	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, 0, nextCalled)
	require.Equal(t, "1", w.Header().Get("Retry-After"))
	require.JSONEq(t, `{"error":"too many requests"}`, w.Body.String())
	require.Equal(t, float64(1), testutil.ToFloat64(counter))
}

func TestMiddleware_KeysByClientIP(t *testing.T) {
	t.Parallel()

	lim := &stubLimiter{allow: true}
	m := New(logx.Nop(), nil, lim)
	h := m.Handler(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	r := httptest.NewRequest(http.MethodPost, "http://example/api/track", nil)
	r.RemoteAddr = "10.0.0.7:49152"
	h.ServeHTTP(httptest.NewRecorder(), r)

	require.Equal(t, []string{"10.0.0.7"}, lim.keys)
}
