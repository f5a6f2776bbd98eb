package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/ratelimit"
)

type observed struct {
	method, path string
	status       int
}

type fakeMetrics struct {
	requests []observed
	limited  []string
}

func (f *fakeMetrics) ObserveHTTPRequest(method, path string, status int, _ time.Duration) {
	f.requests = append(f.requests, observed{method: method, path: path, status: status})
}

func (f *fakeMetrics) ObserveRateLimited(path string) {
	f.limited = append(f.limited, path)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/reservations/{reservationId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/reservations/42", nil))

	require.Len(t, m.requests, 1)
	assert.Equal(t, observed{method: http.MethodGet, path: "/api/v1/reservations/{reservationId}", status: http.StatusNotFound}, m.requests[0])
}

func TestRateLimit(t *testing.T) {
	log, err := logger.NewWriter(io.Discard, "error")
	require.NoError(t, err)

	m := &fakeMetrics{}
	r := mux.NewRouter()
	r.Use(RateLimit(ratelimit.NewLimiter(2, time.Minute), m, log, false))
	r.HandleFunc("/api/v1/stores/{storeId}/capacity/check", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/stores/s1/capacity/check", nil)
		req.RemoteAddr = ip + ":5555"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))

	assert.Equal(t, []string{"/api/v1/stores/{storeId}/capacity/check"}, m.limited)
}

func TestRateLimit_ForwardedHeaderCannotBypass(t *testing.T) {
	log, err := logger.NewWriter(io.Discard, "error")
	require.NoError(t, err)

	for _, trust := range []bool{false, true} {
		r := mux.NewRouter()
		r.Use(RateLimit(ratelimit.NewLimiter(2, time.Minute), &fakeMetrics{}, log, trust))
		r.HandleFunc("/api/v1/stores/{storeId}/seats/available", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		codes := make([]int, 0, 4)
		for i := 0; i < 4; i++ {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/stores/s1/seats/available", nil)
			req.RemoteAddr = "10.0.0.9:4000"
			req.Header.Set("X-Forwarded-For", ", 1.2.3.4")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}

		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes, "trust=%t", trust)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:1234"
	assert.Equal(t, "192.168.1.5", clientIP(req, false))
	assert.Equal(t, "192.168.1.5", clientIP(req, true))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "192.168.1.5", clientIP(req, false))
	assert.Equal(t, "203.0.113.7", clientIP(req, true))

	req.Header.Set("X-Forwarded-For", "not-an-ip")
	assert.Equal(t, "192.168.1.5", clientIP(req, true))

	req.RemoteAddr = ""
	assert.Equal(t, "unknown", clientIP(req, false))
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = GetRequestID(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, w.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", w.Header().Get(HeaderRequestID))
}
