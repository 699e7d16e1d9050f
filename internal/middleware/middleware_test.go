package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucket(t *testing.T) {
	tb := NewTokenBucket(2, 0)
	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())
}

func TestRateLimiterPerClient(t *testing.T) {
	rl := NewRateLimiter(1, 0)
	defer rl.Close()

	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, do("10.0.0.1:1111"))
	// same client, different source port
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:2222"))
	assert.Equal(t, http.StatusNoContent, do("10.0.0.2:1111"))
}

func TestRateLimiterEvictsIdle(t *testing.T) {
	rl := NewRateLimiter(1, 0)
	defer rl.Close()
	rl.Allow("a")
	rl.evictIdle(time.Now().Add(time.Hour))

	rl.mu.RLock()
	defer rl.mu.RUnlock()
	assert.Empty(t, rl.buckets)
}

func TestValidator(t *testing.T) {
	assert.Equal(t, "hello world", SanitizeString("  hello\x00 world\x07 "))

	msg, err := ValidateMessage(" what's my cholesterol? ")
	require.NoError(t, err)
	assert.Equal(t, "what's my cholesterol?", msg)

	_, err = ValidateMessage(strings.Repeat("a", MaxMessageLength+1))
	assert.Error(t, err)

	assert.NoError(t, ValidateSessionID("default_session"))
	assert.NoError(t, ValidateSessionID("0b7c1c8e-7d0e-4a53-9d2b-1f1c4b0e6a11"))
	assert.Error(t, ValidateSessionID(""))
	assert.Error(t, ValidateSessionID("a/b"))
	assert.Error(t, ValidateSessionID(strings.Repeat("x", 129)))
}

type checkerFunc func(context.Context) error

func (f checkerFunc) Check(ctx context.Context) error { return f(ctx) }

func TestReadinessHandler(t *testing.T) {
	ok := checkerFunc(func(context.Context) error { return nil })
	bad := checkerFunc(func(context.Context) error { return errors.New("dataset unavailable") })

	rec := httptest.NewRecorder()
	ReadinessHandler(map[string]HealthChecker{"dataset": ok})(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	ReadinessHandler(map[string]HealthChecker{"dataset": ok, "database": bad})(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var report HealthStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	assert.Equal(t, "unhealthy", report.Status)
	assert.Equal(t, "healthy", report.Checks["dataset"].Status)
	assert.Equal(t, "unhealthy", report.Checks["database"].Status)
	assert.Equal(t, "dataset unavailable", report.Checks["database"].Message)
}

func TestMetricsMiddleware(t *testing.T) {
	m := NewMetrics()
	mux := chi.NewRouter()
	mux.Use(m.MetricsMiddleware)
	mux.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, id := range []string{"1", "2"} {
		mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
	}
	m.ObserveIntent("sleep")

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	var found bool
	for _, f := range families {
		if f.GetName() != "http_requests_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range metric.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["route"] == "/items/{id}" && labels["status"] == "418" {
				found = true
				assert.Equal(t, 2.0, metric.GetCounter().GetValue())
			}
		}
	}
	assert.True(t, found)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `chat_intents_total{intent="sleep"} 1`)
}

func TestLoggingMiddleware(t *testing.T) {
	var buf strings.Builder
	logger := log.NewWithOptions(&buf, log.Options{Formatter: log.LogfmtFormatter})
	h := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/chat", nil))

	out := buf.String()
	assert.Contains(t, out, "method=POST")
	assert.Contains(t, out, "path=/api/chat")
	assert.Contains(t, out, "status=201")
	assert.Contains(t, out, "bytes=2")
}
