package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the HTTP surface and the chat
// pipeline. Each instance owns its registry.
type Metrics struct {
	registry         *prometheus.Registry
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	chatIntents      *prometheus.CounterVec
	chatReplies      *prometheus.CounterVec
	agentOutcomes    *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		requestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Requests currently being served.",
		}),
		chatIntents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chat_intents_total",
			Help: "Chat messages by routed intent.",
		}, []string{"intent"}),
		chatReplies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chat_replies_total",
			Help: "Chat replies by source (local, delegate, default).",
		}, []string{"source"}),
		agentOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "agent_outcomes_total",
			Help: "External agent calls by outcome reason.",
		}, []string{"reason"}),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.requestsInFlight,
		m.chatIntents,
		m.chatReplies,
		m.agentOutcomes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// MetricsMiddleware tracks request metrics labelled by chi route pattern.
func (m *Metrics) MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.requestsInFlight.Inc()
		defer m.requestsInFlight.Dec()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(wrapped, r)

		route := routePattern(r)
		m.httpRequests.WithLabelValues(route, strconv.Itoa(wrapped.statusCode)).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) ObserveIntent(intent string) { m.chatIntents.WithLabelValues(intent).Inc() }

func (m *Metrics) ObserveReply(source string) { m.chatReplies.WithLabelValues(source).Inc() }

func (m *Metrics) ObserveAgentOutcome(reason string) { m.agentOutcomes.WithLabelValues(reason).Inc() }

// routePattern keeps label cardinality bounded: unmatched paths share one label.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
