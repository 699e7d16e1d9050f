package middleware

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"sort"
	"time"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"

	readinessTimeout = 5 * time.Second
	pingTimeout      = 2 * time.Second
)

// HealthChecker is one readiness dependency: the dataset source or the
// database behind it.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// DatabaseHealthChecker pings the SQL dataset store.
type DatabaseHealthChecker struct {
	DB *sql.DB
}

func (d *DatabaseHealthChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return d.DB.PingContext(ctx)
}

type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks,omitempty"`
}

type CheckStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}

// runChecks evaluates checkers in name order and reports overall health.
func runChecks(ctx context.Context, checkers map[string]HealthChecker) HealthStatus {
	report := HealthStatus{
		Status:    statusHealthy,
		Timestamp: time.Now().UTC(),
		Checks:    make(map[string]CheckStatus, len(checkers)),
	}

	names := make([]string, 0, len(checkers))
	for name := range checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		start := time.Now()
		err := checkers[name].Check(ctx)
		cs := CheckStatus{Status: statusHealthy, LatencyMS: time.Since(start).Milliseconds()}
		if err != nil {
			report.Status = statusUnhealthy
			cs.Status = statusUnhealthy
			cs.Message = err.Error()
		}
		report.Checks[name] = cs
	}
	return report
}

// ReadinessHandler answers 503 when any checker fails.
func ReadinessHandler(checkers map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		report := runChecks(ctx, checkers)
		code := http.StatusOK
		if report.Status != statusHealthy {
			code = http.StatusServiceUnavailable
		}
		writeHealth(w, code, report)
	}
}

// LivenessHandler always reports healthy; it does not touch the dataset.
func LivenessHandler(w http.ResponseWriter, _ *http.Request) {
	writeHealth(w, http.StatusOK, HealthStatus{Status: statusHealthy, Timestamp: time.Now().UTC()})
}

func writeHealth(w http.ResponseWriter, code int, report HealthStatus) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(report)
}
