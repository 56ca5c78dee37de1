// Package metrics exposes Prometheus counters and histograms for the HTTP
// API and the MCP server. A nil *Metrics is valid and records nothing.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/erraggy/xutil/xuerrors"
)

const namespace = "xutil"

// Outcome labels for operations.
const (
	OutcomeOK           = "ok"
	OutcomeInvalid      = "invalid"
	OutcomeUnauthorized = "unauthorized"
	OutcomeError        = "error"
)

// Metrics owns a registry and the collectors registered on it.
type Metrics struct {
	registry   *prometheus.Registry
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	operations *prometheus.CounterVec
}

// New creates a registry with Go runtime and process collectors plus the
// xutil metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Conversions and generators run, by operation and outcome.",
		}, []string{"operation", "outcome"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
		m.operations,
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveRequest records one served HTTP request. route is the router
// pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(route, method string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.duration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveOperation records the outcome of a named operation.
func (m *Metrics) ObserveOperation(operation string, err error) {
	if m == nil {
		return
	}
	m.ObserveOutcome(operation, Outcome(err))
}

// ObserveOutcome records an operation whose outcome label is already known.
// An empty outcome counts as OutcomeError.
func (m *Metrics) ObserveOutcome(operation, outcome string) {
	if m == nil {
		return
	}
	if outcome == "" {
		outcome = OutcomeError
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
}

// Outcome classifies err into an outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, xuerrors.ErrUnauthorized):
		return OutcomeUnauthorized
	case xuerrors.IsValidation(err):
		return OutcomeInvalid
	}
	return OutcomeError
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
