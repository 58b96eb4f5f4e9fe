// Package metrics exposes Prometheus metrics for scraping. It owns a private
// registry (never the global default) carrying Go runtime, process and
// database pool collectors plus the todo store operation counters.
package metrics

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "todoapp"

// Registry wraps a Prometheus registry with the service's collectors.
type Registry struct {
	reg   *prometheus.Registry
	store *StoreMetrics
}

// New creates a registry with Go runtime and process collectors and the
// store operation metrics registered.
func New() (*Registry, error) {
	reg := prometheus.NewRegistry()

	store := newStoreMetrics()
	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		store.total,
		store.duration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}

	return &Registry{reg: reg, store: store}, nil
}

// RegisterDB adds connection pool statistics for db under the given name.
// Registering the same name twice is a no-op.
func (r *Registry) RegisterDB(name string, db *sql.DB) error {
	err := r.reg.Register(collectors.NewDBStatsCollector(db, name))
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		return nil
	}
	return err
}

// Store returns the store operation metrics.
func (r *Registry) Store() *StoreMetrics {
	return r.store
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// StoreMetrics counts and times repository operations.
type StoreMetrics struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newStoreMetrics() *StoreMetrics {
	return &StoreMetrics{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Todo store operations by operation and result.",
		}, []string{"operation", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Latency of todo store operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

// Observe records one operation. result is "ok", "not_found" or "error".
// Safe to call on a nil receiver.
func (m *StoreMetrics) Observe(operation, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.total.WithLabelValues(operation, result).Inc()
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
