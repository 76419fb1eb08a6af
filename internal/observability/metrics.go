// Package observability exposes the Prometheus metrics of the mutation
// protocol, the lock manager, the cascade engine and the read cache.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
)

const namespace = "vitalog"

// Metrics implements the observer interfaces of the mutation coordinator,
// the Locker, the cascade engine and the cache Store.
type Metrics struct {
	registry *prometheus.Registry

	mutationOutcomes *prometheus.CounterVec
	mutationDuration *prometheus.HistogramVec
	lockWait         *prometheus.HistogramVec
	lockTimeouts     *prometheus.CounterVec
	cascadeRows      *prometheus.CounterVec
	cacheRequests    *prometheus.CounterVec
}

// New creates Metrics registered on a fresh registry together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		mutationOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mutation",
			Name:      "outcomes_total",
			Help:      "Mutations by operation, final status and the phase they ended in.",
		}, []string{"op", "status", "phase"}),

		mutationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "mutation",
			Name:      "duration_seconds",
			Help:      "Wall time of a mutation including lock waits.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		}, []string{"op"}),

		lockWait: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "lock",
			Name:      "wait_seconds",
			Help:      "Time spent waiting for row and pair locks.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 16),
		}, []string{"kind"}),

		lockTimeouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lock",
			Name:      "timeouts_total",
			Help:      "Lock requests that were not granted in time.",
		}, []string{"kind"}),

		cascadeRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cascade",
			Name:      "rows_total",
			Help:      "Rows deleted, detached or inserted by cascade rules.",
		}, []string{"rule"}),

		cacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "events_total",
			Help:      "Read cache hits, misses, invalidated keys and purges.",
		}, []string{"event"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.mutationOutcomes,
		m.mutationDuration,
		m.lockWait,
		m.lockTimeouts,
		m.cascadeRows,
		m.cacheRequests,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveMutation(op string, status domain.Status, reached mutation.Phase, elapsed time.Duration) {
	m.mutationOutcomes.WithLabelValues(op, status.String(), reached.String()).Inc()
	m.mutationDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveLockWait(kind string, waited time.Duration, acquired bool) {
	m.lockWait.WithLabelValues(kind).Observe(waited.Seconds())
	if !acquired {
		m.lockTimeouts.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) ObserveCascade(rule string, rows int64) {
	if rows <= 0 {
		return
	}
	m.cascadeRows.WithLabelValues(rule).Add(float64(rows))
}

func (m *Metrics) ObserveCache(event string, n int) {
	if n <= 0 {
		return
	}
	m.cacheRequests.WithLabelValues(event).Add(float64(n))
}
