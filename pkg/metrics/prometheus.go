// Package metrics provides Prometheus metrics for the tipout service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Calculation outcomes used as the outcome label.
const (
	OutcomeOK             = "ok"
	OutcomeMalformedEntry = "malformed_entry"
	OutcomeInvalidConfig  = "invalid_config"
)

// rosterBuckets covers a single dining room up to a large banquet.
var rosterBuckets = []float64{0, 1, 2, 4, 8, 12, 16, 24, 32, 48}

// Manager owns the service's collectors and the registry they live on.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	// Engine
	calculations        *prometheus.CounterVec
	calculationDuration prometheus.Histogram
	rosterEntries       prometheus.Histogram
	zeroPointShifts     prometheus.Counter
	negativePools       *prometheus.CounterVec

	// RPC
	rpcRequests *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec
}

// NewManager creates a metrics manager. Without WithPrometheusRegistry it
// uses a fresh registry rather than the global default.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "tipout",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.calculations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "calculations_total",
		Help:      "Tipout calculations by outcome",
	}, []string{"outcome"})

	m.calculationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "calculation_duration_seconds",
		Help:      "Time spent in the allocation pipeline",
		Buckets:   m.histogramBuckets,
	})

	m.rosterEntries = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_entries",
		Help:      "Named staff entries per successful calculation",
		Buckets:   rosterBuckets,
	})

	m.zeroPointShifts = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "zero_point_shifts_total",
		Help:      "Calculations where no staff held any points",
	})

	m.negativePools = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "negative_pools_total",
		Help:      "Calculations that produced a negative pool",
	}, []string{"pool"})

	m.rpcRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "rpc",
		Name:      "requests_total",
		Help:      "RPC requests by procedure and status code",
	}, []string{"procedure", "code"})

	m.rpcDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "rpc",
		Name:      "request_duration_seconds",
		Help:      "RPC latency by procedure",
		Buckets:   m.histogramBuckets,
	}, []string{"procedure"})
}

// RecordCalculation records one engine run.
func (m *Manager) RecordCalculation(outcome string, d time.Duration, entries int) {
	if !m.enabled {
		return
	}
	m.calculations.WithLabelValues(outcome).Inc()
	if outcome != OutcomeOK {
		return
	}
	m.calculationDuration.Observe(d.Seconds())
	m.rosterEntries.Observe(float64(entries))
}

// RecordZeroPoints counts a shift with no points on the floor.
func (m *Manager) RecordZeroPoints() {
	if m.enabled {
		m.zeroPointShifts.Inc()
	}
}

// RecordNegativePool counts a negative "floor" or "bar" pool.
func (m *Manager) RecordNegativePool(pool string) {
	if m.enabled {
		m.negativePools.WithLabelValues(pool).Inc()
	}
}

// RecordRPC records one RPC call.
func (m *Manager) RecordRPC(procedure, code string, d time.Duration) {
	if !m.enabled {
		return
	}
	m.rpcRequests.WithLabelValues(procedure, code).Inc()
	m.rpcDuration.WithLabelValues(procedure).Observe(d.Seconds())
}

// Registry returns the registry the collectors are registered on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the manager's registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
