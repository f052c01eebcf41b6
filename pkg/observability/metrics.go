package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// Prometheus Metrics
// =============================================================================

const metricsNamespace = "dsaviz"

// Metrics implements every hook interface on top of Prometheus collectors.
//
// All operations are safe for concurrent use via Prometheus's internal
// locking.
type Metrics struct {
	// GenerateTotal counts sequence requests.
	// Labels: algorithm, source (cache, generated, error)
	GenerateTotal *prometheus.CounterVec

	// GenerateSeconds measures time to produce a sequence.
	// Labels: algorithm
	GenerateSeconds *prometheus.HistogramVec

	// SequenceSteps records the length of produced sequences.
	// Labels: algorithm
	SequenceSteps *prometheus.HistogramVec

	// PlaybackActionsTotal counts controller transitions.
	// Labels: action
	PlaybackActionsTotal *prometheus.CounterVec

	// PlaybackFinishedTotal counts auto-plays that reached the last step.
	// Labels: algorithm
	PlaybackFinishedTotal *prometheus.CounterVec

	// CacheOpsTotal counts cache lookups and writes.
	// Labels: key_type, result (hit, miss, set)
	CacheOpsTotal *prometheus.CounterVec

	// CacheBytesTotal counts bytes written to the cache.
	// Labels: key_type
	CacheBytesTotal *prometheus.CounterVec

	// HTTPRequestsTotal counts served requests.
	// Labels: method, route, status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestSeconds measures request latency.
	// Labels: method, route
	HTTPRequestSeconds *prometheus.HistogramVec

	// ActiveSessions tracks open WebSocket playback sessions.
	ActiveSessions prometheus.Gauge

	// SessionSeconds measures playback session lifetimes.
	SessionSeconds prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. Passing
// prometheus.DefaultRegisterer exposes them on the default /metrics
// handler; tests pass a fresh prometheus.NewRegistry() to avoid duplicate
// registration panics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		GenerateTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "pipeline",
			Name:      "sequences_total",
			Help:      "Sequence requests by algorithm and source",
		}, []string{"algorithm", "source"}),

		GenerateSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "pipeline",
			Name:      "generate_seconds",
			Help:      "Time to produce a sequence in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"algorithm"}),

		SequenceSteps: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "pipeline",
			Name:      "sequence_steps",
			Help:      "Number of steps per produced sequence",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250},
		}, []string{"algorithm"}),

		PlaybackActionsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "playback",
			Name:      "actions_total",
			Help:      "Playback controller transitions by action",
		}, []string{"action"}),

		PlaybackFinishedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "playback",
			Name:      "finished_total",
			Help:      "Auto-plays that reached the terminal step",
		}, []string{"algorithm"}),

		CacheOpsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "cache",
			Name:      "operations_total",
			Help:      "Cache operations by key type and result",
		}, []string{"key_type", "result"}),

		CacheBytesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "cache",
			Name:      "written_bytes_total",
			Help:      "Bytes written to the cache by key type",
		}, []string{"key_type"}),

		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),

		HTTPRequestSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		ActiveSessions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "ws",
			Name:      "active_sessions",
			Help:      "Open WebSocket playback sessions",
		}),

		SessionSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "ws",
			Name:      "session_seconds",
			Help:      "Playback session lifetime in seconds",
			Buckets:   []float64{1, 10, 30, 60, 300, 900, 3600},
		}),
	}
}

// Install registers m as the global pipeline, playback, cache and server
// hooks.
func (m *Metrics) Install() {
	SetPipelineHooks(m)
	SetPlaybackHooks(m)
	SetCacheHooks(m)
	SetServerHooks(m)
}

// =============================================================================
// Hook Implementations
// =============================================================================

func (m *Metrics) OnGenerateStart(context.Context, string) {}

func (m *Metrics) OnGenerateComplete(_ context.Context, algorithm string, steps int, cached bool, d time.Duration, err error) {
	source := "generated"
	switch {
	case err != nil:
		source = "error"
	case cached:
		source = "cache"
	}
	m.GenerateTotal.WithLabelValues(algorithm, source).Inc()
	if err != nil {
		return
	}
	m.GenerateSeconds.WithLabelValues(algorithm).Observe(d.Seconds())
	m.SequenceSteps.WithLabelValues(algorithm).Observe(float64(steps))
}

func (m *Metrics) OnAction(action string, _, _ int) {
	m.PlaybackActionsTotal.WithLabelValues(action).Inc()
}

func (m *Metrics) OnFinished(algorithm string, _ int) {
	m.PlaybackFinishedTotal.WithLabelValues(algorithm).Inc()
}

func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.CacheOpsTotal.WithLabelValues(keyType, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.CacheOpsTotal.WithLabelValues(keyType, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, keyType string, size int) {
	m.CacheOpsTotal.WithLabelValues(keyType, "set").Inc()
	m.CacheBytesTotal.WithLabelValues(keyType).Add(float64(size))
}

func (m *Metrics) OnResponse(method, route string, status int, d time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestSeconds.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) OnSessionOpen(string) {
	m.ActiveSessions.Inc()
}

func (m *Metrics) OnSessionClose(_ string, d time.Duration) {
	m.ActiveSessions.Dec()
	m.SessionSeconds.Observe(d.Seconds())
}
