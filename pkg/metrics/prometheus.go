// Package metrics provides Prometheus metrics for tournament ranking.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the Prometheus collectors for the ranking pipeline.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	rankings          prometheus.Counter
	rankingErrors     *prometheus.CounterVec
	competitorsRanked prometheus.Gauge
	championScore     prometheus.Gauge
	rankingDurationMs prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "blade",
		subsystem:        "tournament",
		histogramBuckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rankings = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rankings_total",
		Help:      "Total number of rankings computed",
	})

	m.rankingErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "ranking_errors_total",
			Help:      "Total number of failed rankings by error kind",
		},
		[]string{"kind"},
	)

	m.competitorsRanked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "competitors_ranked",
		Help:      "Number of competitors in the most recent ranking",
	})

	m.championScore = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "champion_score",
		Help:      "Score of the top competitor in the most recent ranking",
	})

	m.rankingDurationMs = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranking_duration_milliseconds",
		Help:      "Time spent scoring and sorting a ranking in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// RecordRanking counts a completed ranking of n competitors led by topScore.
func RecordRanking(n, topScore int) {
	globalManager.rankings.Inc()
	globalManager.competitorsRanked.Set(float64(n))
	globalManager.championScore.Set(float64(topScore))
}

// RecordRankingError counts a failed ranking by error kind.
func RecordRankingError(kind string) {
	globalManager.rankingErrors.WithLabelValues(kind).Inc()
}

// RecordRankingLatency records how long a ranking took in milliseconds.
func RecordRankingLatency(latencyMs float64) {
	globalManager.rankingDurationMs.Observe(latencyMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile writes the current state of the registry to path in the
// Prometheus text exposition format, for pickup by a node_exporter
// textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, customRegistry); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteTextfile, path, err)
	}
	return nil
}
