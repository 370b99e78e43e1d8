package classificationmetrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "classification"

// Metrics records what a classification run did.
type Metrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordPlayersMatched(ctx context.Context, strategy string, count int)
	RecordTeamsRanked(ctx context.Context, count int)
	RecordArtifactSkipped(ctx context.Context, format string)
}

// PrometheusMetrics implements Metrics on a caller supplied registry.
type PrometheusMetrics struct {
	attempts      *prometheus.CounterVec
	successes     *prometheus.CounterVec
	failures      *prometheus.CounterVec
	durations     *prometheus.HistogramVec
	playersByKind *prometheus.CounterVec
	teamsRanked   prometheus.Gauge
	skipped       *prometheus.CounterVec
}

// NewPrometheusMetrics registers the classification collectors on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_attempts_total",
			Help:      "Number of classification operations started.",
		}, []string{"operation"}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_success_total",
			Help:      "Number of classification operations that completed.",
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Number of classification operations that failed.",
		}, []string{"operation"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of classification operations.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"operation"}),
		playersByKind: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "players_matched_total",
			Help:      "Roster players resolved against the score sheet, by match strategy.",
		}, []string{"strategy"}),
		teamsRanked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "teams_ranked",
			Help:      "Teams in the last computed ranking.",
		}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "artifacts_skipped_total",
			Help:      "Report artifacts that were not produced.",
		}, []string{"format"}),
	}

	reg.MustRegister(
		m.attempts,
		m.successes,
		m.failures,
		m.durations,
		m.playersByKind,
		m.teamsRanked,
		m.skipped,
	)
	return m
}

func (m *PrometheusMetrics) RecordOperationAttempt(_ context.Context, operation string) {
	m.attempts.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationSuccess(_ context.Context, operation string) {
	m.successes.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.failures.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation string, duration time.Duration) {
	m.durations.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordPlayersMatched(_ context.Context, strategy string, count int) {
	m.playersByKind.WithLabelValues(strategy).Add(float64(count))
}

func (m *PrometheusMetrics) RecordTeamsRanked(_ context.Context, count int) {
	m.teamsRanked.Set(float64(count))
}

func (m *PrometheusMetrics) RecordArtifactSkipped(_ context.Context, format string) {
	m.skipped.WithLabelValues(format).Inc()
}

// NoOpMetrics discards everything.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoOpMetrics) RecordPlayersMatched(context.Context, string, int)              {}
func (NoOpMetrics) RecordTeamsRanked(context.Context, int)                         {}
func (NoOpMetrics) RecordArtifactSkipped(context.Context, string)                  {}
