// Package observability provides Prometheus metrics for the windwizard services
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus collectors used across the services
type Metrics struct {
	ToolRequests  *prometheus.CounterVec
	ToolDuration  *prometheus.HistogramVec
	UpstreamCalls *prometheus.CounterVec
	TideFallbacks prometheus.Counter
	Notifications *prometheus.CounterVec
	StokeScores   prometheus.Histogram
	AlertsSent    prometheus.Counter
	WatchRuns     *prometheus.CounterVec
	SpotsImported prometheus.Counter
}

// NewMetrics creates and registers all metrics with the default registry
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ToolRequests,
		m.ToolDuration,
		m.UpstreamCalls,
		m.TideFallbacks,
		m.Notifications,
		m.StokeScores,
		m.AlertsSent,
		m.WatchRuns,
		m.SpotsImported,
	)
	return m
}

// NewMetricsForTesting creates metrics without registering them, so tests can
// create as many instances as they like without collision panics
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ToolRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "windwizard",
				Name:      "tool_requests_total",
				Help:      "Tool invocations by tool name and outcome.",
			},
			[]string{"tool", "outcome"},
		),
		ToolDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "windwizard",
				Name:      "tool_request_duration_seconds",
				Help:      "Tool invocation latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"tool"},
		),
		UpstreamCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "windwizard",
				Name:      "upstream_requests_total",
				Help:      "Calls to upstream weather and tide APIs by service and outcome.",
			},
			[]string{"service", "outcome"},
		),
		TideFallbacks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "windwizard",
				Name:      "tide_fallbacks_total",
				Help:      "Times tide data fell back to the synthetic model.",
			},
		),
		Notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "windwizard",
				Name:      "notifications_total",
				Help:      "Notification attempts by channel and outcome.",
			},
			[]string{"channel", "outcome"},
		),
		StokeScores: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "windwizard",
				Name:      "stoke_score",
				Help:      "Distribution of computed stoke scores.",
				Buckets:   prometheus.LinearBuckets(0, 10, 11),
			},
		),
		AlertsSent: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "windwizard",
				Name:      "alerts_sent_total",
				Help:      "Stoke alerts delivered to riders.",
			},
		),
		WatchRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "windwizard",
				Name:      "watch_runs_total",
				Help:      "Scheduled watcher sweeps by outcome.",
			},
			[]string{"outcome"},
		),
		SpotsImported: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "windwizard",
				Name:      "spots_imported_total",
				Help:      "Spots written to the spot database by the importer.",
			},
		),
	}
}

// Outcome label values
const (
	OutcomeOK          = "ok"
	OutcomeError       = "error"
	OutcomeClientError = "client_error"
	OutcomeSkipped     = "skipped"
)
