package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the verification engine.
type Metrics struct {
	// Per-check vendor call latencies by check type
	CheckLatency *prometheus.HistogramVec

	// Finalized record outcomes by status and tier
	Outcome *prometheus.CounterVec

	// Overall orchestration latency including the fan-out join
	ProcessLatency prometheus.Histogram
}

// New creates a Metrics instance with all verification metrics registered.
func New() *Metrics {
	return &Metrics{
		CheckLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vouch_verification_check_duration_seconds",
			Help:    "Duration of individual verification checks by check type",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"check"}),

		Outcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vouch_verification_outcomes_total",
			Help: "Total finalized verification records by status and tier",
		}, []string{"status", "tier"}),

		ProcessLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "vouch_verification_process_duration_seconds",
			Help:    "Duration of full verification processing including all checks",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// ObserveCheckLatency records the duration of one check's execution.
func (m *Metrics) ObserveCheckLatency(check string, d time.Duration) {
	if m != nil {
		m.CheckLatency.WithLabelValues(check).Observe(d.Seconds())
	}
}

// IncrementOutcome records a finalized record's status.
func (m *Metrics) IncrementOutcome(status, tier string) {
	if m != nil {
		m.Outcome.WithLabelValues(status, tier).Inc()
	}
}

// ObserveProcessLatency records the total orchestration duration.
func (m *Metrics) ObserveProcessLatency(d time.Duration) {
	if m != nil {
		m.ProcessLatency.Observe(d.Seconds())
	}
}
