package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the eligibility module.
type Metrics struct {
	// Evaluation verdicts by outcome (eligible / partial / ineligible)
	EvaluationOutcome *prometheus.CounterVec

	// Single-scheme evaluation latency
	EvaluateLatency prometheus.Histogram

	// Full catalog ranking latency
	RankLatency prometheus.Histogram
}

// New creates a Metrics instance with all eligibility module metrics registered.
func New() *Metrics {
	return &Metrics{
		EvaluationOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "schemesathi_eligibility_evaluations_total",
			Help: "Total eligibility evaluations by outcome",
		}, []string{"outcome"}), // outcome: "eligible", "partial", "ineligible"

		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "schemesathi_eligibility_evaluate_duration_seconds",
			Help:    "Duration of single-scheme eligibility evaluation",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
		}),

		RankLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "schemesathi_eligibility_rank_duration_seconds",
			Help:    "Duration of full-catalog rank and summary computation",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		}),
	}
}

// IncrementOutcome records an evaluation verdict.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.EvaluationOutcome.WithLabelValues(outcome).Inc()
	}
}

// ObserveEvaluateLatency records the duration of one evaluation.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}

// ObserveRankLatency records the duration of a full catalog ranking.
func (m *Metrics) ObserveRankLatency(d time.Duration) {
	if m != nil {
		m.RankLatency.Observe(d.Seconds())
	}
}
