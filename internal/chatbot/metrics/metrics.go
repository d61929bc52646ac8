package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the chatbot module.
type Metrics struct {
	// Classified messages by resolved category
	MessagesClassified *prometheus.CounterVec

	// End-to-end classify-and-respond latency
	RespondLatency prometheus.Histogram
}

// New creates a Metrics instance with all chatbot module metrics registered.
func New() *Metrics {
	return &Metrics{
		MessagesClassified: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "schemesathi_chatbot_messages_total",
			Help: "Total chat messages by classified category",
		}, []string{"category"}),

		RespondLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "schemesathi_chatbot_respond_duration_seconds",
			Help:    "Duration of message classification and response assembly",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
	}
}

// IncrementCategory records one classified message.
func (m *Metrics) IncrementCategory(category string) {
	if m != nil {
		m.MessagesClassified.WithLabelValues(category).Inc()
	}
}

// ObserveRespondLatency records the duration of one handled message.
func (m *Metrics) ObserveRespondLatency(d time.Duration) {
	if m != nil {
		m.RespondLatency.Observe(d.Seconds())
	}
}
