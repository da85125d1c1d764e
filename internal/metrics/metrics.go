// Package metrics exposes Prometheus collectors for eligibility evaluations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the eligibility engine. A nil *Metrics is a no-op.
type Metrics struct {
	// Request outcomes by operation and outcome ("ok", "invalid", "error")
	Requests *prometheus.CounterVec

	// Eligible visas per evaluation
	EligibleCount prometheus.Histogram

	// Evaluation latency by operation
	EvaluateLatency *prometheus.HistogramVec

	// Intake answers that did not match a known category, by field
	UnknownValues *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them on the default /metrics handler.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "visa_eligibility_requests_total",
			Help: "Total eligibility requests by operation and outcome",
		}, []string{"operation", "outcome"}),

		EligibleCount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "visa_eligibility_eligible_visas",
			Help:    "Number of eligible visas per evaluation",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 8, 10, 12},
		}),

		EvaluateLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "visa_eligibility_evaluate_duration_seconds",
			Help:    "Duration of eligibility evaluations by operation",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		}, []string{"operation"}),

		UnknownValues: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "visa_eligibility_unknown_values_total",
			Help: "Intake answers that fell back to a default, by field",
		}, []string{"field"}),
	}
}

// IncrementRequest records a request outcome.
func (m *Metrics) IncrementRequest(operation, outcome string) {
	if m != nil {
		m.Requests.WithLabelValues(operation, outcome).Inc()
	}
}

// ObserveEligible records how many visas an evaluation found.
func (m *Metrics) ObserveEligible(count int) {
	if m != nil {
		m.EligibleCount.Observe(float64(count))
	}
}

// ObserveEvaluateLatency records the duration of one evaluation.
func (m *Metrics) ObserveEvaluateLatency(operation string, d time.Duration) {
	if m != nil {
		m.EvaluateLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// IncrementUnknownValue records an unrecognized intake answer.
func (m *Metrics) IncrementUnknownValue(field string) {
	if m != nil {
		m.UnknownValues.WithLabelValues(field).Inc()
	}
}
