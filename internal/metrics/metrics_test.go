package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visa-eligibility-engine/internal/metrics"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.IncrementRequest("count", "ok")
	m.IncrementRequest("count", "ok")
	m.IncrementRequest("visas", "invalid")
	m.ObserveEligible(4)
	m.ObserveEvaluateLatency("count", 2*time.Millisecond)
	m.IncrementUnknownValue("location")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Requests.WithLabelValues("count", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Requests.WithLabelValues("visas", "invalid")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.UnknownValues.WithLabelValues("location")))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["visa_eligibility_requests_total"])
	assert.True(t, names["visa_eligibility_eligible_visas"])
	assert.True(t, names["visa_eligibility_evaluate_duration_seconds"])
	assert.True(t, names["visa_eligibility_unknown_values_total"])
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.IncrementRequest("count", "ok")
		m.ObserveEligible(1)
		m.ObserveEvaluateLatency("count", time.Millisecond)
		m.IncrementUnknownValue("age_band")
	})
}

func TestMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)

	assert.Panics(t, func() { metrics.New(reg) })
}
