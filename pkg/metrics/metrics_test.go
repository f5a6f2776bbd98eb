package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveCapacityDecision(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.ObserveCapacityDecision(true)
	m.ObserveCapacityDecision(false)
	m.ObserveCapacityDecision(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CapacityDecisions.WithLabelValues("admitted")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CapacityDecisions.WithLabelValues("denied")))
}

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.ObserveHTTPRequest("POST", "/api/v1/stores/{storeId}/capacity/check", 200, 15*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/stores/{storeId}/capacity/check", "200")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveCapacityDecision(true)
		m.ObserveDBQuery("select", time.Millisecond, nil)
		m.ObserveRateLimited("/x")
	})
}
