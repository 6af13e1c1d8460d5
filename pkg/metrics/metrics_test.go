package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveInvocation("BookingAgent", 0.3, nil)
	m.ObserveInvocation("BookingAgent", 1.2, errors.New("x"))
	m.ObservePlan(nil)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.ModelInvocations.WithLabelValues("BookingAgent", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ModelInvocations.WithLabelValues("BookingAgent", "error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PlanRequests.WithLabelValues("success")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ModelLatency))

	assert.Panics(t, func() { New(reg) }, "collectors register once per registry")
}
