package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "traveldesigner"

type Metrics struct {
	ModelInvocations *prometheus.CounterVec
	ModelLatency     *prometheus.HistogramVec
	PlanRequests     *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ModelInvocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "model_invocations_total",
				Help:      "Model invocations by agent and outcome",
			},
			[]string{"agent", "status"},
		),
		ModelLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "model_invocation_seconds",
				Help:      "Model invocation latency by agent",
				Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"agent"},
		),
		PlanRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "plan_requests_total",
				Help:      "Trip plan requests by outcome",
			},
			[]string{"status"},
		),
	}

	reg.MustRegister(m.ModelInvocations, m.ModelLatency, m.PlanRequests)
	return m
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func (m *Metrics) ObserveInvocation(agent string, seconds float64, err error) {
	m.ModelInvocations.WithLabelValues(agent, statusLabel(err)).Inc()
	m.ModelLatency.WithLabelValues(agent).Observe(seconds)
}

func (m *Metrics) ObservePlan(err error) {
	m.PlanRequests.WithLabelValues(statusLabel(err)).Inc()
}
