package transport

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the custom Prometheus series the transport records,
// grounded in observability.NewMetrics's registry-owned CounterVec shape.
type Metrics struct {
	Registry         *prometheus.Registry
	EvaluationsTotal *prometheus.CounterVec
	EvaluationErrors *prometheus.CounterVec
}

// NewMetrics creates a fresh registry (to avoid polluting the global one,
// per observability.NewServer) and registers the transport's metrics
// against it.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		Registry: reg,
		EvaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rulelang_evaluations_total",
				Help: "Total number of rule evaluations by verdict",
			},
			[]string{"result"},
		),
		EvaluationErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rulelang_evaluation_errors_total",
				Help: "Total number of evaluations that failed to load",
			},
			[]string{"kind"},
		),
	}

	reg.MustRegister(m.EvaluationsTotal)
	reg.MustRegister(m.EvaluationErrors)
	return m
}
