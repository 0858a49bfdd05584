package llm

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PromObserver exports LLM call counts and latencies as Prometheus metrics.
type PromObserver struct {
	calls   *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// NewPromObserver registers the LLM metrics on reg.
func NewPromObserver(reg prometheus.Registerer) *PromObserver {
	factory := promauto.With(reg)
	return &PromObserver{
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dayplan",
			Subsystem: "llm",
			Name:      "calls_total",
			Help:      "LLM calls by provider, model and outcome.",
		}, []string{"provider", "model", "status"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dayplan",
			Subsystem: "llm",
			Name:      "call_duration_seconds",
			Help:      "LLM call latency including retries.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 60, 120},
		}, []string{"provider", "model"}),
	}
}

func (o *PromObserver) OnCallComplete(event LLMCallEvent) {
	status := "ok"
	if !event.Success {
		status = event.ErrorCode
	}
	o.calls.WithLabelValues(event.Provider, event.Model, status).Inc()
	o.latency.WithLabelValues(event.Provider, event.Model).Observe(float64(event.LatencyMs) / 1000)
}
