package triage

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds Prometheus metrics for the triage subsystem.
type Metrics struct {
	DecisionsTotal         *prometheus.CounterVec
	DecisionDuration       *prometheus.HistogramVec
	ClassifierFailuresTotal prometheus.Counter
}

// NewMetrics registers and returns triage metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DecisionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lifeline_triage_decisions_total",
			Help: "Total triage decisions by level and provenance.",
		}, []string{"level", "provenance"}),
		DecisionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lifeline_triage_decision_duration_seconds",
			Help:    "Duration of triage decisions in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms .. ~10s
		}, []string{"provenance"}),
		ClassifierFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lifeline_classifier_failures_total",
			Help: "Total AI classifier failures recovered by the rule-based fallback.",
		}),
	}

	reg.MustRegister(
		m.DecisionsTotal,
		m.DecisionDuration,
		m.ClassifierFailuresTotal,
	)

	return m
}

// Hooks returns an EngineHooks that increments the corresponding metrics.
func (m *Metrics) Hooks() EngineHooks {
	return EngineHooks{
		OnDecision: func(level, provenance string, seconds float64) {
			m.DecisionsTotal.WithLabelValues(level, provenance).Inc()
			m.DecisionDuration.WithLabelValues(provenance).Observe(seconds)
		},
		OnClassifierFailure: func() {
			m.ClassifierFailuresTotal.Inc()
		},
	}
}
