package alerts

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds Prometheus metrics for the alert ingestion subsystem.
type Metrics struct {
	SubmitsTotal  *prometheus.CounterVec
	RecordedTotal *prometheus.CounterVec
}

// NewMetrics registers and returns ingestion metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SubmitsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lifeline_submits_total",
			Help: "Total submissions by kind (sos, triage) and result.",
		}, []string{"kind", "result"}),
		RecordedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lifeline_alerts_recorded_total",
			Help: "Total alerts appended to the log by triage level.",
		}, []string{"level"}),
	}

	reg.MustRegister(
		m.SubmitsTotal,
		m.RecordedTotal,
	)

	return m
}
