package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	AuthorizationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authorizations_total",
			Help: "Total number of authorization decisions by status",
		},
		[]string{"status"},
	)

	AuthorizationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "authorization_duration_ms",
			Help:    "End-to-end authorization latency in milliseconds",
			Buckets: []float64{50, 100, 250, 500, 800, 1000, 1500, 2000, 5000},
		},
	)

	SlaViolationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sla_violations_total",
			Help: "Total number of authorizations that exceeded the SLA limit",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		AuthorizationsTotal,
		AuthorizationDuration,
		SlaViolationsTotal,
	)
}
