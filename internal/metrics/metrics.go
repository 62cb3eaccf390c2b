// Package metrics exposes Prometheus instruments for the gateway.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gateway",
			Name:      "requests_total",
			Help:      "Transaction submissions by outcome",
		},
		[]string{"result", "reason"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Validation pipeline latency",
			Buckets: []float64{
				0.001, 0.002, 0.005, 0.01, 0.02,
				0.05, 0.1, 0.2, 0.5, 1,
			},
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal, RequestDuration)
}

// ObserveRequest records one processed submission. reason is the result
// message for failures and "success" otherwise.
func ObserveRequest(result, reason string, seconds float64) {
	RequestsTotal.WithLabelValues(result, reason).Inc()
	RequestDuration.WithLabelValues(result).Observe(seconds)
}
