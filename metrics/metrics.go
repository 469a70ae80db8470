// Package metrics provides Prometheus metrics for the MediVoice API:
// HTTP request totals, latency and in-flight gauges, voice query
// outcomes, and the rate limiter bucket count. All metrics register
// with the default registry during package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	// QueriesTotal tracks /query outcomes: answered, not_found,
	// trigger or empty.
	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medivoice_queries_total",
			Help: "Voice query outcomes",
		},
		[]string{"outcome"},
	)

	RateLimiterBucketsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limiter_buckets_total",
			Help: "Total number of rate limiter buckets (client IPs currently tracked)",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(QueriesTotal)
	prometheus.MustRegister(RateLimiterBucketsTotal)
}
