// Package metrics provides Prometheus metrics for the dashboard API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "committee_dashboard"
	subsystem = "api"
)

// Custom registry to avoid the default Go collectors.
var registry = prometheus.NewRegistry()

var (
	httpRequests = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method, route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	analyticsComputations = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "analytics_computations_total",
		Help:      "Total number of analytics aggregations by report kind.",
	}, []string{"report"})
)

// RecordHTTPRequest records a completed HTTP request.
func RecordHTTPRequest(method, route, status string, durationSeconds float64) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(durationSeconds)
}

// RecordAnalyticsComputation counts one aggregation run for the given report.
func RecordAnalyticsComputation(report string) {
	analyticsComputations.WithLabelValues(report).Inc()
}

// Handler returns the exposition handler for the custom registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
