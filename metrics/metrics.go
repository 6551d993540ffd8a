package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the bakery site API. promauto registers everything
// with the default registry, which /metrics serves via promhttp.

var (
	// HTTPRequestDuration tracks the duration of HTTP requests.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTPRequestsTotal counts total HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// PageViewsTrackedTotal counts page-view events accepted by /api/analytics/track.
	PageViewsTrackedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "page_views_tracked_total",
			Help: "Total number of page view events recorded",
		},
	)

	// LoginAttemptsTotal counts dashboard login attempts by outcome.
	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total number of dashboard login attempts",
		},
		[]string{"result"}, // success, failure
	)
)

// RecordPageViewTracked increments the page view counter.
func RecordPageViewTracked() {
	PageViewsTrackedTotal.Inc()
}

// RecordLoginAttempt records a login attempt outcome.
func RecordLoginAttempt(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	LoginAttemptsTotal.WithLabelValues(result).Inc()
}
