package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"goldencrust/api/metrics"
)

// Metrics records request counts and latencies per route. Uses c.FullPath so
// parameterized routes collapse into one label value instead of exploding
// cardinality; unmatched routes (static fallback) report as "unmatched".
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, endpoint, status).
			Observe(time.Since(start).Seconds())
	}
}
