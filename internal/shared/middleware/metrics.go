package middleware

import (
	"strconv"
	"time"

	"github.com/festivio/committee-dashboard/go-api-server/internal/shared/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records Prometheus request counters and latency histograms.
// The route label uses the registered route pattern, not the raw path,
// to keep label cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.RecordHTTPRequest(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
