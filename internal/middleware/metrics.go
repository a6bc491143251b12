package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/awardpulse/internal/metrics"
)

// Metrics records each request's route, method, status and latency on m.
// Unmatched routes are reported as "unmatched" to keep label cardinality bounded.
func Metrics(m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordHTTPRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
