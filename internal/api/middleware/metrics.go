package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/job-board/internal/metrics"
)

// Metrics records request counts and latency per route template, so path
// parameters do not explode label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.RequestsCounter.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.RequestDuration.
			WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
