// middleware/metrics.go
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/eventdesk/metrics"
)

// Metrics records request count and latency per matched route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveRequest(c.FullPath(), c.Request.Method, c.Writer.Status(), time.Since(start).Seconds())
	}
}
