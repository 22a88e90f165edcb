// middleware/logger.go
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/eventdesk/logging"
	"github.com/dev-mohitbeniwal/eventdesk/util"
)

// Logger logs every request once it has been handled, together with the
// authenticated caller when there is one.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if userID, err := util.GetUserIDFromContext(c); err == nil {
			fields = append(fields, zap.Int64("userID", userID))
		}
		requestLog := logger.WithContext(fields...)

		if len(c.Errors) > 0 {
			for _, e := range c.Errors.Errors() {
				requestLog.Error("Request error", zap.String("error", e))
			}
			return
		}
		requestLog.Info("Request processed")
	}
}
