package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type httpRecorder interface {
	RecordHTTPRequest(method, path, status string, seconds float64)
}

// Metrics records request counts and latencies per route template.
func Metrics(recorder httpRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		recorder.RecordHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
