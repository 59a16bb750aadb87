package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// SimulatedLatency delays each request by d before handling it.
// A cancelled request stops waiting immediately.
func SimulatedLatency(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}

		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
			c.Next()
		case <-c.Request.Context().Done():
			c.Abort()
		}
	}
}
