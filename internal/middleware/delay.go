package middleware

import (
	"math/rand/v2"
	"time"

	"github.com/gin-gonic/gin"
)

// Delayer holds the bounds of the simulated latency.
type Delayer struct {
	Min time.Duration
	Max time.Duration
}

// Duration draws one delay in [Min, Max]. Equal bounds give a fixed delay.
func (d Delayer) Duration() time.Duration {
	if d.Max <= d.Min {
		return d.Min
	}
	return d.Min + rand.N(d.Max-d.Min+1)
}

// Wrap returns a stage that waits before running h. A request cancelled
// during the wait is aborted and h never runs.
func (d Delayer) Wrap(h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := time.NewTimer(d.Duration())
		defer timer.Stop()

		select {
		case <-timer.C:
			h(c)
		case <-c.Request.Context().Done():
			c.Abort()
		}
	}
}
