package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AttemptCounter is the slice of the cache client the limiter needs.
type AttemptCounter interface {
	IncrAttempt(ctx context.Context, key string, window time.Duration) (int64, error)
}

// LoginRateLimit caps login attempts per client ip within a fixed window.
// With no counter (Redis unconfigured or down) requests pass through.
func LoginRateLimit(counter AttemptCounter, limit int, window time.Duration, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if counter == nil || limit <= 0 {
			c.Next()
			return
		}

		count, err := counter.IncrAttempt(c.Request.Context(), c.ClientIP(), window)
		if err != nil {
			// A broken limiter must not take logins down with it.
			log.WithError(err).Warn("login rate limiter unavailable")
			c.Next()
			return
		}
		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts"})
			return
		}
		c.Next()
	}
}
