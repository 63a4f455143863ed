package middleware

import (
	"net/http"
	"strconv"
	"time"

	"Fivestack/services/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit guards a sensitive endpoint with the given limiter, keyed by
// client IP and route. Limiter errors fail open: a broken Redis must not take
// logins down with it.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := c.ClientIP() + ":" + c.FullPath()
		allowed, resetAt, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			c.Next()
			return
		}
		if !allowed {
			retry := int(time.Until(resetAt).Seconds())
			if retry < 1 {
				retry = 1
			}
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":               "Too many requests, try again later",
				"retry_after_seconds": retry,
			})
			return
		}
		c.Next()
	}
}
