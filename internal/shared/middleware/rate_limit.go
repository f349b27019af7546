package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"recipe-backend/internal/shared/response"
)

// RateLimit applies one token bucket to every request.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			rateLimitRejects.Inc()
			c.Header("Retry-After", "1")
			response.TooManyRequests(c, "Rate limit exceeded")
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(int(rps)))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))
		c.Next()
	}
}
