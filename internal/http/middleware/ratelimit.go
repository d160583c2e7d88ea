package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nidhisakhi/backend/internal/observability"
	"github.com/nidhisakhi/backend/internal/ratelimit"
)

// RateLimit throttles by client IP and route. The IP comes from gin, so
// forwarding headers only count when the engine trusts the peer as a proxy.
// Limiter errors fail open.
func RateLimit(limiter ratelimit.Limiter, logger *slog.Logger, metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		key := route + ":" + c.ClientIP()

		ok, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warn("rate limiter unavailable", "err", err, "route", route)
			c.Next()
			return
		}
		if !ok {
			if metrics != nil {
				metrics.RateLimited.WithLabelValues(route).Inc()
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate_limited"})
			return
		}
		c.Next()
	}
}
