package middleware

import (
	"net/http"
	"strconv"

	"pawmart/internal/redis"
	"pawmart/internal/services"
	"pawmart/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// OrderRateLimitMiddleware limits order/checkout creation per user.
// Must be applied after AuthMiddleware.
func OrderRateLimitMiddleware(limiter *redis.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := services.UserIDFromContext(c.Request.Context())
		if !ok {
			// No user context; auth middleware will reject the request.
			c.Next()
			return
		}

		result, err := limiter.AllowOrder(c.Request.Context(), userID.String())
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("rate limit error", "INTERNAL_ERROR"))
			c.Abort()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, httpdto.NewErrorResponse("order rate limit exceeded", "RATE_LIMITED"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdoptionRateLimitMiddleware limits application creation per user.
// Must be applied after AuthMiddleware.
func AdoptionRateLimitMiddleware(limiter *redis.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := services.UserIDFromContext(c.Request.Context())
		if !ok {
			c.Next()
			return
		}

		result, err := limiter.AllowAdoption(c.Request.Context(), userID.String())
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("rate limit error", "INTERNAL_ERROR"))
			c.Abort()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, httpdto.NewErrorResponse("adoption rate limit exceeded", "RATE_LIMITED"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func setRateLimitHeaders(c *gin.Context, result *redis.RateLimitResult) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Header("X-RateLimit-Reset", strconv.Itoa(int(result.ResetIn.Seconds())))
}
