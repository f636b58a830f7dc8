package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vikass-pal/campusconnect/internal/app/models/dto"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests beyond the configured rate with 429.
func RateLimit(requestsPerSecond float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeRateLimited, "Too many requests")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(errorDetail))
			return
		}
		c.Next()
	}
}
