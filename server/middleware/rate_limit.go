package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// GinRateLimitMiddleware ограничивает частоту запросов к API
// Один limiter на процесс: дашборд обслуживает небольшую команду менеджеров
func GinRateLimitMiddleware(perSecond float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			slog.Warn("Rate limit exceeded",
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP(),
				"request_id", GetRequestIDFromGin(c),
			)
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   true,
				"message": "Muitas requisições, tente novamente em instantes",
			})
			return
		}

		c.Next()
	}
}
