package middleware

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/partilio/backend/internal/application/adapter"
	domainerror "github.com/partilio/backend/internal/domain/error"
	"github.com/partilio/backend/internal/integration/entrypoint/dto"
)

// LoginThrottleMiddleware limits login attempts per client IP. The counter
// lives in Redis so the limit holds across instances.
type LoginThrottleMiddleware struct {
	throttle adapter.LoginThrottle
}

// NewLoginThrottleMiddleware creates a new login throttle middleware.
func NewLoginThrottleMiddleware(throttle adapter.LoginThrottle) *LoginThrottleMiddleware {
	return &LoginThrottleMiddleware{
		throttle: throttle,
	}
}

// Throttle returns a Gin middleware handler that rejects clients exceeding
// the configured attempt limit with 429.
func (m *LoginThrottleMiddleware) Throttle() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip throttling in E2E test mode
		if os.Getenv("E2E_MODE") == "true" || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		allowed, err := m.throttle.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			// Fail open: an unreachable Redis must not block logins.
			slog.Warn("login throttle check failed", "error", err)
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many login attempts. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
