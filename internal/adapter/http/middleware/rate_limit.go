package middleware

import (
	"net/http"

	"bond_portal/internal/usecase/interfaces"
	"bond_portal/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errTooManyAttempts = pkg.NewDomainErrorSimple("TOO_MANY_ATTEMPTS", "Too many attempts. Please try again later.", http.StatusTooManyRequests)

// RateLimit counts attempts per client IP and path id. A limiter error lets the
// request through; the OTP itself stays single use either way.
func RateLimit(limiter interfaces.IRateLimiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		key := c.ClientIP() + "|" + c.Param("id")
		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(errTooManyAttempts.HTTPStatus, errTooManyAttempts.ToHTTPError())
			return
		}
		c.Next()
	}
}
