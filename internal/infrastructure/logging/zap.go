package logging

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// New builds the process logger: JSON to stderr in live mode, console output otherwise.
func New(live bool) (*zap.Logger, error) {
	if live {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// GinMiddleware logs one line per request. Request bodies are never logged since
// acceptance requests carry tokens and codes.
func GinMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			logger.Error("request", fields...)
		case status >= 400:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}

// GinRecovery turns panics into a bare 500 and logs the recovered value.
func GinRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("route", c.FullPath()))
		c.AbortWithStatus(500)
	})
}
