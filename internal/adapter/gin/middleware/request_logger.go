package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"rest-user-service/pkg/logger"
)

// RequestLogger returns the innermost middleware before the handler. It tags
// the request context with a generated request id, logs method and path on
// the way in, and logs the final response status on the way out. It never
// short-circuits; error statuses written by the handler are observed and
// logged the same as successes. Panics bypass it and are handled by Recovery.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, requestID)
		c.Request = c.Request.WithContext(ctx)

		reqLog := log.With(zap.String("request_id", requestID))

		reqLog.Info("request started",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)

		c.Next()

		reqLog.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}
