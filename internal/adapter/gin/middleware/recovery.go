package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery returns the outermost middleware: a panic boundary that converts
// any failure escaping the inner stages into an opaque 500. The panic value
// and stack are logged; no failure detail reaches the client. Handlers carry
// their own error translation as well, so this boundary only fires for
// faults they failed to catch themselves.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered in request pipeline",
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Any("panic", r),
					zap.Stack("stack"),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error.",
				})
			}
		}()

		c.Next()
	}
}
