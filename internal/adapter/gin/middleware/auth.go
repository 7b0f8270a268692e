package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BearerAuth returns middleware gating every route behind a single accepted
// bearer token. The "Bearer " prefix is stripped when present, so a bare
// token in the Authorization header is accepted too. On a missing or wrong
// token the request is aborted with 401 before any inner stage runs.
//
// This is a placeholder single-token check, not a real credential system.
func BearerAuth(token string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

		if supplied == "" || supplied != token {
			log.Warn("unauthorized request",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			return
		}

		c.Next()
	}
}
