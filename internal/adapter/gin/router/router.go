package router

import (
	"net/http"

	"rest-user-service/internal/adapter/gin/handler"
	"rest-user-service/internal/adapter/gin/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter configures and returns a Gin router with all routes and
// middleware. Registration order is the nesting order: Recovery wraps
// BearerAuth wraps RateLimit wraps RequestLogger wraps the handlers, so
// panics anywhere inside surface at the recovery boundary and the logger
// only observes authenticated requests while seeing the final status.
func SetupRouter(
	userHandler *handler.UserHandler,
	rateLimiter *middleware.RateLimiter,
	authToken string,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Error boundary wraps everything, including health
	router.Use(middleware.Recovery(log))

	// Health check endpoint, outside the auth gate for liveness probes
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "rest-user-service",
		})
	})

	users := router.Group("/users",
		middleware.BearerAuth(authToken, log),
		middleware.RateLimit(rateLimiter, log),
		middleware.RequestLogger(log),
	)
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	return router
}
