package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"rest-user-service/pkg/logger"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serve := func(status int) (*observer.ObservedLogs, *httptest.ResponseRecorder) {
		core, logs := observer.New(zapcore.DebugLevel)
		r := gin.New()
		r.Use(RequestLogger(zap.New(core)))
		r.GET("/users", func(c *gin.Context) {
			c.Status(status)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users", nil)
		r.ServeHTTP(w, req)
		return logs, w
	}

	t.Run("Logs Start And Completion With Status", func(t *testing.T) {
		logs, _ := serve(http.StatusOK)

		started := logs.FilterMessage("request started").All()
		require.Len(t, started, 1)
		assert.Equal(t, "GET", started[0].ContextMap()["method"])
		assert.Equal(t, "/users", started[0].ContextMap()["path"])

		completed := logs.FilterMessage("request completed").All()
		require.Len(t, completed, 1)
		assert.Equal(t, int64(http.StatusOK), completed[0].ContextMap()["status"])
	})

	t.Run("Observes Error Statuses Too", func(t *testing.T) {
		logs, _ := serve(http.StatusNotFound)

		completed := logs.FilterMessage("request completed").All()
		require.Len(t, completed, 1)
		assert.Equal(t, int64(http.StatusNotFound), completed[0].ContextMap()["status"])
	})

	t.Run("Tags Request Context With Request Id", func(t *testing.T) {
		core, _ := observer.New(zapcore.DebugLevel)
		r := gin.New()
		r.Use(RequestLogger(zap.New(core)))

		var got string
		r.GET("/users", func(c *gin.Context) {
			got = logger.GetRequestID(c.Request.Context())
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users", nil)
		r.ServeHTTP(w, req)

		assert.NotEmpty(t, got)
	})

	t.Run("Both Log Lines Carry The Same Request Id", func(t *testing.T) {
		logs, _ := serve(http.StatusOK)

		started := logs.FilterMessage("request started").All()
		completed := logs.FilterMessage("request completed").All()
		require.Len(t, started, 1)
		require.Len(t, completed, 1)
		assert.Equal(t, started[0].ContextMap()["request_id"], completed[0].ContextMap()["request_id"])
	})
}
