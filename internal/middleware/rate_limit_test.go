package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func rateLimitedRouter(rps float64, b int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/limited",
		func(c *gin.Context) {
			if eid := c.GetHeader("X-Test-Employee"); eid != "" {
				c.Set("employee_id", eid)
			}
			c.Next()
		},
		middleware.RateLimitByUser(rate.Limit(rps), b),
		func(c *gin.Context) { c.Status(http.StatusNoContent) },
	)
	return router
}

func hit(r *gin.Engine, employeeID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	if employeeID != "" {
		req.Header.Set("X-Test-Employee", employeeID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitByUser(t *testing.T) {
	t.Run("burst then 429 with retry-after", func(t *testing.T) {
		r := rateLimitedRouter(0.001, 2)

		assert.Equal(t, http.StatusNoContent, hit(r, "emp-1").Code)
		assert.Equal(t, http.StatusNoContent, hit(r, "emp-1").Code)

		w := hit(r, "emp-1")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))

		var env struct {
			Ok    bool `json:"ok"`
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
		assert.Equal(t, "RATE_LIMITED", env.Error.Code)
	})

	t.Run("buckets are per employee", func(t *testing.T) {
		r := rateLimitedRouter(0.001, 1)

		assert.Equal(t, http.StatusNoContent, hit(r, "emp-1").Code)
		assert.Equal(t, http.StatusTooManyRequests, hit(r, "emp-1").Code)
		assert.Equal(t, http.StatusNoContent, hit(r, "emp-2").Code)
	})

	t.Run("anonymous passes through", func(t *testing.T) {
		r := rateLimitedRouter(0.001, 1)

		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusNoContent, hit(r, "").Code)
		}
	})
}
