package middleware

import (
	"net/http"

	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequireEmployee rejects tokens whose employee_id is missing or not a UUID.
// Self-service routes key their state (idempotency, rate limits, aggregate
// locks) by this id, so it must be well formed before any handler runs.
func RequireEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetString("employee_id")
		if raw == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User tidak terautentikasi", nil)
			c.Abort()
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_EMPLOYEE_ID", "Format employee_id tidak valid", nil)
			c.Abort()
			return
		}

		// canonical form, so "ABC..." and "abc..." share one key
		c.Set("employee_id", id.String())
		c.Next()
	}
}
