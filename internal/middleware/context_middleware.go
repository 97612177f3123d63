package middleware

import (
	"go-hrm/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger pushes the authenticated caller into the request context
// together with a logger pre-tagged with request, user and employee ids.
// It runs after AuthMiddleware; RequestID is installed on the router.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		rid := c.GetString("request_id")
		if rid == "" {
			rid = contextutil.GetRequestID(ctx)
		}
		uid := c.GetString("user_id")
		eid := c.GetString("employee_id")

		fields := []zap.Field{zap.String("request_id", rid), zap.String("employee_id", eid)}
		if uid != "" {
			fields = append(fields, zap.String("user_id", uid))
		}

		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithUserID(ctx, uid)
		ctx = contextutil.WithEmployeeID(ctx, eid)
		ctx = contextutil.WithLogger(ctx, logger.With(fields...))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
