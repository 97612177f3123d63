package eventstore

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	auth gin.HandlerFunc,
	logger *zap.Logger,
) {
	hr := r.Group("/hr/employees/:id")
	hr.Use(auth)
	hr.Use(middleware.ContextLogger(logger))
	hr.Use(middleware.RBACAuthorize(rbacService, "employee_event", "read"))
	{
		hr.GET("/events", middleware.RateLimitByUser(2, 5), handler.History)
		hr.GET("/replay", middleware.RateLimitByUser(1, 3), handler.Replay)
	}
}
