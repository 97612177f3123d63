package employee

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
	me := r.Group("/employees/me")
	me.Use(auth)
	me.Use(middleware.RequireEmployee())
	me.Use(middleware.ContextLogger(logger))
	{
		me.GET("/profile",
			middleware.RateLimitByUser(3, 10),
			handler.GetMyProfile,
		)

		me.PUT("/basic-info",
			middleware.RateLimitByUser(0.5, 2),
			handler.UpdateBasicInfo,
		)
	}

	hr := r.Group("/hr/employees")
	hr.Use(auth)
	hr.Use(middleware.ContextLogger(logger))
	{
		hr.POST("",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			handler.Create,
		)
	}
}
