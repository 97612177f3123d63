package sensitiverequest

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	auth gin.HandlerFunc,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	me := r.Group("/employees/me/sensitive-update-requests")
	me.Use(auth)
	me.Use(middleware.RequireEmployee())
	me.Use(middleware.ContextLogger(logger))
	{
		me.POST("",
			middleware.RateLimitByUser(0.2, 2),
			middleware.Idempotency(rdb, logger),
			handler.Submit,
		)

		me.POST("/verify",
			middleware.RateLimitByUser(0.5, 5),
			handler.Verify,
		)
	}

	hr := r.Group("/hr/sensitive-requests")
	hr.Use(auth)
	hr.Use(middleware.ContextLogger(logger))
	{
		hr.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "sensitive_request", "read"),
			handler.List,
		)

		hr.GET("/:groupId",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "sensitive_request", "read"),
			handler.GetByID,
		)

		hr.POST("/:groupId/approve",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "sensitive_request", "decide"),
			handler.Approve,
		)

		hr.POST("/:groupId/reject",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "sensitive_request", "decide"),
			handler.Reject,
		)
	}
}
