package rbac

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc, logger *zap.Logger) {
	group := r.Group("/rbac")
	group.Use(auth)
	group.Use(middleware.ContextLogger(logger))
	{
		group.POST("/enforce", middleware.RateLimitByUser(5, 20), handler.Enforce)
		group.GET("/me/permissions", middleware.RateLimitByUser(3, 10), handler.MyPermissions)
	}
}
