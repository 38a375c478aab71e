package feeitem

import (
	"github.com/gin-gonic/gin"

	"github.com/grehub24-dot/campusflow/internal/middleware"
	"github.com/grehub24-dot/campusflow/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	items := r.Group("/fee-items")
	items.Use(middleware.AuthMiddleware())
	{
		items.GET("", middleware.RBACAuthorize(rbacService, "fee-items", "read"), handler.GetAll)
		items.GET("/:id", middleware.RBACAuthorize(rbacService, "fee-items", "read"), handler.GetById)
		items.POST("", middleware.RBACAuthorize(rbacService, "fee-items", "create"), handler.Create)
		items.PUT("/:id", middleware.RBACAuthorize(rbacService, "fee-items", "update"), handler.Update)
		items.DELETE("/:id", middleware.RBACAuthorize(rbacService, "fee-items", "delete"), handler.Delete)
	}
}
