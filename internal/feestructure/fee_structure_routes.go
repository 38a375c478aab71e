package feestructure

import (
	"github.com/gin-gonic/gin"

	"github.com/grehub24-dot/campusflow/internal/middleware"
	"github.com/grehub24-dot/campusflow/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	structures := r.Group("/fee-structures")
	structures.Use(middleware.AuthMiddleware())
	{
		structures.GET("", middleware.RBACAuthorize(rbacService, "fee-structures", "read"), handler.GetAll)
		structures.GET("/:id", middleware.RBACAuthorize(rbacService, "fee-structures", "read"), handler.GetById)
		structures.POST("", middleware.RBACAuthorize(rbacService, "fee-structures", "create"), handler.Create)
		structures.PUT("/:id", middleware.RBACAuthorize(rbacService, "fee-structures", "update"), handler.Update)
		structures.DELETE("/:id", middleware.RBACAuthorize(rbacService, "fee-structures", "delete"), handler.Delete)
	}
}
