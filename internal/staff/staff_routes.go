package staff

import (
	"github.com/gin-gonic/gin"

	"github.com/grehub24-dot/campusflow/internal/middleware"
	"github.com/grehub24-dot/campusflow/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	members := r.Group("/staff")
	members.Use(middleware.AuthMiddleware())
	{
		members.GET("", middleware.RBACAuthorize(rbacService, "staff", "read"), handler.GetAll)
		members.GET("/:id", middleware.RBACAuthorize(rbacService, "staff", "read"), handler.GetById)
		members.POST("", middleware.RBACAuthorize(rbacService, "staff", "create"), handler.Create)
		members.PUT("/:id", middleware.RBACAuthorize(rbacService, "staff", "update"), handler.Update)
		members.DELETE("/:id", middleware.RBACAuthorize(rbacService, "staff", "delete"), handler.Delete)
	}
}
