package term

import (
	"github.com/gin-gonic/gin"

	"github.com/grehub24-dot/campusflow/internal/middleware"
	"github.com/grehub24-dot/campusflow/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	terms := r.Group("/terms")
	terms.Use(middleware.AuthMiddleware())
	{
		terms.GET("", middleware.RBACAuthorize(rbacService, "terms", "read"), handler.GetAll)
		terms.GET("/current", middleware.RBACAuthorize(rbacService, "terms", "read"), handler.GetCurrent)
		terms.GET("/:id", middleware.RBACAuthorize(rbacService, "terms", "read"), handler.GetById)
		terms.POST("", middleware.RBACAuthorize(rbacService, "terms", "create"), handler.Create)
		terms.PUT("/:id", middleware.RBACAuthorize(rbacService, "terms", "update"), handler.Update)
		terms.POST("/:id/set-current", middleware.RBACAuthorize(rbacService, "terms", "update"), handler.SetCurrent)
		terms.DELETE("/:id", middleware.RBACAuthorize(rbacService, "terms", "delete"), handler.Delete)
	}
}
