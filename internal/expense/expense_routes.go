package expense

import (
	"github.com/gin-gonic/gin"

	"github.com/grehub24-dot/campusflow/internal/middleware"
	"github.com/grehub24-dot/campusflow/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	expenses := r.Group("/expenses")
	expenses.Use(middleware.AuthMiddleware())
	{
		expenses.GET("/categories", middleware.RBACAuthorize(rbacService, "expense", "read"), handler.GetCategories)
		expenses.GET("/entries", middleware.RBACAuthorize(rbacService, "expense", "read"), handler.GetEntries)
		expenses.POST("/entries", middleware.RBACAuthorize(rbacService, "expense", "create"), handler.CreateEntry)
	}
}
