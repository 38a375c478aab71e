package student

import (
	"github.com/gin-gonic/gin"

	"github.com/grehub24-dot/campusflow/internal/middleware"
	"github.com/grehub24-dot/campusflow/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	students := r.Group("/students")
	students.Use(middleware.AuthMiddleware())
	{
		students.GET("", middleware.RBACAuthorize(rbacService, "students", "read"), handler.GetAll)
		students.GET("/:id", middleware.RBACAuthorize(rbacService, "students", "read"), handler.GetById)
		students.POST("/admit", middleware.RBACAuthorize(rbacService, "students", "create"), handler.Admit)
		students.PUT("/:id", middleware.RBACAuthorize(rbacService, "students", "update"), handler.Update)
		students.DELETE("/:id", middleware.RBACAuthorize(rbacService, "students", "delete"), handler.Delete)
	}
}
