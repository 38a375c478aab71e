package payment

import (
	"github.com/gin-gonic/gin"

	"github.com/grehub24-dot/campusflow/internal/middleware"
	"github.com/grehub24-dot/campusflow/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	payments := r.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.GET("", middleware.RBACAuthorize(rbacService, "payments", "read"), handler.GetAll)
		payments.POST("", middleware.RBACAuthorize(rbacService, "payments", "create"), handler.Create)
	}
}
