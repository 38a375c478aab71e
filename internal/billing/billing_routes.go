package billing

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/grehub24-dot/campusflow/internal/middleware"
	"github.com/grehub24-dot/campusflow/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	invoices := r.Group("/billing")
	invoices.Use(middleware.AuthMiddleware())
	invoices.Use(middleware.ContextLogger(logger))
	{
		invoices.GET("/invoices",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "billing", "read"),
			handler.GetOutstanding,
		)
		invoices.GET("/students/:studentId/invoice",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "billing", "read"),
			handler.GetInvoice,
		)
		invoices.GET("/dashboard",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "billing", "read"),
			handler.GetDashboard,
		)
	}
}
