package payroll

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/grehub24-dot/campusflow/internal/middleware"
	"github.com/grehub24-dot/campusflow/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	runs := r.Group("/payroll")
	runs.Use(middleware.AuthMiddleware())
	runs.Use(middleware.ContextLogger(logger))
	{
		runs.GET("/settings", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetSettings)
		runs.PUT("/settings", middleware.RBACAuthorize(rbacService, "payroll", "update"), handler.UpdateSettings)
		runs.POST("/runs",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "payroll", "create"),
			middleware.Idempotency(rdb),
			handler.Run,
		)
		runs.GET("/runs", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetRuns)
		runs.GET("/runs/:id", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetRunById)
		runs.GET("/runs/:id/payslips/:staffId/pdf", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetPayslipPDF)
	}
}
