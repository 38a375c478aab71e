package app

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/grehub24-dot/campusflow/internal/billing"
	"github.com/grehub24-dot/campusflow/internal/expense"
	"github.com/grehub24-dot/campusflow/internal/feeitem"
	"github.com/grehub24-dot/campusflow/internal/feestructure"
	"github.com/grehub24-dot/campusflow/internal/messaging/kafka"
	"github.com/grehub24-dot/campusflow/internal/middleware"
	"github.com/grehub24-dot/campusflow/internal/payment"
	"github.com/grehub24-dot/campusflow/internal/payroll"
	"github.com/grehub24-dot/campusflow/internal/rbac"
	"github.com/grehub24-dot/campusflow/internal/rbac/infra"
	"github.com/grehub24-dot/campusflow/internal/shared/counter"
	"github.com/grehub24-dot/campusflow/internal/staff"
	"github.com/grehub24-dot/campusflow/internal/student"
	"github.com/grehub24-dot/campusflow/internal/term"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	termRepo := term.NewRepository(gormDB)
	feeItemRepo := feeitem.NewRepository(gormDB)
	feeStructureRepo := feestructure.NewRepository(gormDB)
	studentRepo := student.NewRepository(gormDB)
	paymentRepo := payment.NewRepository(gormDB)
	billingRepo := billing.NewRepository(gormDB)
	staffRepo := staff.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	expenseRepo := expense.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	admissionPrefix := os.Getenv("ADMISSION_PREFIX")
	if admissionPrefix == "" {
		admissionPrefix = "CF"
	}

	// --- Services ---
	termService := term.NewService(db, termRepo)
	feeItemService := feeitem.NewService(feeItemRepo)
	feeStructureService := feestructure.NewService(db, feeStructureRepo)
	studentService := student.NewService(db, studentRepo, outboxRepo, admissionPrefix)
	paymentService := payment.NewService(paymentRepo, counterRepo)
	billingService := billing.NewService(billingRepo)
	staffService := staff.NewService(staffRepo)
	payrollService := payroll.NewService(db, payrollRepo, staffRepo, expenseRepo, outboxRepo)
	expenseService := expense.NewService(expenseRepo)

	// --- Handlers ---
	termHandler := term.NewHandler(termService)
	feeItemHandler := feeitem.NewHandler(feeItemService)
	feeStructureHandler := feestructure.NewHandler(feeStructureService)
	studentHandler := student.NewHandler(studentService)
	paymentHandler := payment.NewHandler(paymentService)
	billingHandler := billing.NewHandler(billingService)
	staffHandler := staff.NewHandler(staffService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	expenseHandler := expense.NewHandler(expenseService)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())
	{
		term.RegisterRoutes(api, termHandler, rbacService)
		feeitem.RegisterRoutes(api, feeItemHandler, rbacService)
		feestructure.RegisterRoutes(api, feeStructureHandler, rbacService)
		student.RegisterRoutes(api, studentHandler, rbacService)
		payment.RegisterRoutes(api, paymentHandler, rbacService)
		billing.RegisterRoutes(api, billingHandler, rbacService, zap.L())
		staff.RegisterRoutes(api, staffHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb, zap.L())
		expense.RegisterRoutes(api, expenseHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
