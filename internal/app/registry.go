package app

import (
	"go-payroll/internal/afp"
	"go-payroll/internal/employee"
	"go-payroll/internal/healthplan"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payroll"
	"go-payroll/internal/payslip"
	"go-payroll/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func newPayrollService(cfg *config.Config, db *infra, store payslip.Store, logger *zap.Logger) payroll.Service {
	return payroll.NewService(
		db.sqlDB,
		payroll.NewRepository(db.gormDB),
		employee.NewRepository(db.gormDB),
		kafka.NewOutboxRepository(db.sqlDB),
		store,
		payroll.ServiceConfig{Workers: cfg.Payroll.GenerateWorkers},
		logger,
	)
}

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *infra,
	rdb *redis.Client,
	store payslip.Store,
) error {
	logger := zap.L()

	// --- Repositories ---
	afpRepo := afp.NewRepository(db.gormDB)
	employeeRepo := employee.NewRepository(db.gormDB)
	healthPlanRepo := healthplan.NewRepository(db.gormDB)

	// --- Services ---
	afpService := afp.NewService(db.sqlDB, afpRepo)
	employeeService := employee.NewService(db.sqlDB, employeeRepo, rdb, logger)
	healthPlanService := healthplan.NewService(db.sqlDB, healthPlanRepo, logger)
	payrollService := newPayrollService(cfg, db, store, logger)

	// --- Handlers ---
	afpHandler := afp.NewHandler(afpService)
	employeeHandler := employee.NewHandler(employeeService, logger)
	healthPlanHandler := healthplan.NewHandler(healthPlanService)
	payrollHandler := payroll.NewHandler(payrollService, rdb, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		afp.RegisterRoutes(api, afpHandler, cfg.JWT.Secret)
		employee.RegisterRoutes(api, employeeHandler, cfg.JWT.Secret, logger)
		healthplan.RegisterRoutes(api, healthPlanHandler, cfg.JWT.Secret)
		payroll.RegisterRoutes(api, payrollHandler, cfg.JWT.Secret, logger, rdb)
	}

	return nil
}
