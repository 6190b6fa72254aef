package app

import (
	"database/sql"
	"strings"

	"go-payroll/internal/middleware"
	"go-payroll/internal/payslip"
	"go-payroll/internal/shared/config"
	"go-payroll/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// infra holds the connections shared by the api, worker and consumer.
type infra struct {
	gormDB *gorm.DB
	sqlDB  *sql.DB
}

func connectDatabase(cfg *config.Config) (*infra, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), cfg.Database.MaxRetries)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	return &infra{gormDB: gormDB, sqlDB: sqlDB}, nil
}

// BuildApp connects the infrastructure and registers every module on router.
// The returned cleanup closes the connections it opened.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app")

	db, err := connectDatabase(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
	if err != nil {
		_ = db.sqlDB.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	store, err := payslip.NewStore(cfg.Payslip, logger)
	if err != nil {
		_ = redisClient.Close()
		_ = db.sqlDB.Close()
		return nil, err
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(cfg.HTTP.RateLimitRPS), cfg.HTTP.RateLimitBurst))
	servePayslipFiles(router, store, cfg.Payslip.PublicBaseURL)

	if err := registerModules(router, cfg, db, redisClient, store); err != nil {
		_ = redisClient.Close()
		_ = db.sqlDB.Close()
		return nil, err
	}

	cleanup := func() {
		_ = redisClient.Close()
		_ = db.sqlDB.Close()
	}
	return cleanup, nil
}

// servePayslipFiles exposes the local payslip directory when payslips are
// stored on disk under a relative public path.
func servePayslipFiles(router *gin.Engine, store payslip.Store, publicBaseURL string) {
	local, ok := store.(*payslip.LocalStore)
	if !ok || !strings.HasPrefix(publicBaseURL, "/") {
		return
	}
	router.Static(strings.TrimRight(publicBaseURL, "/"), local.Dir())
}

