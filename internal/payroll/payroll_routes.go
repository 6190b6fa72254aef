package payroll

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	jwtSecret string,
	logger *zap.Logger,
	rdb *redis.Client,
) {
	writers := middleware.RoleMiddleware(middleware.RoleAdmin, middleware.RoleHR)

	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware(jwtSecret))
	payrolls.Use(middleware.ContextLogger(logger))
	{
		payrolls.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.GetAll,
		)
		payrolls.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetById,
		)
		payrolls.GET("/:id/payslip/download",
			middleware.RateLimitByUser(2, 5),
			handler.DownloadPayslip,
		)

		payrolls.POST("",
			middleware.RateLimitByUser(1, 5),
			writers,
			middleware.Idempotency(rdb),
			handler.Create,
		)
		payrolls.POST("/generate",
			middleware.RateLimitByUser(0.2, 2),
			writers,
			middleware.Idempotency(rdb),
			handler.Generate,
		)
		payrolls.POST("/:id/payslip",
			middleware.RateLimitByUser(1, 5),
			writers,
			handler.RequestPayslip,
		)
		payrolls.PATCH("/:id",
			middleware.RateLimitByUser(1, 5),
			writers,
			handler.Update,
		)
		payrolls.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			writers,
			handler.Delete,
		)
	}
}
