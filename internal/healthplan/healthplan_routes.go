package healthplan

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, jwtSecret string) {
	plans := r.Group("/health-plans")
	plans.Use(middleware.AuthMiddleware(jwtSecret))

	plans.GET("", h.GetAll)
	plans.GET("/:id", h.GetByID)

	admin := plans.Group("", middleware.RoleMiddleware(middleware.RoleAdmin))
	admin.POST("", h.Create)
	admin.PATCH("/:id", h.Update)
	admin.DELETE("/:id", h.Delete)
}
