package afp

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, jwtSecret string) {
	afps := r.Group("/afps")
	afps.Use(middleware.AuthMiddleware(jwtSecret))
	{
		afps.GET("", h.GetAll)
		afps.GET("/:id", h.GetByID)
		afps.POST("", middleware.RoleMiddleware(middleware.RoleAdmin), h.Create)
		afps.PATCH("/:id", middleware.RoleMiddleware(middleware.RoleAdmin), h.Update)
		afps.DELETE("/:id", middleware.RoleMiddleware(middleware.RoleAdmin), h.Delete)
	}
}
