package employee

import (
	"github.com/ipcode-cloud/epms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	employees := r.Group("/employees")

	employees.Use(middleware.AuthMiddleware())

	{
		employees.GET("", h.GetAll)
		employees.POST("", h.Create)
		employees.GET("/options", h.GetOptions)
		employees.GET("/:id", h.GetById)
		employees.PUT("/:id", h.Update)
		employees.DELETE("/:id", h.Delete)
	}
}
