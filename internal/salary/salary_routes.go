package salary

import (
	"github.com/ipcode-cloud/epms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	salaries := r.Group("/salaries")

	salaries.Use(middleware.AuthMiddleware())

	{
		salaries.GET("", h.GetAll)
		salaries.POST("", h.Record)
		// /monthly harus terdaftar sebelum /:id
		salaries.GET("/monthly", h.Monthly)
		salaries.GET("/:id", h.GetById)
		salaries.PUT("/:id", h.Amend)
		salaries.DELETE("/:id", h.Delete)
	}
}
