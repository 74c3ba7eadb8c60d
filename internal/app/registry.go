package app

import (
	"database/sql"

	"github.com/ipcode-cloud/epms/internal/department"
	"github.com/ipcode-cloud/epms/internal/employee"
	"github.com/ipcode-cloud/epms/internal/messaging/kafka"
	"github.com/ipcode-cloud/epms/internal/middleware"
	"github.com/ipcode-cloud/epms/internal/salary"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	departmentService := department.NewService(db, departmentRepo, rdb)
	employeeService := employee.NewService(db, employeeRepo, rdb)
	salaryService := salary.NewServiceWithOutbox(db, salaryRepo, outboxRepo)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	salaryHandler := salary.NewHandler(salaryService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())
	api.Use(middleware.RateLimitByIP(20, 40))
	{
		department.RegisterRoutes(api, departmentHandler)
		employee.RegisterRoutes(api, employeeHandler)
		salary.RegisterRoutes(api, salaryHandler)
	}

	return nil
}
