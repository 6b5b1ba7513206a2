package app

import (
	"net/http"

	"github.com/SankalpGoel/HRMS-Lite/internal/attendance"
	"github.com/SankalpGoel/HRMS-Lite/internal/employee"
	"github.com/SankalpGoel/HRMS-Lite/internal/messaging/kafka"
	"github.com/SankalpGoel/HRMS-Lite/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to HRMS Lite API",
			"version": "1.0.0",
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Repositories ---
	employeeRepo := employee.NewRepository(db)
	attendanceRepo := attendance.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb)
	attendanceService := attendance.NewService(db, attendanceRepo, employeeRepo)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		employee.RegisterRoutes(api, employeeHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
	}

	return nil
}
