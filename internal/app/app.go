package app

import (
	"os"

	"github.com/SankalpGoel/HRMS-Lite/internal/attendance"
	"github.com/SankalpGoel/HRMS-Lite/internal/employee"
	"github.com/SankalpGoel/HRMS-Lite/internal/messaging/kafka"
	"github.com/SankalpGoel/HRMS-Lite/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	db, err := connection.OpenGORMWithRetry(connection.DBConfig{
		Driver:     os.Getenv("DB_DRIVER"),
		Host:       os.Getenv("DB_HOST"),
		User:       os.Getenv("DB_USER"),
		Password:   os.Getenv("DB_PASSWORD"),
		Name:       os.Getenv("DB_NAME"),
		Port:       os.Getenv("DB_PORT"),
		SSLMode:    os.Getenv("DB_SSLMODE"),
		SQLitePath: os.Getenv("SQLITE_PATH"),
	}, 5)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if err := db.AutoMigrate(
		&employee.Employee{},
		&attendance.Attendance{},
		&kafka.OutboxEvent{},
	); err != nil {
		return err
	}
	logger.Info("database schema migrated")

	// Redis is optional; the employee list falls through to the database
	// when no cache is configured.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
		logger.Info("redis connection established", zap.String("addr", addr))
	}

	return registerModules(router, db, rdb)
}
