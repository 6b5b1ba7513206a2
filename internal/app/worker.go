package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SankalpGoel/HRMS-Lite/internal/messaging/kafka"
	"github.com/SankalpGoel/HRMS-Lite/internal/messaging/kafka/producer"
	"github.com/SankalpGoel/HRMS-Lite/internal/shared/connection"

	"go.uber.org/zap"
)

func RunWorker() error {
	logger := zap.L().Named("app.worker")

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

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&kafka.OutboxEvent{}); err != nil {
		return err
	}

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return fmt.Errorf("KAFKA_BROKERS is required")
	}

	writer := producer.NewWriter(brokers)
	defer writer.Close()

	outboxRepo := kafka.NewOutboxRepository(db)

	pollInterval := 3 * time.Second
	if raw := os.Getenv("OUTBOX_POLL_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid OUTBOX_POLL_INTERVAL %q: %w", raw, err)
		}
		pollInterval = parsed
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(ctx, outboxRepo, writer, logger, pollInterval)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
