package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autoservice/cmd"
	"autoservice/internal/adapters/out/postgres"
	"autoservice/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	zapLogger, err := logger.New(configs.LogMode)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	gormDB, err := gorm.Open(gormpostgres.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, zapLogger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Error creating jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	startWebServer(&app, configs.HTTPPort, zapLogger)

	jobManager.StopAll()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = app.Close(ctx); err != nil {
		zapLogger.Warn("Shutdown finished with errors", zap.Error(err))
	}
}

func getConfigs() cmd.Config {
	// The .env file is optional; real environment variables take precedence.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnv("DB_PORT", "5432"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              os.Getenv("DB_SSLMODE"),
		LogMode:                os.Getenv("LOG_MODE"),
		LowStockThreshold:      os.Getenv("LOW_STOCK_THRESHOLD"),
		InventoryAuditSchedule: os.Getenv("INVENTORY_AUDIT_SCHEDULE"),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: getEnv("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		KafkaPartChangedTopic:  getEnv("KAFKA_PART_CHANGED_TOPIC", "part.changed"),
		OtelTracesStdout:       os.Getenv("OTEL_TRACES_STDOUT"),
	}
	return config
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func startWebServer(app *cmd.CompositionRoot, port string, zapLogger *zap.Logger) {
	e := app.CreateRouter()

	go func() {
		zapLogger.Info("HTTP server starting", zap.String("port", port))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("HTTP server shutdown failed", zap.Error(err))
	}
}
