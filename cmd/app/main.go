package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"scheduling/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	_ "time/tzdata"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	configs := getConfigs()

	db, err := cmd.OpenDatabase(configs)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Error closing notification producer", "error", err)
		}
	}()

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Error creating jobs: %v", err)
	}
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	router, err := app.CreateHTTPRouter()
	if err != nil {
		log.Fatalf("Error creating HTTP router: %v", err)
	}
	startWebServer(router, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using the process environment: %v", err)
	}

	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBDriver:                goDotEnvVariable("DB_DRIVER"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		SQLitePath:              goDotEnvVariable("SQLITE_PATH"),
		KafkaBrokers:            goDotEnvVariable("KAFKA_BROKERS"),
		KafkaScheduleEventTopic: goDotEnvVariable("KAFKA_SCHEDULE_EVENT_TOPIC"),
		JWTSecret:               goDotEnvVariable("JWT_SECRET"),
		PolicyFile:              goDotEnvVariable("POLICY_FILE"),
		AuthzPolicyFile:         goDotEnvVariable("AUTHZ_POLICY_FILE"),
		DispatchSpec:            goDotEnvVariable("DISPATCH_SPEC"),
		DispatchBatchSize:       intVariable("DISPATCH_BATCH_SIZE"),
		DispatchMaxAttempts:     intVariable("DISPATCH_MAX_ATTEMPTS"),
		DispatchClaimTimeout:    durationVariable("DISPATCH_CLAIM_TIMEOUT"),
		DispatchRunTimeout:      durationVariable("DISPATCH_RUN_TIMEOUT"),
	}
	if config.JWTSecret == "" {
		log.Fatalf("JWT_SECRET is required")
	}
	return config.WithDefaults()
}

func goDotEnvVariable(key string) string {
	return os.Getenv(key)
}

func intVariable(key string) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return v
}

func durationVariable(key string) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return 0
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return v
}

func startWebServer(e *echo.Echo, port string, logger *slog.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
