// Package main provides the entrypoint for the aqview API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/aqview/aqview/internal/api"
	"github.com/aqview/aqview/internal/api/middleware"
	"github.com/aqview/aqview/internal/database"
	"github.com/aqview/aqview/internal/forecast"
	"github.com/aqview/aqview/internal/measurement"
	"github.com/aqview/aqview/internal/region"
	"github.com/aqview/aqview/internal/seed"
	"github.com/aqview/aqview/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "aqview-api"

	// Optional .env file for local development
	_ = godotenv.Load()

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting aqview API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	corsOrigins := strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",")
	if len(corsOrigins) == 1 && corsOrigins[0] == "" {
		corsOrigins = []string{"*"}
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        os.Getenv("OTEL_ENABLED") == "true",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Open the embedded store
	dbConfig := database.ConfigFromEnv()
	db, err := database.Open(ctx, dbConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()
	log.Info().Str("path", dbConfig.Path).Msg("database opened")

	// Create tables, then seed demo data. Both are fatal on error: the
	// service has nothing to serve from a half-initialized store.
	if err := database.InitSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize schema")
	}
	log.Info().Msg("schema initialized")

	regionRepo := region.NewSQLiteRepository(db)
	measurementRepo := measurement.NewSQLiteRepository(db)
	forecastRepo := forecast.NewSQLiteRepository(db)

	seeder := seed.New(seed.Config{
		Regions:      regionRepo,
		Measurements: measurementRepo,
		Forecasts:    forecastRepo,
		Logger:       log,
	})
	if err := seeder.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed demo data")
	}

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:        Version,
		BuildTime:      BuildTime,
		Logger:         log,
		Metrics:        metrics,
		AllowedOrigins: corsOrigins,
		Regions:        regionRepo,
		Measurements:   measurementRepo,
		Forecasts:      forecastRepo,
		Explainer:      forecast.NewService(forecastRepo),
		StorePing:      db.PingContext,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
