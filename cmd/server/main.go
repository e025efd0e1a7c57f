package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expense-capture/internal/config"
	"expense-capture/internal/database"
	"expense-capture/internal/handlers"
	"expense-capture/internal/middleware"
	"expense-capture/internal/models"
	"expense-capture/internal/repositories"
	"expense-capture/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// values in .env win over the inherited environment
	if err := godotenv.Overload(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter := middleware.NewRateLimiter(cfg.Security)
	go limiter.Run(ctx)

	e := newServer(cfg, db, logger, limiter)

	go func() {
		logger.Info("server starting", slog.String("address", cfg.Address()), slog.String("env", cfg.Server.Environment))
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.String("error", err.Error()))
	}
}

func newServer(cfg *config.Config, db *database.DB, logger *slog.Logger, limiter *middleware.RateLimiter) *echo.Echo {
	metrics := services.NewPrometheusMetrics()
	pipelineLogger := services.NewPipelineLogger(logger)

	breakerConfig := services.DefaultCircuitBreakerConfig()
	breakerConfig.OnStateChange = func(from, to models.CircuitBreakerState) {
		pipelineLogger.LogCircuitBreakerStateChange(context.Background(), "llm", from, to)
		metrics.RecordGauge(services.MetricCircuitBreakerState, float64(to), map[string]string{"service": "llm"})
	}
	metrics.RecordGauge(services.MetricCircuitBreakerState, float64(services.StateClosed), map[string]string{"service": "llm"})

	expenseRepo := repositories.NewExpenseRepository(db.DB)
	correctionRepo := repositories.NewCorrectionRepository(db.DB)

	extraction := services.NewExtractionService(
		services.NewLLMClient(&cfg.LLM, logger),
		services.NewCategoryMatcher(),
		services.NewCircuitBreaker(breakerConfig),
		metrics,
		pipelineLogger,
	)
	ingestion := services.NewIngestionService(
		expenseRepo,
		extraction,
		services.NewTranscriptionService(&cfg.Transcription, metrics, logger),
		services.NewAudioStorage(&cfg.Storage),
		metrics,
		pipelineLogger,
	)
	corrections := services.NewCorrectionService(expenseRepo, correctionRepo, metrics, pipelineLogger)
	queries := services.NewExpenseQueryService(expenseRepo, time.Local)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(limiter.Middleware())
	e.Use(middleware.SecurityHeaders(cfg.Storage.AudioPublicPath))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.Server.CORSAllowOrigins}))
	// multipart overhead on top of the audio limit
	e.Use(echomw.BodyLimit(fmt.Sprintf("%dK", cfg.Storage.MaxAudioBytes/1024+512)))

	handlers.RegisterRoutes(e,
		handlers.NewExpenseHandler(ingestion, queries),
		handlers.NewCorrectionHandler(corrections),
		handlers.NewHealthCheckHandler(db.DB),
	)
	e.Static(cfg.Storage.AudioPublicPath, cfg.Storage.AudioDir)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
