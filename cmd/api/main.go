package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/justsurfingit/devjobs/internal/cache"
	rediscache "github.com/justsurfingit/devjobs/internal/cache/redis"
	"github.com/justsurfingit/devjobs/internal/config"
	"github.com/justsurfingit/devjobs/internal/database"
	"github.com/justsurfingit/devjobs/internal/events"
	"github.com/justsurfingit/devjobs/internal/handlers"
	"github.com/justsurfingit/devjobs/internal/services"
	"github.com/justsurfingit/devjobs/internal/telemetry"
)

const (
	serviceName    = "devjobs"
	serviceVersion = "1.0.0"
)

func main() {
	// 1. Load configuration
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// 2. Tracing, only when a collector is configured
	if cfg.OTELCollectorURL != "" {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			ServiceName:    serviceName,
			ServiceVersion: serviceVersion,
			Environment:    cfg.Environment,
			CollectorURL:   cfg.OTELCollectorURL,
			SampleRatio:    cfg.TraceSampleRatio,
		}, logger)
		if err != nil {
			logger.Warn("tracing disabled", zap.Error(err))
		} else {
			defer func() {
				flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(flushCtx); err != nil {
					logger.Warn("flushing traces", zap.Error(err))
				}
			}()
		}
	}

	// 3. Database connection
	db, err := database.Connect(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	store := database.NewJobStore(db)
	checks := map[string]handlers.Pinger{"database": store}

	// 4. Optional collaborators: cache and event broker
	var locationsCache cache.Cache
	if cfg.RedisAddr != "" {
		opts := cache.DefaultOptions()
		opts.Addr = cfg.RedisAddr
		opts.Password = cfg.RedisPassword
		opts.DB = cfg.RedisDB
		opts.DefaultTTL = cfg.CacheTTL
		rc := rediscache.New(opts)
		defer rc.Close()
		locationsCache = rc
		checks["cache"] = rc
	}

	var publisher events.Publisher = events.Discard{}
	if cfg.NATSURL != "" {
		publisher, err = events.NewPublisher(logger, cfg.NATSURL, cfg.NATSConnTimeout)
		if err != nil {
			logger.Fatal("connecting to NATS", zap.Error(err))
		}
	}
	defer publisher.Close()

	// 5. Initialize core services
	jobService := services.NewJobService(store, locationsCache, publisher, logger, cfg.CacheTTL)

	var llmService *services.LLMService
	if cfg.GeminiAPIKey != "" {
		llmService, err = services.NewLLMService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("posting extraction disabled", zap.Error(err))
			llmService = nil
		}
	} else {
		logger.Info("GEMINI_API_KEY not set, posting extraction disabled")
	}

	// 6. Initialize handlers and router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	jobHandler := handlers.NewJobHandler(jobService, llmService, logger)
	healthHandler := handlers.NewHealthHandler(checks)
	r := handlers.NewRouter(handlers.RouterConfig{
		CORSOrigins:    cfg.CORSOrigins,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}, jobHandler, healthHandler, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 7. Serve until interrupted
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
