package main

import (
	"context"
	"go-contact-form/config"
	_ "go-contact-form/docs" // Important for Swagger
	"go-contact-form/internal/contactform"
	"go-contact-form/internal/delivery/http/middleware"
	v1 "go-contact-form/internal/delivery/http/v1"
	"go-contact-form/internal/repository/memory"
	"go-contact-form/internal/usecase"
	"go-contact-form/pkg/logger"
	"go-contact-form/pkg/validation"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title           Contact Form API
// @version         1.0
// @description     Server-side contact form: mount, change fields, submit.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	closer := logger.Init(logger.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	defer closer.Close()
	logger.Log.Info("Starting contact form server", "port", cfg.Port)

	gin.SetMode(cfg.GinMode)

	// Background loops stop with the server
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// 3. Setup Repository
	formRepo := memory.NewFormRepository(cfg.FormMaxInstances, cfg.FormInstanceTTL)
	formRepo.StartCleanup(bgCtx, cfg.FormCleanupInterval)

	// 4. Setup UseCases
	validate, err := validation.New()
	if err != nil {
		logger.Log.Error("Failed to set up validation", "error", err)
		os.Exit(1)
	}
	contactUC := usecase.NewContactFormUsecase(formRepo, contactform.NewValidator(validate))
	healthUC := usecase.NewHealthUsecase(formRepo, cfg.FormMaxInstances)

	// 5. Setup Rate Limiter
	rlConfig := middleware.DefaultRateLimitConfig()
	rlConfig.RPS = cfg.RateLimitRPS
	rlConfig.Burst = cfg.RateLimitBurst
	rateLimiter := middleware.NewRateLimiter(rlConfig)
	rateLimiter.StartCleanup(bgCtx)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:   contactUC,
		HealthUC:    healthUC,
		RateLimiter: rateLimiter,
		Config:      cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting", "open_forms", formRepo.Len())
}
