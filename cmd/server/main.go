package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/cache"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/config"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/events"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/handlers"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/models"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/repositories/postgres"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/seed"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/services"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/utils"
	"github.com/rishi-1234-cpu/ExamPortalApi/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
	} else {
		logger = utils.NewDevelopmentLogger()
	}

	logger.Info("Starting exam portal API",
		"port", cfg.Port,
		"environment", cfg.Environment)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(&models.Exam{}, &models.Question{}, &models.Result{}); err != nil {
		logger.Error("Failed to migrate schema", "error", err)
		os.Exit(1)
	}

	validator := utils.NewValidator()
	examRepo := postgres.NewExamPostgreSQL(db)
	resultRepo := postgres.NewResultPostgreSQL(db)

	// Seeding must finish before any endpoint becomes reachable
	if err := seed.NewSeeder(examRepo, logger).Seed(context.Background()); err != nil {
		logger.Error("Failed to seed catalog", "error", err)
		os.Exit(1)
	}

	// The service degrades to uncached reads when Redis is unreachable
	cacheService := cache.NewNoopCache()
	if redisClient, err := pkg.NewRedisClient(cfg); err != nil {
		logger.Warn("Redis unavailable, exam caching disabled", "error", err)
	} else {
		defer redisClient.Close()
		cacheService = cache.NewRedisCache(redisClient, logger)
	}

	var publisher events.EventPublisher = events.NewNoopEventPublisher()
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := events.NewKafkaEventPublisher(events.PublisherConfig{
			KafkaBrokers: cfg.KafkaBrokers,
			TopicName:    cfg.ResultsTopic,
			Logger:       utils.ToSlogLogger(logger),
		})
		if err != nil {
			logger.Error("Failed to create event publisher", "error", err)
			os.Exit(1)
		}
		publisher = kafkaPublisher
	}
	defer publisher.Close()

	examService := services.NewExamService(examRepo, cacheService, logger)
	evaluationService := services.NewEvaluationService()
	resultService := services.NewResultService(resultRepo, publisher, cfg.AdminKey, logger)
	exportService := services.NewExportService(resultService, logger)

	examHandler := handlers.NewExamHandler(examService, evaluationService, resultService, validator, logger)
	adminHandler := handlers.NewAdminHandler(resultService, exportService, logger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.LoggerMiddleware(logger), gin.Recovery())
	handlers.NewHandlerManager(examHandler, adminHandler).SetupRoutes(router, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("Shutting down", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("Shutdown complete")
}
