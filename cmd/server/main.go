package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"wildrydes/internal/config"
	handlers "wildrydes/internal/handlers/shared"
	"wildrydes/internal/middleware"
	dynamorepo "wildrydes/internal/repositories/dynamodb"
	"wildrydes/internal/services"
	"wildrydes/pkg/cache"
	"wildrydes/pkg/database"
	"wildrydes/pkg/logger"
	"wildrydes/pkg/notify"
	"wildrydes/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Storage engine
	db, err := database.NewDynamoDB(&database.DynamoConfig{
		TableName:      cfg.Storage.TableName,
		Region:         cfg.Storage.Region,
		Endpoint:       cfg.Storage.Endpoint,
		MaxAttempts:    cfg.Storage.MaxAttempts,
		ConnectTimeout: cfg.Storage.ConnectTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to initialize storage client: %v", err)
	}
	if err := db.Ping(context.Background()); err != nil {
		appLogger.Fatalf("Storage engine unreachable: %v", err)
	}

	// Optional redis cache for active rides
	var rideCache *cache.RedisCache
	if cfg.Cache.Enabled {
		rideCache, err = cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Cache.Host,
			Port:         cfg.Cache.Port,
			Password:     cfg.Cache.Password,
			DB:           cfg.Cache.DB,
			PoolSize:     cfg.Cache.PoolSize,
			MinIdleConns: cfg.Cache.MinIdleConns,
			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,
		})
		if err != nil {
			appLogger.WithError(err).Warn("Cache unavailable, continuing without it")
			rideCache = nil
		}
	}

	// Optional lifecycle event publisher
	var publisher services.EventPublisher
	if cfg.Notify.Enabled() {
		snsPublisher, err := notify.NewSNSPublisher(cfg.Notify.Region, cfg.Notify.TopicARN)
		if err != nil {
			appLogger.WithError(err).Warn("Event publisher unavailable, continuing without it")
		} else {
			publisher = snsPublisher
		}
	}

	rideRepo := dynamorepo.NewRideRepository(db, rideCache, cfg.Cache.RideTTL, appLogger)
	rideService := services.NewRideService(rideRepo, cfg.Fleet, cfg.Storage.Region, publisher, appLogger)
	rideHandler := handlers.NewRideHandler(rideService)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.IdentityMiddleware(cfg.Security.JWTSecret))

	// API routes
	v1 := router.Group("/api/v1")
	{
		routes.SetupRideRoutes(v1, rideHandler)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.Infof("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		appLogger.Fatalf("Server stopped: %v", err)
	}
}
