package main

import (
	"time"

	"core_api/internal/cache"
	"core_api/internal/config"
	"core_api/internal/database"
	"core_api/internal/handlers"
	"core_api/internal/middleware"
	"core_api/internal/repository"
	"core_api/internal/services"
	"core_api/pkg/aiservice"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := database.SeedOwner(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.WithError(err).Fatal("failed to seed owner user")
	}

	// Redis backs the login rate limiter; the service runs without it.
	var loginCounter middleware.AttemptCounter
	if cfg.RedisURL != "" {
		cacheClient, err := cache.Initialize(cfg.RedisURL)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, login rate limiting disabled")
		} else {
			defer cacheClient.Close()
			loginCounter = cacheClient
		}
	}

	// Initialize the AI service client
	aiClient := aiservice.NewClient(cfg.AIServiceURL)

	// Initialize repositories
	vehicleRepo := repository.NewVehicleRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	workOrderRepo := repository.NewWorkOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	vehicleService := services.NewVehicleService(vehicleRepo)
	customerService := services.NewCustomerService(customerRepo)
	workOrderService := services.NewWorkOrderService(workOrderRepo)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, aiClient)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	workOrderHandler := handlers.NewWorkOrderHandler(workOrderService)
	authHandler := handlers.NewAuthHandler(authService)

	router := handlers.NewRouter(
		handlers.RouterConfig{
			JWTSecret:       cfg.JWTSecret,
			LoginCounter:    loginCounter,
			LoginRateLimit:  cfg.LoginRateLimit,
			LoginRateWindow: time.Duration(cfg.LoginRateWindow) * time.Second,
			Logger:          log,
		},
		healthHandler,
		vehicleHandler,
		customerHandler,
		workOrderHandler,
		authHandler,
	)

	// Start server
	log.WithField("port", cfg.ServerPort).Info("core api starting")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
