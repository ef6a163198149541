package handlers

import (
	"time"

	"core_api/internal/middleware"
	"core_api/internal/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RouterConfig carries everything route registration needs besides the
// handlers themselves.
type RouterConfig struct {
	JWTSecret       string
	LoginCounter    middleware.AttemptCounter
	LoginRateLimit  int
	LoginRateWindow time.Duration
	Logger          *logrus.Logger
}

// NewRouter builds the gin engine with the full middleware pipeline and
// route table.
func NewRouter(
	cfg RouterConfig,
	healthHandler *HealthHandler,
	vehicleHandler *VehicleHandler,
	customerHandler *CustomerHandler,
	workOrderHandler *WorkOrderHandler,
	authHandler *AuthHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Logger))
	router.Use(cors.Default())

	// Health / diagnostics
	router.GET("/health", healthHandler.Health)
	router.GET("/db/health", healthHandler.DBHealth)
	router.GET("/ai/health", healthHandler.AIHealth)

	// Vehicles
	router.GET("/vehicles", vehicleHandler.List)
	router.GET("/vehicles/:id", vehicleHandler.Get)
	router.POST("/vehicles", vehicleHandler.Create)

	// Customers
	router.GET("/customers", customerHandler.List)
	router.GET("/customers/:id", customerHandler.Get)
	router.POST("/customers", customerHandler.Create)

	// Work orders
	router.GET("/work-orders", workOrderHandler.List)
	router.GET("/work-orders/:id", workOrderHandler.Get)
	router.POST("/work-orders", workOrderHandler.Create)
	router.PUT("/work-orders/:id", workOrderHandler.Update)
	router.PATCH("/work-orders/:id/status", workOrderHandler.UpdateStatus)

	// Auth
	router.POST("/auth/register",
		middleware.RequireAuth(cfg.JWTSecret),
		middleware.RequireRole(string(models.RoleOwner)),
		authHandler.Register,
	)
	router.POST("/auth/login",
		middleware.LoginRateLimit(cfg.LoginCounter, cfg.LoginRateLimit, cfg.LoginRateWindow, cfg.Logger),
		authHandler.Login,
	)
	router.GET("/me", middleware.RequireAuth(cfg.JWTSecret), authHandler.Me)

	return router
}
