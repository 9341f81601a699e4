package rest

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"session-gateway/app/port"
	"session-gateway/app/rest/handlers"
	custommw "session-gateway/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger         *slog.Logger
	SessionUsecase port.SessionUsecase
	FileUsecase    port.FileUsecase
	SessionTokens  port.SessionTokens
	Providers      port.Providers
	SecureCookies  bool
	SessionTTL     time.Duration
	AllowOrigins   []string
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	authHandler := handlers.NewAuthHandler(config.SessionUsecase, config.Providers,
		config.Logger, config.SecureCookies, config.SessionTTL)
	fileHandler := handlers.NewFileHandler(config.FileUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Providers, config.Logger)

	sessionMiddleware := custommw.NewSessionMiddleware(config.SessionTokens, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS(config.AllowOrigins))
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Authentication endpoints
	auth := v1.Group("/auth")
	auth.POST("/validate", authHandler.ValidateToken)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, sessionMiddleware.RequireSession())

	// File endpoints (session required)
	files := v1.Group("/files", sessionMiddleware.RequireSession())
	files.POST("", fileHandler.Upload)
	files.DELETE("/:filename", fileHandler.Delete)

	return e
}
