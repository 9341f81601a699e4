package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"session-gateway/app/port"
)

var startTime = time.Now()

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	providers port.Providers
	logger    *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(providers port.Providers, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		providers: providers,
		logger:    logger,
	}
}

// HealthCheck performs a basic liveness check
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "session-gateway",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	})
}

// ReadinessCheck probes the persistent store. The identity verifier and
// blob store are not probed: they are lazy by design and resolving them
// here would turn a readiness poll into a provider construction.
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	ctx := c.Request().Context()
	checks := make(map[string]HealthStatus)
	status := http.StatusOK

	store, err := h.providers.PersistentStore(ctx)
	if err == nil {
		err = store.Connect(ctx)
	}
	if err != nil {
		checks["store"] = HealthStatus{Status: "unhealthy", Message: err.Error()}
		status = http.StatusServiceUnavailable
	} else {
		checks["store"] = HealthStatus{Status: "healthy", Message: "connected"}
	}

	overall := "ready"
	if status != http.StatusOK {
		overall = "not ready"
	}
	return c.JSON(status, ReadinessResponse{Status: overall, Checks: checks})
}

// LivenessCheck reports whether the process is alive
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "alive"})
}
