package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/services"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/types"
)

type HealthHandler struct {
	healthService *services.HealthService
	appName       string
	version       string
}

func NewHealthHandler(healthService *services.HealthService, appName, version string) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
		appName:       appName,
		version:       version,
	}
}

// Root returns the application banner.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, types.RootResponse{
		Message: "Hello from the feedback backend!",
		AppName: h.appName,
		Version: h.version,
	})
}

// LivenessCheck handles kubernetes liveness probe
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}

// HealthCheck reports overall status plus the database component. A degraded
// store still serves requests, so only DOWN maps to 503.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	health := h.healthService.CheckHealth(c.Request.Context())

	if health.Status == types.HealthStatusDown {
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}

	c.JSON(http.StatusOK, health)
}
