package handlers

import (
	"net/http"

	"github.com/Claudio-Lins/amigo-tvde-backend/services"
	"github.com/Claudio-Lins/amigo-tvde-backend/types"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthService *services.HealthService
}

func NewHealthHandler(healthService *services.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// DetailedHealth godoc
// @Summary Detailed health check
// @Description Reports overall status plus per-component status for the database and Redis.
// @Tags health
// @Produce json
// @Success 200 {object} types.HealthCheck "All components healthy or degraded"
// @Failure 503 {object} types.HealthCheck "One or more components down"
// @Router /health [get]
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	check := h.healthService.CheckHealth(c.Request.Context())

	status := http.StatusOK
	if check.Status == types.HealthStatusDown {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, check)
}

// LivenessCheck godoc
// @Summary Liveness probe
// @Description Returns 200 while the process is able to serve requests.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Process is alive"
// @Router /health/liveness [get]
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": string(types.HealthStatusUp)})
}

// ReadinessCheck godoc
// @Summary Readiness probe
// @Description Returns 200 once the database accepts connections.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Ready for traffic"
// @Failure 503 {object} map[string]interface{} "Dependencies unavailable"
// @Router /health/readiness [get]
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	if !h.healthService.IsReady(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": string(types.HealthStatusDown)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(types.HealthStatusUp)})
}
