package apiHttp

import (
	"context"
	"net/http"
	"time"

	"github.com/nzwalks/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// HealthChecks maps a dependency name to its probe.
type HealthChecks map[string]func(ctx context.Context) error

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
} // @name HealthResponse

// @Summary Health
// @Tags Health
// @Description Reports whether the database and redis are reachable
// @ModuleID healthCheck
// @Produce  json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	response := healthResponse{Status: "ok", Checks: make(map[string]string, len(h.health))}
	status := http.StatusOK
	for name, check := range h.health {
		if err := check(ctx); err != nil {
			logger.Warn("health check failed", zap.String("check", name), zap.Error(err))
			response.Checks[name] = "unavailable"
			response.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		response.Checks[name] = "ok"
	}

	c.JSON(status, response)
}
