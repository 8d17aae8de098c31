package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/modules/registry/services"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/shared/utils"
)

type HealthHandler struct {
	chartService *services.ChartService
}

func NewHealthHandler(chartService *services.ChartService) *HealthHandler {
	return &HealthHandler{chartService: chartService}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if the API is alive and the registry is reachable
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	count, err := h.chartService.PatientCount(ctx)
	if err != nil {
		utils.LogError("Health check: registry unreachable", err, map[string]interface{}{
			"request_id": requestID(c),
		})
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "degraded",
			"service":  "chart-api",
			"database": "unreachable",
		})
	}

	return c.JSON(fiber.Map{
		"status":   "ok",
		"service":  "chart-api",
		"database": "connected",
		"patients": count,
	})
}
