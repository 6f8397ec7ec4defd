package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/greentouch-site/internal/api/dto"
	"github.com/spec-kit/greentouch-site/internal/observability"
	"github.com/spec-kit/greentouch-site/internal/service"
)

// DashboardHandler serves back-office counters.
type DashboardHandler struct {
	service *service.DashboardService
	metrics *observability.Metrics
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService, metrics *observability.Metrics) *DashboardHandler {
	return &DashboardHandler{service: dashboardService, metrics: metrics}
}

// Stats GET /stats.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDashboardStatsResponse(stats)})
}

// Metrics GET /metrics.
func (h *DashboardHandler) Metrics(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.metrics.Snapshot()})
}
