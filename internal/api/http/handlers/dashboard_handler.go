package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neuralink-ai/site-backend/internal/service"
)

// DashboardHandler serves the admin dashboard snapshot.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Get GET /api/dashboard.
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	snapshot, err := h.dashboard.GetDashboard(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(snapshot)
}
