package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/niel2512/hackathon-SmartFlow/internal/services"
)

type DashboardHandler struct {
	Dashboard *services.DashboardService
}

func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.Dashboard.Summary()
	if err != nil {
		return writeErr(c, "dashboard.summary", err)
	}
	return c.JSON(summary)
}
