package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/niel2512/hackathon-SmartFlow/internal/repos"
)

type NotificationHandler struct {
	Notes *repos.NotificationRepo
}

// List serves the notification feed. The dashboard polls it, so caching is
// disabled explicitly.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	notes, err := h.Notes.List()
	if err != nil {
		return writeErr(c, "notifications.list", err)
	}
	c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate, max-age=0")
	c.Set(fiber.HeaderPragma, "no-cache")
	c.Set(fiber.HeaderExpires, "0")
	return c.JSON(notes)
}
