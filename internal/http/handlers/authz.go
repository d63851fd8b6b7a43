package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/niel2512/hackathon-SmartFlow/internal/apperr"
	"github.com/niel2512/hackathon-SmartFlow/internal/domain"
	applog "github.com/niel2512/hackathon-SmartFlow/internal/log"
	"github.com/niel2512/hackathon-SmartFlow/internal/services"
)

// RequireUser rejects requests without a valid bearer session.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := bearerToken(c)
		if tok == "" {
			return writeErr(c, "auth.missing", apperr.Unauthorized("Authentication required"))
		}
		u, err := auth.CurrentUser(tok)
		if err != nil || u == nil {
			return writeErr(c, "auth.invalid", apperr.Unauthorized("Authentication required"))
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// RequireAdmin additionally enforces the Admin role.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := bearerToken(c)
		if tok == "" {
			return writeErr(c, "auth.missing", apperr.Unauthorized("Authentication required"))
		}
		u, err := auth.CurrentUser(tok)
		if err != nil || u == nil {
			return writeErr(c, "auth.invalid", apperr.Unauthorized("Authentication required"))
		}
		if u.Role != domain.RoleAdmin {
			applog.Security(c, "access.denied.admin", map[string]any{"user": u.ID})
			return writeErr(c, "access.denied.admin", apperr.Forbidden("Admin access required"))
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// currentUser returns the authenticated user, or nil on public routes.
func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}
