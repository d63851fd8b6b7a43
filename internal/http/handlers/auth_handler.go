package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/niel2512/hackathon-SmartFlow/internal/domain"
	applog "github.com/niel2512/hackathon-SmartFlow/internal/log"
	"github.com/niel2512/hackathon-SmartFlow/internal/services"
	"github.com/niel2512/hackathon-SmartFlow/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in domain.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, "auth.register")
	}
	if errs := validate.Register(in); len(errs) > 0 {
		return validationFailed(c, "auth.register", errs)
	}

	u, token, err := h.Auth.Register(in)
	if err != nil {
		return writeErr(c, "auth.register", err)
	}
	applog.Audit(c, "auth.register", map[string]any{"user": u.ID, "role": u.Role})
	return c.JSON(fiber.Map{"token": token, "user": u})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in domain.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, "auth.login")
	}

	u, token, err := h.Auth.Login(in.Email, in.Password)
	if err != nil {
		return writeErr(c, "auth.login", err)
	}
	applog.Audit(c, "auth.login", map[string]any{"user": u.ID})
	return c.JSON(fiber.Map{"token": token, "user": u})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if tok := bearerToken(c); tok != "" {
		if err := h.Auth.Logout(tok); err != nil {
			return writeErr(c, "auth.logout", err)
		}
	}
	return c.JSON(fiber.Map{"success": true})
}
