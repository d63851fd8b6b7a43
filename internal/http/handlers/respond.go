package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/niel2512/hackathon-SmartFlow/internal/apperr"
	applog "github.com/niel2512/hackathon-SmartFlow/internal/log"
)

// writeErr maps any error to the coded JSON error shape. Unrecognized errors
// become INTERNAL_ERROR without leaking their message to the caller.
func writeErr(c *fiber.Ctx, action string, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		if ae.Status >= fiber.StatusInternalServerError {
			applog.Error(c, action, err, nil)
		} else {
			applog.Security(c, action, map[string]any{"code": ae.Code, "error": ae.Message})
		}
		return c.Status(ae.Status).JSON(ae.Response())
	}
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).
		JSON(apperr.Internal("An unexpected error occurred").Response())
}

func badBody(c *fiber.Ctx, action string) error {
	return writeErr(c, action, apperr.Validation("Malformed request body", nil))
}

func validationFailed(c *fiber.Ctx, action string, details any) error {
	return writeErr(c, action, apperr.Validation("Validation failed", details))
}

// bearerToken pulls the session token from the Authorization header.
func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}
