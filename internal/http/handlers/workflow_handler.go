package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/niel2512/hackathon-SmartFlow/internal/apperr"
	"github.com/niel2512/hackathon-SmartFlow/internal/domain"
	applog "github.com/niel2512/hackathon-SmartFlow/internal/log"
	"github.com/niel2512/hackathon-SmartFlow/internal/services"
	"github.com/niel2512/hackathon-SmartFlow/internal/validate"
)

type WorkflowHandler struct {
	Workflows *services.WorkflowService
}

type ruleWithURL struct {
	domain.WorkflowRule
	WebhookURL string `json:"webhookUrl"`
}

func (h *WorkflowHandler) List(c *fiber.Ctx) error {
	rules, err := h.Workflows.List()
	if err != nil {
		return writeErr(c, "workflows.list", err)
	}
	out := make([]ruleWithURL, 0, len(rules))
	for _, r := range rules {
		out = append(out, ruleWithURL{WorkflowRule: r, WebhookURL: h.Workflows.WebhookURL(r.ID)})
	}
	return c.JSON(out)
}

func (h *WorkflowHandler) Create(c *fiber.Ctx) error {
	var in domain.CreateRuleInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, "workflows.create")
	}
	if errs := validate.WorkflowRule(in); len(errs) > 0 {
		return validationFailed(c, "workflows.create", errs)
	}

	w, err := h.Workflows.Create(in)
	if err != nil {
		return writeErr(c, "workflows.create", err)
	}
	applog.Audit(c, "workflows.create", map[string]any{"rule": w.ID, "trigger": w.Trigger, "action": w.Action})
	return c.JSON(ruleWithURL{WorkflowRule: w, WebhookURL: h.Workflows.WebhookURL(w.ID)})
}

func (h *WorkflowHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return writeErr(c, "workflows.delete", apperr.NotFound("Rule not found"))
	}
	if err := h.Workflows.Delete(id); err != nil {
		return writeErr(c, "workflows.delete", err)
	}
	applog.Audit(c, "workflows.delete", map[string]any{"rule": id})
	return c.JSON(fiber.Map{"success": true})
}

// Fire is the Zapier-facing webhook. The payload is accepted as-is and only
// logged; firing appends one Automation notification.
func (h *WorkflowHandler) Fire(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return writeErr(c, "webhooks.fire", apperr.NotFound("Rule not found"))
	}
	applog.Info(c, "webhooks.fire", map[string]any{"rule": id, "payload_bytes": len(c.Body())})

	w, err := h.Workflows.Fire(id)
	if err != nil {
		return writeErr(c, "webhooks.fire", err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Automation rule '%s' → '%s' executed successfully", w.Trigger, w.Action),
		"ruleId":  w.ID,
	})
}

// Status answers Zapier's endpoint probe.
func (h *WorkflowHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Zapier webhook endpoint",
		"ruleId":  c.Params("id"),
		"status":  "ready",
	})
}
