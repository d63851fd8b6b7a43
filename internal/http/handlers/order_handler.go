package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/niel2512/hackathon-SmartFlow/internal/apperr"
	"github.com/niel2512/hackathon-SmartFlow/internal/domain"
	applog "github.com/niel2512/hackathon-SmartFlow/internal/log"
	"github.com/niel2512/hackathon-SmartFlow/internal/services"
	"github.com/niel2512/hackathon-SmartFlow/internal/validate"
)

type OrderHandler struct {
	Orders *services.OrderService
}

// orderWithAlerts is the status update response: the updated order plus any
// low stock alert messages generated during a Completed transition.
type orderWithAlerts struct {
	domain.Order
	LowStockAlerts []string `json:"lowStockAlerts"`
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.Orders.List()
	if err != nil {
		return writeErr(c, "orders.list", err)
	}
	return c.JSON(orders)
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return writeErr(c, "orders.get", apperr.NotFound("Order not found"))
	}
	o, err := h.Orders.Get(id)
	if err != nil {
		return writeErr(c, "orders.get", err)
	}
	return c.JSON(o)
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in domain.CreateOrderInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, "orders.create")
	}
	if errs := validate.Order(in); len(errs) > 0 {
		return validationFailed(c, "orders.create", errs)
	}

	o, err := h.Orders.Create(in)
	if err != nil {
		return writeErr(c, "orders.create", err)
	}
	applog.Audit(c, "orders.create", map[string]any{"order": o.ID, "total": o.Total})
	return c.JSON(o)
}

// Update is both the status transition and the Pending-only edit: a payload
// with "status" transitions, anything else edits.
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return writeErr(c, "orders.update", apperr.NotFound("Order not found"))
	}
	var in domain.UpdateOrderInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, "orders.update")
	}
	if errs := validate.OrderUpdate(in); len(errs) > 0 {
		return validationFailed(c, "orders.update", errs)
	}

	if in.Status != nil {
		o, alerts, err := h.Orders.UpdateStatus(id, *in.Status, currentUser(c))
		if err != nil {
			return writeErr(c, "orders.status", err)
		}
		applog.Audit(c, "orders.status", map[string]any{
			"order": o.ID, "status": o.Status, "low_stock_alerts": len(alerts),
		})
		return c.JSON(orderWithAlerts{Order: o, LowStockAlerts: alerts})
	}

	o, err := h.Orders.Edit(id, in)
	if err != nil {
		return writeErr(c, "orders.edit", err)
	}
	applog.Audit(c, "orders.edit", map[string]any{"order": o.ID, "total": o.Total})
	return c.JSON(o)
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return writeErr(c, "orders.delete", apperr.NotFound("Order not found"))
	}
	if err := h.Orders.Delete(id, currentUser(c)); err != nil {
		return writeErr(c, "orders.delete", err)
	}
	applog.Audit(c, "orders.delete", map[string]any{"order": id})
	return c.JSON(fiber.Map{"success": true, "message": "Order deleted and stock returned to inventory"})
}
