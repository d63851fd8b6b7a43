package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/niel2512/hackathon-SmartFlow/internal/apperr"
	"github.com/niel2512/hackathon-SmartFlow/internal/domain"
	applog "github.com/niel2512/hackathon-SmartFlow/internal/log"
	"github.com/niel2512/hackathon-SmartFlow/internal/services"
	"github.com/niel2512/hackathon-SmartFlow/internal/validate"
)

type ProductHandler struct {
	Products *services.ProductService
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Products.List()
	if err != nil {
		return writeErr(c, "products.list", err)
	}
	return c.JSON(products)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return writeErr(c, "products.get", apperr.NotFound("Product not found"))
	}
	p, err := h.Products.Get(id)
	if err != nil {
		return writeErr(c, "products.get", err)
	}
	return c.JSON(p)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in domain.CreateProductInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, "products.create")
	}
	if errs := validate.Product(in); len(errs) > 0 {
		return validationFailed(c, "products.create", errs)
	}

	p, err := h.Products.Create(in)
	if err != nil {
		return writeErr(c, "products.create", err)
	}
	applog.Audit(c, "products.create", map[string]any{"product": p.ID})
	return c.JSON(p)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return writeErr(c, "products.update", apperr.NotFound("Product not found"))
	}
	var in domain.UpdateProductInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, "products.update")
	}
	if errs := validate.ProductUpdate(in); len(errs) > 0 {
		return validationFailed(c, "products.update", errs)
	}

	p, err := h.Products.Update(id, in)
	if err != nil {
		return writeErr(c, "products.update", err)
	}
	applog.Audit(c, "products.update", map[string]any{"product": p.ID})
	return c.JSON(p)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return writeErr(c, "products.delete", apperr.NotFound("Product not found"))
	}
	if err := h.Products.Delete(id); err != nil {
		return writeErr(c, "products.delete", err)
	}
	applog.Audit(c, "products.delete", map[string]any{"product": id})
	return c.JSON(fiber.Map{"success": true})
}
