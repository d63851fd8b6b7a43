package handlers

import "github.com/gofiber/fiber/v2"

// Register mounts every API route on the app. Main and the handler tests use
// the same wiring.
func (d *Deps) Register(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", d.AuthHandler.Register)
	auth.Post("/login", d.AuthHandler.Login)
	auth.Post("/logout", d.AuthHandler.Logout)

	api.Get("/products", d.ProductHandler.List)
	api.Post("/products", d.ProductHandler.Create)
	api.Get("/products/:id", d.ProductHandler.Get)
	api.Patch("/products/:id", d.ProductHandler.Update)
	api.Delete("/products/:id", d.ProductHandler.Delete)

	api.Get("/orders", d.OrderHandler.List)
	api.Post("/orders", d.OrderHandler.Create)
	api.Get("/orders/:id", d.OrderHandler.Get)
	api.Patch("/orders/:id", d.OrderHandler.Update)
	api.Delete("/orders/:id", d.OrderHandler.Delete)

	api.Get("/workflows", d.WorkflowHandler.List)
	api.Post("/workflows", d.WorkflowHandler.Create)
	api.Delete("/workflows/:id", d.WorkflowHandler.Delete)

	api.Get("/webhooks/zapier/:id", d.WorkflowHandler.Status)
	api.Post("/webhooks/zapier/:id", d.WorkflowHandler.Fire)

	api.Get("/notifications", d.NotificationHandler.List)
	api.Get("/dashboard/summary", d.DashboardHandler.Summary)

	admin := api.Group("/admin", RequireAdmin(d.Auth))
	admin.Get("/backup", d.AdminHandler.BackupActions)
	admin.Get("/database", d.AdminHandler.DatabaseActions)
}
