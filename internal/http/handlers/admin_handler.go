package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/niel2512/hackathon-SmartFlow/internal/apperr"
	"github.com/niel2512/hackathon-SmartFlow/internal/repos"
	"github.com/niel2512/hackathon-SmartFlow/internal/services"
)

// AdminHandler serves the backup/export and database-utility endpoints, both
// driven by an `action` query parameter.
type AdminHandler struct {
	Backup    *services.BackupService
	Dashboard *services.DashboardService
	Audit     *repos.AuditRepo
}

func (h *AdminHandler) BackupActions(c *fiber.Ctx) error {
	switch c.Query("action") {
	case "statistics":
		stats, err := h.Backup.Statistics()
		if err != nil {
			return writeErr(c, "admin.backup", err)
		}
		return c.JSON(stats)

	case "export-json":
		data, err := h.Backup.CreateBackup()
		if err != nil {
			return writeErr(c, "admin.backup", err)
		}
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="smartflow-backup.json"`)
		return c.JSON(data)

	case "export-products-csv":
		csvData, err := h.Backup.ProductsCSV()
		if err != nil {
			return writeErr(c, "admin.backup", err)
		}
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="products-backup.csv"`)
		return c.Send(csvData)

	case "export-orders-csv":
		csvData, err := h.Backup.OrdersCSV()
		if err != nil {
			return writeErr(c, "admin.backup", err)
		}
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="orders-backup.csv"`)
		return c.Send(csvData)

	default:
		return writeErr(c, "admin.backup", apperr.Validation("Invalid action parameter", nil))
	}
}

func (h *AdminHandler) DatabaseActions(c *fiber.Ctx) error {
	switch c.Query("action") {
	case "health":
		health, err := h.Dashboard.Health()
		if err != nil {
			return writeErr(c, "admin.database", err)
		}
		return c.JSON(health)

	case "summary":
		summary, err := h.Dashboard.AdminSummary()
		if err != nil {
			return writeErr(c, "admin.database", err)
		}
		return c.JSON(summary)

	case "integrity":
		report, err := h.Dashboard.Integrity()
		if err != nil {
			return writeErr(c, "admin.database", err)
		}
		return c.JSON(report)

	case "audit-logs":
		limit := 50
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}
		logs, err := h.Audit.ListRecent(limit)
		if err != nil {
			return writeErr(c, "admin.database", err)
		}
		return c.JSON(logs)

	default:
		return writeErr(c, "admin.database", apperr.Validation("Invalid action parameter", nil))
	}
}
