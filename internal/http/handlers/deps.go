package handlers

import (
	"github.com/jmoiron/sqlx"

	"github.com/niel2512/hackathon-SmartFlow/internal/config"
	"github.com/niel2512/hackathon-SmartFlow/internal/repos"
	"github.com/niel2512/hackathon-SmartFlow/internal/services"
)

type Deps struct {
	AuthHandler         *AuthHandler
	ProductHandler      *ProductHandler
	OrderHandler        *OrderHandler
	WorkflowHandler     *WorkflowHandler
	NotificationHandler *NotificationHandler
	DashboardHandler    *DashboardHandler
	AdminHandler        *AdminHandler

	Auth *services.AuthService
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	workflowRepo := repos.NewWorkflowRepo(db)
	noteRepo := repos.NewNotificationRepo(db)
	userRepo := repos.NewUserRepo(db)
	auditRepo := repos.NewAuditRepo(db)

	authSvc := services.NewAuthService(userRepo)
	prodSvc := services.NewProductService(prodRepo)
	orderSvc := services.NewOrderService(db, prodRepo, orderRepo, noteRepo, auditRepo)
	workflowSvc := services.NewWorkflowService(workflowRepo, noteRepo, cfg.AppURL)
	dashSvc := services.NewDashboardService(prodRepo, orderRepo, noteRepo, workflowRepo)
	backupSvc := services.NewBackupService(prodRepo, orderRepo, workflowRepo, noteRepo, auditRepo)

	return &Deps{
		AuthHandler:         &AuthHandler{Auth: authSvc},
		ProductHandler:      &ProductHandler{Products: prodSvc},
		OrderHandler:        &OrderHandler{Orders: orderSvc},
		WorkflowHandler:     &WorkflowHandler{Workflows: workflowSvc},
		NotificationHandler: &NotificationHandler{Notes: noteRepo},
		DashboardHandler:    &DashboardHandler{Dashboard: dashSvc},
		AdminHandler:        &AdminHandler{Backup: backupSvc, Dashboard: dashSvc, Audit: auditRepo},
		Auth:                authSvc,
	}
}
