package services

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/niel2512/hackathon-SmartFlow/internal/domain"
	"github.com/niel2512/hackathon-SmartFlow/internal/repos"
)

type BackupData struct {
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
	Data      struct {
		Products         []domain.Product         `json:"products"`
		Orders           []domain.Order           `json:"orders"`
		WorkflowRules    []domain.WorkflowRule    `json:"workflowRules"`
		NotificationLogs []domain.NotificationLog `json:"notificationLogs"`
	} `json:"data"`
}

type DataStatistics struct {
	TotalProducts      int    `json:"totalProducts"`
	TotalOrders        int    `json:"totalOrders"`
	TotalWorkflows     int    `json:"totalWorkflows"`
	TotalNotifications int    `json:"totalNotifications"`
	AuditLogEntries    int    `json:"auditLogEntries"`
	BackupDate         string `json:"backupDate"`
}

// BackupService produces full-data exports for the admin backup endpoint.
type BackupService struct {
	Products  *repos.ProductRepo
	Orders    *repos.OrderRepo
	Workflows *repos.WorkflowRepo
	Notes     *repos.NotificationRepo
	Audit     *repos.AuditRepo
}

func NewBackupService(products *repos.ProductRepo, orders *repos.OrderRepo, workflows *repos.WorkflowRepo, notes *repos.NotificationRepo, audit *repos.AuditRepo) *BackupService {
	return &BackupService{Products: products, Orders: orders, Workflows: workflows, Notes: notes, Audit: audit}
}

func (s *BackupService) CreateBackup() (BackupData, error) {
	out := BackupData{Version: "1.0.0", Timestamp: repos.Now()}
	var err error
	if out.Data.Products, err = s.Products.List(); err != nil {
		return BackupData{}, err
	}
	if out.Data.Orders, err = s.Orders.List(); err != nil {
		return BackupData{}, err
	}
	if out.Data.WorkflowRules, err = s.Workflows.List(); err != nil {
		return BackupData{}, err
	}
	if out.Data.NotificationLogs, err = s.Notes.List(); err != nil {
		return BackupData{}, err
	}
	return out, nil
}

func (s *BackupService) ProductsCSV() ([]byte, error) {
	products, err := s.Products.List()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"ID", "Name", "Stock", "Min Stock", "Price", "Created At"})
	for _, p := range products {
		_ = w.Write([]string{
			p.ID, p.Name,
			strconv.Itoa(p.Stock), strconv.Itoa(p.MinStock),
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			p.CreatedAt,
		})
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (s *BackupService) OrdersCSV() ([]byte, error) {
	orders, err := s.Orders.List()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"ID", "Customer Name", "Status", "Total", "Item Count", "Created At"})
	for _, o := range orders {
		_ = w.Write([]string{
			o.ID, o.CustomerName, string(o.Status),
			strconv.FormatFloat(o.Total, 'f', -1, 64),
			strconv.Itoa(len(o.Items)),
			o.CreatedAt,
		})
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (s *BackupService) Statistics() (DataStatistics, error) {
	products, err := s.Products.List()
	if err != nil {
		return DataStatistics{}, err
	}
	orders, err := s.Orders.List()
	if err != nil {
		return DataStatistics{}, err
	}
	rules, err := s.Workflows.List()
	if err != nil {
		return DataStatistics{}, err
	}
	notes, err := s.Notes.List()
	if err != nil {
		return DataStatistics{}, err
	}
	auditCount, err := s.Audit.Count()
	if err != nil {
		return DataStatistics{}, err
	}
	return DataStatistics{
		TotalProducts:      len(products),
		TotalOrders:        len(orders),
		TotalWorkflows:     len(rules),
		TotalNotifications: len(notes),
		AuditLogEntries:    auditCount,
		BackupDate:         repos.Now(),
	}, nil
}
