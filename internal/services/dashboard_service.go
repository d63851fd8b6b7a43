package services

import (
	"fmt"
	"time"

	"github.com/niel2512/hackathon-SmartFlow/internal/domain"
	"github.com/niel2512/hackathon-SmartFlow/internal/repos"
)

type MonthlySales struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
}

type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type DashboardSummary struct {
	TotalOrders         int                      `json:"totalOrders"`
	LowStockAlerts      int                      `json:"lowStockAlerts"`
	StaffTasks          int                      `json:"staffTasks"`
	Revenue             float64                  `json:"revenue"`
	RecentNotifications []domain.NotificationLog `json:"recentNotifications"`
	SalesData           []MonthlySales           `json:"salesData"`
	OrderStatusData     []StatusCount            `json:"orderStatusData"`
}

type HealthCheck struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Stats     map[string]int `json:"stats"`
	Warnings  []string       `json:"warnings"`
}

type IntegrityReport struct {
	Valid       bool     `json:"valid"`
	IssuesFound int      `json:"issuesFound"`
	Issues      []string `json:"issues"`
	CheckedAt   string   `json:"checkedAt"`
}

type AdminSummary struct {
	TotalOrders       int     `json:"totalOrders"`
	CompletedOrders   int     `json:"completedOrders"`
	ProcessingOrders  int     `json:"processingOrders"`
	PendingOrders     int     `json:"pendingOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalProducts     int     `json:"totalProducts"`
	LowStockProducts  int     `json:"lowStockProducts"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// DashboardService aggregates store contents into the numbers the dashboard
// renders. It reads whole tables; SmartFlow datasets are small-business sized.
type DashboardService struct {
	Products  *repos.ProductRepo
	Orders    *repos.OrderRepo
	Notes     *repos.NotificationRepo
	Workflows *repos.WorkflowRepo
}

func NewDashboardService(products *repos.ProductRepo, orders *repos.OrderRepo, notes *repos.NotificationRepo, workflows *repos.WorkflowRepo) *DashboardService {
	return &DashboardService{Products: products, Orders: orders, Notes: notes, Workflows: workflows}
}

func (s *DashboardService) Summary() (DashboardSummary, error) {
	orders, err := s.Orders.List()
	if err != nil {
		return DashboardSummary{}, err
	}
	products, err := s.Products.List()
	if err != nil {
		return DashboardSummary{}, err
	}
	notes, err := s.Notes.List()
	if err != nil {
		return DashboardSummary{}, err
	}

	lowStock := 0
	for _, p := range products {
		if p.LowStock() {
			lowStock++
		}
	}

	staffTasks := 0
	revenue := 0.0
	byMonth := map[string]float64{}
	byStatus := map[domain.OrderStatus]int{}
	for _, o := range orders {
		byStatus[o.Status]++
		if o.Status == domain.StatusProcessing {
			staffTasks++
		}
		if o.Status == domain.StatusCompleted {
			revenue += o.Total
		}
		if t, err := time.Parse(time.RFC3339, o.CreatedAt); err == nil {
			byMonth[monthNames[t.Month()-1]] += o.Total
		}
	}

	sales := make([]MonthlySales, 0, len(monthNames))
	for _, m := range monthNames {
		sales = append(sales, MonthlySales{Month: m, Sales: byMonth[m]})
	}
	statusData := []StatusCount{
		{Name: string(domain.StatusPending), Value: byStatus[domain.StatusPending]},
		{Name: string(domain.StatusProcessing), Value: byStatus[domain.StatusProcessing]},
		{Name: string(domain.StatusCompleted), Value: byStatus[domain.StatusCompleted]},
	}

	// Last five notifications, newest first.
	recent := []domain.NotificationLog{}
	for i := len(notes) - 1; i >= 0 && len(recent) < 5; i-- {
		recent = append(recent, notes[i])
	}

	return DashboardSummary{
		TotalOrders:         len(orders),
		LowStockAlerts:      lowStock,
		StaffTasks:          staffTasks,
		Revenue:             revenue,
		RecentNotifications: recent,
		SalesData:           sales,
		OrderStatusData:     statusData,
	}, nil
}

// Health reports table counts and operational warnings for the admin surface.
func (s *DashboardService) Health() (HealthCheck, error) {
	products, err := s.Products.List()
	if err != nil {
		return HealthCheck{}, err
	}
	orders, err := s.Orders.List()
	if err != nil {
		return HealthCheck{}, err
	}
	notes, err := s.Notes.List()
	if err != nil {
		return HealthCheck{}, err
	}
	rules, err := s.Workflows.List()
	if err != nil {
		return HealthCheck{}, err
	}

	warnings := []string{}
	if len(products) == 0 {
		warnings = append(warnings, "No products in inventory")
	}
	lowStock := 0
	for _, p := range products {
		if p.LowStock() {
			lowStock++
		}
	}
	if lowStock > 0 {
		warnings = append(warnings, fmt.Sprintf("%d product(s) have low stock", lowStock))
	}
	pending := 0
	for _, o := range orders {
		if o.Status == domain.StatusPending {
			pending++
		}
	}
	if pending > 0 {
		warnings = append(warnings, fmt.Sprintf("%d pending order(s) awaiting processing", pending))
	}

	status := "healthy"
	switch {
	case len(warnings) > 1:
		status = "warning"
	case len(warnings) == 1:
		status = "critical"
	}

	return HealthCheck{
		Status:    status,
		Timestamp: repos.Now(),
		Stats: map[string]int{
			"products":      len(products),
			"orders":        len(orders),
			"workflows":     len(rules),
			"notifications": len(notes),
		},
		Warnings: warnings,
	}, nil
}

// Integrity scans every order for line items whose product no longer exists.
// Orders keep price snapshots, so a deleted product is tolerated at runtime;
// this surfaces the dangling references to the admin.
func (s *DashboardService) Integrity() (IntegrityReport, error) {
	orders, err := s.Orders.List()
	if err != nil {
		return IntegrityReport{}, err
	}
	products, err := s.Products.List()
	if err != nil {
		return IntegrityReport{}, err
	}

	known := make(map[string]bool, len(products))
	for _, p := range products {
		known[p.ID] = true
	}
	issues := []string{}
	for _, o := range orders {
		for _, it := range o.Items {
			if !known[it.ProductID] {
				issues = append(issues, fmt.Sprintf("Order %s references non-existent product %s", o.ID, it.ProductID))
			}
		}
	}

	return IntegrityReport{
		Valid:       len(issues) == 0,
		IssuesFound: len(issues),
		Issues:      issues,
		CheckedAt:   repos.Now(),
	}, nil
}

func (s *DashboardService) AdminSummary() (AdminSummary, error) {
	orders, err := s.Orders.List()
	if err != nil {
		return AdminSummary{}, err
	}
	products, err := s.Products.List()
	if err != nil {
		return AdminSummary{}, err
	}

	out := AdminSummary{TotalOrders: len(orders), TotalProducts: len(products)}
	for _, o := range orders {
		out.TotalRevenue += o.Total
		switch o.Status {
		case domain.StatusCompleted:
			out.CompletedOrders++
		case domain.StatusProcessing:
			out.ProcessingOrders++
		case domain.StatusPending:
			out.PendingOrders++
		}
	}
	for _, p := range products {
		if p.LowStock() {
			out.LowStockProducts++
		}
	}
	if len(orders) > 0 {
		out.AverageOrderValue = out.TotalRevenue / float64(len(orders))
	}
	return out, nil
}
