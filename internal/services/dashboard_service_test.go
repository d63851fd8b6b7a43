package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/niel2512/hackathon-SmartFlow/internal/domain"
	"github.com/niel2512/hackathon-SmartFlow/internal/repos"
	"github.com/niel2512/hackathon-SmartFlow/internal/services"
)

func dashFixture(t *testing.T) (stores, *services.DashboardService, *services.OrderService) {
	t.Helper()
	st := memdb(t)
	dash := services.NewDashboardService(st.products, st.orders, st.notes, repos.NewWorkflowRepo(st.db))
	orderSvc := services.NewOrderService(st.db, st.products, st.orders, st.notes, st.audit)
	return st, dash, orderSvc
}

func TestDashboardSummary(t *testing.T) {
	st, dash, orderSvc := dashFixture(t)
	seedProduct(t, st, "p-1", "Widget", 10, 5, 20)
	seedProduct(t, st, "p-2", "Gadget", 1, 5, 50) // already low stock

	o1, err := orderSvc.Create(domain.CreateOrderInput{
		CustomerName: "Acme Corp",
		Items:        []domain.OrderItemInput{{ProductID: "p-1", Quantity: 2}},
	})
	require.NoError(t, err)
	o2, err := orderSvc.Create(domain.CreateOrderInput{
		CustomerName: "Globex",
		Items:        []domain.OrderItemInput{{ProductID: "p-1", Quantity: 1}},
	})
	require.NoError(t, err)

	_, _, err = orderSvc.UpdateStatus(o1.ID, domain.StatusCompleted, nil)
	require.NoError(t, err)
	_, _, err = orderSvc.UpdateStatus(o2.ID, domain.StatusProcessing, nil)
	require.NoError(t, err)

	s, err := dash.Summary()
	require.NoError(t, err)
	require.Equal(t, 2, s.TotalOrders)
	require.Equal(t, 1, s.LowStockAlerts, "only p-2 sits below its threshold")
	require.Equal(t, 1, s.StaffTasks)
	require.Equal(t, 40.0, s.Revenue, "only completed orders count toward revenue")
	require.Len(t, s.SalesData, 12)
	require.Equal(t, []services.StatusCount{
		{Name: "Pending", Value: 0},
		{Name: "Processing", Value: 1},
		{Name: "Completed", Value: 1},
	}, s.OrderStatusData)
	require.NotEmpty(t, s.RecentNotifications)
	require.LessOrEqual(t, len(s.RecentNotifications), 5)
	// Newest first.
	last := s.RecentNotifications[0]
	all, err := st.notes.List()
	require.NoError(t, err)
	require.Equal(t, all[len(all)-1].ID, last.ID)
}

func TestDashboardHealth_Warnings(t *testing.T) {
	_, dash, _ := dashFixture(t)

	h, err := dash.Health()
	require.NoError(t, err)
	require.Equal(t, "critical", h.Status, "single warning reports critical")
	require.Equal(t, []string{"No products in inventory"}, h.Warnings)
	require.Equal(t, 0, h.Stats["products"])
}

func TestIntegrity_FlagsDanglingProductReferences(t *testing.T) {
	st, dash, orderSvc := dashFixture(t)
	seedProduct(t, st, "p-1", "Widget", 10, 5, 20)

	o, err := orderSvc.Create(domain.CreateOrderInput{
		CustomerName: "Acme Corp",
		Items:        []domain.OrderItemInput{{ProductID: "p-1", Quantity: 2}},
	})
	require.NoError(t, err)

	r, err := dash.Integrity()
	require.NoError(t, err)
	require.True(t, r.Valid)
	require.Equal(t, 0, r.IssuesFound)
	require.Empty(t, r.Issues)

	// Deleting the product leaves the order's line item dangling.
	require.NoError(t, st.products.Delete("p-1"))

	r, err = dash.Integrity()
	require.NoError(t, err)
	require.False(t, r.Valid)
	require.Equal(t, 1, r.IssuesFound)
	require.Equal(t, "Order "+o.ID+" references non-existent product p-1", r.Issues[0])
	require.NotEmpty(t, r.CheckedAt)
}

func TestAdminSummary(t *testing.T) {
	st, dash, orderSvc := dashFixture(t)
	seedProduct(t, st, "p-1", "Widget", 10, 5, 20)

	o, err := orderSvc.Create(domain.CreateOrderInput{
		CustomerName: "Acme Corp",
		Items:        []domain.OrderItemInput{{ProductID: "p-1", Quantity: 2}},
	})
	require.NoError(t, err)
	_, _, err = orderSvc.UpdateStatus(o.ID, domain.StatusCompleted, nil)
	require.NoError(t, err)

	s, err := dash.AdminSummary()
	require.NoError(t, err)
	require.Equal(t, 1, s.TotalOrders)
	require.Equal(t, 1, s.CompletedOrders)
	require.Equal(t, 40.0, s.TotalRevenue)
	require.Equal(t, 40.0, s.AverageOrderValue)
	require.Equal(t, 1, s.TotalProducts)
}
