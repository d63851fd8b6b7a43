package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/niel2512/hackathon-SmartFlow/internal/apperr"
	"github.com/niel2512/hackathon-SmartFlow/internal/domain"
	"github.com/niel2512/hackathon-SmartFlow/internal/services"
)

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae), "expected coded error, got %v", err)
	require.Equal(t, code, ae.Code)
}

func TestOrderCreate_InsufficientStock(t *testing.T) {
	st := memdb(t)
	svc := services.NewOrderService(st.db, st.products, st.orders, st.notes, st.audit)
	seedProduct(t, st, "p-1", "Widget", 3, 1, 10)

	_, err := svc.Create(domain.CreateOrderInput{
		CustomerName: "Acme Corp",
		Items:        []domain.OrderItemInput{{ProductID: "p-1", Quantity: 5}},
	})
	requireCode(t, err, apperr.CodeInsufficientStock)
	require.Contains(t, err.Error(), "Available: 3, Requested: 5")

	// No order record and no notification were produced.
	orders, err := svc.List()
	require.NoError(t, err)
	require.Empty(t, orders)
	notes, err := st.notes.List()
	require.NoError(t, err)
	require.Empty(t, notes)
}

func TestOrderCreate_UnknownProduct(t *testing.T) {
	st := memdb(t)
	svc := services.NewOrderService(st.db, st.products, st.orders, st.notes, st.audit)

	_, err := svc.Create(domain.CreateOrderInput{
		CustomerName: "Acme Corp",
		Items:        []domain.OrderItemInput{{ProductID: "missing", Quantity: 1}},
	})
	requireCode(t, err, apperr.CodeNotFound)
}

func TestOrderCreate_MultiItemFailureIsAtomic(t *testing.T) {
	st := memdb(t)
	svc := services.NewOrderService(st.db, st.products, st.orders, st.notes, st.audit)
	seedProduct(t, st, "p-1", "Widget", 10, 1, 10)
	seedProduct(t, st, "p-2", "Gadget", 1, 1, 10)

	_, err := svc.Create(domain.CreateOrderInput{
		CustomerName: "Acme Corp",
		Items: []domain.OrderItemInput{
			{ProductID: "p-1", Quantity: 2},
			{ProductID: "p-2", Quantity: 5},
		},
	})
	requireCode(t, err, apperr.CodeInsufficientStock)

	orders, err := svc.List()
	require.NoError(t, err)
	require.Empty(t, orders, "failed multi-item create must leave no order behind")
}

func TestOrderCreate_DuplicateProductLines(t *testing.T) {
	st := memdb(t)
	svc := services.NewOrderService(st.db, st.products, st.orders, st.notes, st.audit)
	seedProduct(t, st, "p-1", "Widget", 10, 2, 5)

	// The same product may appear on several lines; each keeps its own quantity.
	o, err := svc.Create(domain.CreateOrderInput{
		CustomerName: "Acme Corp",
		Items: []domain.OrderItemInput{
			{ProductID: "p-1", Quantity: 2},
			{ProductID: "p-1", Quantity: 3},
		},
	})
	require.NoError(t, err)
	require.Len(t, o.Items, 2)
	require.Equal(t, 25.0, o.Total)

	got, err := svc.Get(o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	require.Equal(t, 2, got.Items[0].Quantity)
	require.Equal(t, 3, got.Items[1].Quantity)

	// Completion decrements once per line.
	_, _, err = svc.UpdateStatus(o.ID, domain.StatusCompleted, nil)
	require.NoError(t, err)
	p, err := st.products.Get("p-1")
	require.NoError(t, err)
	require.Equal(t, 5, p.Stock)

	// Deletion restores once per line.
	require.NoError(t, svc.Delete(o.ID, nil))
	p, err = st.products.Get("p-1")
	require.NoError(t, err)
	require.Equal(t, 10, p.Stock)
}

func TestOrderGet_PreservesItemSequence(t *testing.T) {
	st := memdb(t)
	svc := services.NewOrderService(st.db, st.products, st.orders, st.notes, st.audit)
	seedProduct(t, st, "p-c", "Cog", 10, 1, 1)
	seedProduct(t, st, "p-a", "Axle", 10, 1, 2)
	seedProduct(t, st, "p-b", "Bolt", 10, 1, 3)

	o, err := svc.Create(domain.CreateOrderInput{
		CustomerName: "Acme Corp",
		Items: []domain.OrderItemInput{
			{ProductID: "p-c", Quantity: 1},
			{ProductID: "p-a", Quantity: 1},
			{ProductID: "p-b", Quantity: 1},
		},
	})
	require.NoError(t, err)

	got, err := svc.Get(o.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"p-c", "p-a", "p-b"}, []string{
		got.Items[0].ProductID, got.Items[1].ProductID, got.Items[2].ProductID,
	})
}

func TestOrderCompletion_FloorsStockAtZero(t *testing.T) {
	st := memdb(t)
	orderSvc := services.NewOrderService(st.db, st.products, st.orders, st.notes, st.audit)
	prodSvc := services.NewProductService(st.products)
	seedProduct(t, st, "p-1", "Widget", 3, 2, 10)

	o, err := orderSvc.Create(domain.CreateOrderInput{
		CustomerName: "Acme Corp",
		Items:        []domain.OrderItemInput{{ProductID: "p-1", Quantity: 3}},
	})
	require.NoError(t, err)

	// Stock shrank between creation and completion.
	one := 1
	_, err = prodSvc.Update("p-1", domain.UpdateProductInput{Stock: &one})
	require.NoError(t, err)

	_, alerts, err := orderSvc.UpdateStatus(o.ID, domain.StatusCompleted, nil)
	require.NoError(t, err)

	p, err := st.products.Get("p-1")
	require.NoError(t, err)
	require.Equal(t, 0, p.Stock, "decrement must floor at 0")
	require.Len(t, alerts, 1)
	require.Contains(t, alerts[0], "(0 units remaining)")
}

func TestOrderCompletion_IsTerminal(t *testing.T) {
	st := memdb(t)
	svc := services.NewOrderService(st.db, st.products, st.orders, st.notes, st.audit)
	seedProduct(t, st, "p-1", "Widget", 10, 1, 10)

	o, err := svc.Create(domain.CreateOrderInput{
		CustomerName: "Acme Corp",
		Items:        []domain.OrderItemInput{{ProductID: "p-1", Quantity: 2}},
	})
	require.NoError(t, err)

	_, _, err = svc.UpdateStatus(o.ID, domain.StatusCompleted, nil)
	require.NoError(t, err)

	// No backward transition and no second completion (no double decrement).
	_, _, err = svc.UpdateStatus(o.ID, domain.StatusPending, nil)
	requireCode(t, err, apperr.CodeInvalidOperation)
	_, _, err = svc.UpdateStatus(o.ID, domain.StatusCompleted, nil)
	requireCode(t, err, apperr.CodeInvalidOperation)

	p, err := st.products.Get("p-1")
	require.NoError(t, err)
	require.Equal(t, 8, p.Stock)
}

func TestOrderEdit_PendingOnly(t *testing.T) {
	st := memdb(t)
	svc := services.NewOrderService(st.db, st.products, st.orders, st.notes, st.audit)
	seedProduct(t, st, "p-1", "Widget", 10, 1, 10)

	o, err := svc.Create(domain.CreateOrderInput{
		CustomerName: "Acme Corp",
		Items:        []domain.OrderItemInput{{ProductID: "p-1", Quantity: 2}},
	})
	require.NoError(t, err)

	_, _, err = svc.UpdateStatus(o.ID, domain.StatusProcessing, nil)
	require.NoError(t, err)

	name := "Globex"
	_, err = svc.Edit(o.ID, domain.UpdateOrderInput{CustomerName: &name})
	requireCode(t, err, apperr.CodeInvalidOperation)

	// Order left unmodified.
	got, err := svc.Get(o.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", got.CustomerName)
	require.Equal(t, domain.StatusProcessing, got.Status)
}

func TestOrderEdit_RevalidatesStock(t *testing.T) {
	st := memdb(t)
	svc := services.NewOrderService(st.db, st.products, st.orders, st.notes, st.audit)
	seedProduct(t, st, "p-1", "Widget", 10, 1, 10)
	seedProduct(t, st, "p-2", "Gadget", 2, 1, 50)

	o, err := svc.Create(domain.CreateOrderInput{
		CustomerName: "Acme Corp",
		Items:        []domain.OrderItemInput{{ProductID: "p-1", Quantity: 2}},
	})
	require.NoError(t, err)

	// New item list exceeds p-2's stock; the edit is rejected whole.
	_, err = svc.Edit(o.ID, domain.UpdateOrderInput{
		Items: []domain.OrderItemInput{{ProductID: "p-2", Quantity: 5}},
	})
	requireCode(t, err, apperr.CodeInsufficientStock)

	got, err := svc.Get(o.ID)
	require.NoError(t, err)
	require.Equal(t, "p-1", got.Items[0].ProductID)
	require.Equal(t, 20.0, got.Total)

	// A valid edit re-snapshots prices and recomputes the total.
	edited, err := svc.Edit(o.ID, domain.UpdateOrderInput{
		Items: []domain.OrderItemInput{{ProductID: "p-2", Quantity: 2}},
	})
	require.NoError(t, err)
	require.Equal(t, 100.0, edited.Total)
	require.Equal(t, 50.0, edited.Items[0].Price)
}

func TestOrderStatus_AuditFailureDoesNotFailTransition(t *testing.T) {
	st := memdb(t)
	svc := services.NewOrderService(st.db, st.products, st.orders, st.notes, st.audit)
	seedProduct(t, st, "p-1", "Widget", 10, 1, 10)

	o, err := svc.Create(domain.CreateOrderInput{
		CustomerName: "Acme Corp",
		Items:        []domain.OrderItemInput{{ProductID: "p-1", Quantity: 2}},
	})
	require.NoError(t, err)

	// The transition commits before the audit write; a broken audit store must
	// not turn a committed transition into a caller-visible error.
	_, err = st.db.Exec(`DROP TABLE audit_logs`)
	require.NoError(t, err)

	updated, _, err := svc.UpdateStatus(o.ID, domain.StatusProcessing, nil)
	require.NoError(t, err)
	require.Equal(t, domain.StatusProcessing, updated.Status)
}

func TestProductUpdate_ClampsStockAtZero(t *testing.T) {
	st := memdb(t)
	prodSvc := services.NewProductService(st.products)
	seedProduct(t, st, "p-1", "Widget", 10, 1, 10)

	neg := -5
	p, err := prodSvc.Update("p-1", domain.UpdateProductInput{Stock: &neg, MinStock: &neg})
	require.NoError(t, err)
	require.Equal(t, 0, p.Stock)
	require.Equal(t, 0, p.MinStock)
}

func TestOrderDelete_RestoresWithoutUpperClamp(t *testing.T) {
	st := memdb(t)
	svc := services.NewOrderService(st.db, st.products, st.orders, st.notes, st.audit)
	prodSvc := services.NewProductService(st.products)
	seedProduct(t, st, "p-1", "Widget", 5, 1, 10)

	o, err := svc.Create(domain.CreateOrderInput{
		CustomerName: "Acme Corp",
		Items:        []domain.OrderItemInput{{ProductID: "p-1", Quantity: 5}},
	})
	require.NoError(t, err)

	// Manual restock while the order is open; deletion still adds the full
	// reserved quantity back on top.
	twenty := 20
	_, err = prodSvc.Update("p-1", domain.UpdateProductInput{Stock: &twenty})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(o.ID, nil))
	p, err := st.products.Get("p-1")
	require.NoError(t, err)
	require.Equal(t, 25, p.Stock)
}
