package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/niel2512/hackathon-SmartFlow/internal/apperr"
	"github.com/niel2512/hackathon-SmartFlow/internal/domain"
	applog "github.com/niel2512/hackathon-SmartFlow/internal/log"
	"github.com/niel2512/hackathon-SmartFlow/internal/repos"
)

// OrderService owns the one piece of cross-entity business logic: stock is
// checked at creation, decremented at completion, and returned on deletion.
// Every check-then-act sequence runs inside a single transaction so two
// concurrent requests cannot both pass a stock check against the same product.
type OrderService struct {
	db       *sqlx.DB
	Products *repos.ProductRepo
	Orders   *repos.OrderRepo
	Notes    *repos.NotificationRepo
	Audit    *repos.AuditRepo
}

func NewOrderService(db *sqlx.DB, products *repos.ProductRepo, orders *repos.OrderRepo, notes *repos.NotificationRepo, audit *repos.AuditRepo) *OrderService {
	return &OrderService{db: db, Products: products, Orders: orders, Notes: notes, Audit: audit}
}

const (
	systemUserID    = "system"
	systemUserEmail = "system@smartflow.local"
)

func actorIDs(actor *domain.User) (string, string) {
	if actor == nil {
		return systemUserID, systemUserEmail
	}
	return actor.ID, actor.Email
}

func (s *OrderService) List() ([]domain.Order, error) { return s.Orders.List() }

func (s *OrderService) Get(id string) (domain.Order, error) {
	o, err := s.Orders.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, apperr.NotFound("Order not found")
	}
	return o, err
}

// resolveItems checks every requested item against current stock and returns
// the priced line items plus the order total. All items are validated before
// the caller mutates anything.
func (s *OrderService) resolveItems(tx *sqlx.Tx, items []domain.OrderItemInput) ([]domain.OrderItem, float64, error) {
	out := make([]domain.OrderItem, 0, len(items))
	total := 0.0
	for _, in := range items {
		p, err := s.Products.GetTx(tx, in.ProductID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, apperr.NotFound(fmt.Sprintf("Product with ID %s not found", in.ProductID))
		}
		if err != nil {
			return nil, 0, err
		}
		if in.Quantity > p.Stock {
			return nil, 0, apperr.InsufficientStock(fmt.Sprintf(
				"Insufficient stock for %s. Available: %d, Requested: %d", p.Name, p.Stock, in.Quantity))
		}
		out = append(out, domain.OrderItem{ProductID: p.ID, Quantity: in.Quantity, Price: p.Price})
		total += float64(in.Quantity) * p.Price
	}
	return out, total, nil
}

// Create validates stock availability, snapshots prices and persists a Pending
// order. Stock is NOT decremented here; that happens at completion.
func (s *OrderService) Create(in domain.CreateOrderInput) (domain.Order, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return domain.Order{}, err
	}
	defer func() { _ = tx.Rollback() }()

	items, total, err := s.resolveItems(tx, in.Items)
	if err != nil {
		return domain.Order{}, err
	}

	ts := repos.Now()
	o := domain.Order{
		ID:           uuid.NewString(),
		CustomerName: in.CustomerName,
		Items:        items,
		Status:       domain.StatusPending,
		Total:        total,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	if err := s.Orders.CreateTx(tx, o); err != nil {
		return domain.Order{}, err
	}
	if _, err := s.Notes.AppendTx(tx, "New order created: "+o.CustomerName, domain.NotifyOrder); err != nil {
		return domain.Order{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

// UpdateStatus applies a status transition. Transitioning to Completed
// decrements stock for every line item (floored at 0) and returns the low
// stock alert messages generated along the way. Orders that already reached
// Completed are terminal.
func (s *OrderService) UpdateStatus(id string, status domain.OrderStatus, actor *domain.User) (domain.Order, []string, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return domain.Order{}, nil, err
	}
	defer func() { _ = tx.Rollback() }()

	o, err := s.Orders.GetTx(tx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, nil, apperr.NotFound("Order not found")
	}
	if err != nil {
		return domain.Order{}, nil, err
	}
	if o.Status == domain.StatusCompleted {
		return domain.Order{}, nil, apperr.InvalidOperation("Completed orders cannot change status")
	}

	lowStockAlerts := []string{}
	if status == domain.StatusCompleted {
		for _, it := range o.Items {
			p, err := s.Products.GetTx(tx, it.ProductID)
			if errors.Is(err, sql.ErrNoRows) {
				// Product deleted since the order was placed; nothing to decrement.
				continue
			}
			if err != nil {
				return domain.Order{}, nil, err
			}
			newStock := p.Stock - it.Quantity
			if newStock < 0 {
				newStock = 0
			}
			if err := s.Products.SetStockTx(tx, p.ID, newStock); err != nil {
				return domain.Order{}, nil, err
			}
			if newStock < p.MinStock {
				msg := fmt.Sprintf("Low stock alert: %s (%d units remaining)", p.Name, newStock)
				if _, err := s.Notes.AppendTx(tx, msg, domain.NotifyStock); err != nil {
					return domain.Order{}, nil, err
				}
				lowStockAlerts = append(lowStockAlerts, msg)
			}
		}
	}

	prev := o.Status
	o.Status = status
	o.UpdatedAt = repos.Now()
	if err := s.Orders.UpdateStatusTx(tx, id, status, o.UpdatedAt); err != nil {
		return domain.Order{}, nil, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Order{}, nil, err
	}

	uid, email := actorIDs(actor)
	// The transition is already committed; an audit failure is logged, not returned.
	if _, err := s.Audit.Record(uid, email, "UPDATE_ORDER_STATUS", domain.EntityOrder, id, map[string]any{
		"status": status, "previousStatus": prev,
	}); err != nil {
		applog.Error(nil, "orders.audit", err, map[string]any{"order": id})
	}
	return o, lowStockAlerts, nil
}

// Edit replaces customer name and/or items on a Pending order. Changed items
// are re-validated against products and current stock before any write, and
// prices are re-snapshotted.
func (s *OrderService) Edit(id string, in domain.UpdateOrderInput) (domain.Order, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return domain.Order{}, err
	}
	defer func() { _ = tx.Rollback() }()

	o, err := s.Orders.GetTx(tx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, apperr.NotFound("Order not found")
	}
	if err != nil {
		return domain.Order{}, err
	}
	if o.Status != domain.StatusPending {
		return domain.Order{}, apperr.InvalidOperation("Only pending orders can be edited")
	}

	if in.CustomerName != nil {
		o.CustomerName = *in.CustomerName
	}
	if in.Items != nil {
		items, total, err := s.resolveItems(tx, in.Items)
		if err != nil {
			return domain.Order{}, err
		}
		o.Items = items
		o.Total = total
	}
	o.UpdatedAt = repos.Now()
	if err := s.Orders.ReplaceTx(tx, o); err != nil {
		return domain.Order{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

// Delete removes an order and returns every item's quantity to its product's
// stock, with no upper clamp.
func (s *OrderService) Delete(id string, actor *domain.User) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	o, err := s.Orders.GetTx(tx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("Order not found")
	}
	if err != nil {
		return err
	}

	for _, it := range o.Items {
		if err := s.Products.AddStockTx(tx, it.ProductID, it.Quantity); err != nil {
			return err
		}
	}
	if err := s.Orders.DeleteTx(tx, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	uid, email := actorIDs(actor)
	if _, err := s.Audit.Record(uid, email, "DELETE_ORDER", domain.EntityOrder, id, map[string]any{
		"deleted": o,
	}); err != nil {
		applog.Error(nil, "orders.audit", err, map[string]any{"order": id})
	}
	return nil
}
