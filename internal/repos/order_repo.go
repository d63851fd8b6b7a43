package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/niel2512/hackathon-SmartFlow/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

type itemRow struct {
	OrderID string `db:"order_id"`
	domain.OrderItem
}

func (r *OrderRepo) List() ([]domain.Order, error) {
	orders := []domain.Order{}
	if err := r.db.Select(&orders, `
	  SELECT id, customer_name, status, total, created_at, updated_at
	  FROM orders
	  ORDER BY created_at DESC, id
	`); err != nil {
		return nil, err
	}

	rows := []itemRow{}
	if err := r.db.Select(&rows, `
	  SELECT order_id, product_id, quantity, price FROM order_items
	  ORDER BY order_id, position
	`); err != nil {
		return nil, err
	}
	byOrder := make(map[string][]domain.OrderItem, len(orders))
	for _, it := range rows {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it.OrderItem)
	}
	for i := range orders {
		items := byOrder[orders[i].ID]
		if items == nil {
			items = []domain.OrderItem{}
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *OrderRepo) Get(id string) (domain.Order, error) {
	var o domain.Order
	if err := r.db.Get(&o, `
	  SELECT id, customer_name, status, total, created_at, updated_at
	  FROM orders WHERE id = ?
	`, id); err != nil {
		return domain.Order{}, err
	}
	items := []domain.OrderItem{}
	if err := r.db.Select(&items, `
	  SELECT product_id, quantity, price FROM order_items WHERE order_id = ? ORDER BY position
	`, id); err != nil {
		return domain.Order{}, err
	}
	o.Items = items
	return o, nil
}

func (r *OrderRepo) GetTx(tx *sqlx.Tx, id string) (domain.Order, error) {
	var o domain.Order
	if err := tx.Get(&o, `
	  SELECT id, customer_name, status, total, created_at, updated_at
	  FROM orders WHERE id = ?
	`, id); err != nil {
		return domain.Order{}, err
	}
	items := []domain.OrderItem{}
	if err := tx.Select(&items, `
	  SELECT product_id, quantity, price FROM order_items WHERE order_id = ? ORDER BY position
	`, id); err != nil {
		return domain.Order{}, err
	}
	o.Items = items
	return o, nil
}

func (r *OrderRepo) CreateTx(tx *sqlx.Tx, o domain.Order) error {
	if _, err := tx.Exec(`
	  INSERT INTO orders(id, customer_name, status, total, created_at, updated_at)
	  VALUES(?, ?, ?, ?, ?, ?)
	`, o.ID, o.CustomerName, o.Status, o.Total, o.CreatedAt, o.UpdatedAt); err != nil {
		return err
	}
	return r.insertItemsTx(tx, o.ID, o.Items)
}

func (r *OrderRepo) insertItemsTx(tx *sqlx.Tx, orderID string, items []domain.OrderItem) error {
	for i, it := range items {
		if _, err := tx.Exec(`
		  INSERT INTO order_items(order_id, position, product_id, quantity, price)
		  VALUES(?, ?, ?, ?, ?)
		`, orderID, i, it.ProductID, it.Quantity, it.Price); err != nil {
			return err
		}
	}
	return nil
}

// UpdateStatusTx only writes status/updated_at; transition policy lives in the
// service layer.
func (r *OrderRepo) UpdateStatusTx(tx *sqlx.Tx, id string, status domain.OrderStatus, updatedAt string) error {
	_, err := tx.Exec(`UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`, status, updatedAt, id)
	return err
}

// ReplaceTx rewrites the header fields and line items of a Pending order.
func (r *OrderRepo) ReplaceTx(tx *sqlx.Tx, o domain.Order) error {
	if _, err := tx.Exec(`
	  UPDATE orders SET customer_name = ?, total = ?, updated_at = ? WHERE id = ?
	`, o.CustomerName, o.Total, o.UpdatedAt, o.ID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM order_items WHERE order_id = ?`, o.ID); err != nil {
		return err
	}
	return r.insertItemsTx(tx, o.ID, o.Items)
}

func (r *OrderRepo) DeleteTx(tx *sqlx.Tx, id string) error {
	if _, err := tx.Exec(`DELETE FROM order_items WHERE order_id = ?`, id); err != nil {
		return err
	}
	_, err := tx.Exec(`DELETE FROM orders WHERE id = ?`, id)
	return err
}
