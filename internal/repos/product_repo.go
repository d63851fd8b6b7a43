package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/niel2512/hackathon-SmartFlow/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT id, name, stock, min_stock, price, created_at
	  FROM products
	  ORDER BY created_at DESC, id
	`)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, name, stock, min_stock, price, created_at
	  FROM products WHERE id = ?
	`, id)
	return p, err
}

// GetTx reads a product inside a transaction so stock checks and the writes
// that depend on them observe the same state.
func (r *ProductRepo) GetTx(tx *sqlx.Tx, id string) (domain.Product, error) {
	var p domain.Product
	err := tx.Get(&p, `
	  SELECT id, name, stock, min_stock, price, created_at
	  FROM products WHERE id = ?
	`, id)
	return p, err
}

func (r *ProductRepo) Create(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id, name, stock, min_stock, price, created_at)
	  VALUES(?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.Stock, p.MinStock, p.Price, p.CreatedAt)
	return err
}

func (r *ProductRepo) Update(p domain.Product) error {
	_, err := r.db.Exec(`
	  UPDATE products SET name = ?, stock = ?, min_stock = ?, price = ? WHERE id = ?
	`, p.Name, p.Stock, p.MinStock, p.Price, p.ID)
	return err
}

func (r *ProductRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	return err
}

// SetStockTx writes an absolute stock value, floored at 0 to satisfy the
// products.stock CHECK.
func (r *ProductRepo) SetStockTx(tx *sqlx.Tx, id string, stock int) error {
	if stock < 0 {
		stock = 0
	}
	_, err := tx.Exec(`UPDATE products SET stock = ? WHERE id = ?`, stock, id)
	return err
}

// AddStockTx increments stock by delta with no upper clamp (used when deleting
// an order returns reserved units).
func (r *ProductRepo) AddStockTx(tx *sqlx.Tx, id string, delta int) error {
	_, err := tx.Exec(`UPDATE products SET stock = stock + ? WHERE id = ?`, delta, id)
	return err
}
