package repos

import (
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	// Ensure a bootstrap admin exists (idempotent; safe to run every start).
	if err := seedAdmin(db); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the SmartFlow tables if missing. Exported so tests can
// bootstrap :memory: databases the same way main does.
func EnsureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
  min_stock INTEGER NOT NULL DEFAULT 0 CHECK (min_stock >= 0),
  price NUMERIC NOT NULL CHECK (price >= 0),
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  customer_name TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'Pending' CHECK (status IN ('Pending','Processing','Completed')),
  total NUMERIC NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);
CREATE INDEX IF NOT EXISTS idx_orders_status     ON orders(status);

-- Keyed by line position: an order may list the same product on several lines.
CREATE TABLE IF NOT EXISTS order_items(
  order_id   TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  position   INTEGER NOT NULL,
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL CHECK (quantity >= 1),
  price NUMERIC NOT NULL,
  PRIMARY KEY (order_id, position)
);

-- "trigger" is a reserved word in SQLite, hence the quoting.
CREATE TABLE IF NOT EXISTS workflow_rules(
  id TEXT PRIMARY KEY,
  "trigger" TEXT NOT NULL CHECK ("trigger" IN ('New Order','Low Stock','Order Completed')),
  action TEXT NOT NULL CHECK (action IN ('Send Notification','Reduce Stock','Assign Staff')),
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS notification_logs(
  id TEXT PRIMARY KEY,
  message TEXT NOT NULL,
  type TEXT NOT NULL CHECK (type IN ('Order','Stock','Automation')),
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_notifications_created_at ON notification_logs(created_at);

CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('Admin','Staff')),
  created_at TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  created_at TEXT NOT NULL,
  last_seen TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);

CREATE TABLE IF NOT EXISTS audit_logs(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  user_email TEXT NOT NULL,
  action TEXT NOT NULL,
  entity_type TEXT NOT NULL,
  entity_id TEXT NOT NULL,
  changes TEXT NOT NULL DEFAULT '{}',
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_audit_created_at ON audit_logs(created_at);
`
	_, err := db.Exec(schema)
	return err
}

func seedAdmin(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM users WHERE role='Admin'`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] creating bootstrap admin user admin@smartflow.local")
	hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe!123"), 12)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO users(id, name, email, password_hash, role, created_at)
		VALUES('u-admin', 'Admin', 'admin@smartflow.local', ?, 'Admin', ?)
		ON CONFLICT(email) DO NOTHING
	`, string(hash), now())
	return err
}

// now is the single timestamp format used across tables and JSON.
func now() string { return time.Now().UTC().Format(time.RFC3339) }

// Now exposes the repo timestamp format to services.
func Now() string { return now() }
