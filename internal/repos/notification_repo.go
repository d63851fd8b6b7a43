package repos

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/niel2512/hackathon-SmartFlow/internal/domain"
)

// NotificationRepo is append-only; entries are never updated or deleted.
type NotificationRepo struct{ db *sqlx.DB }

func NewNotificationRepo(db *sqlx.DB) *NotificationRepo { return &NotificationRepo{db: db} }

func (r *NotificationRepo) List() ([]domain.NotificationLog, error) {
	out := []domain.NotificationLog{}
	err := r.db.Select(&out, `
	  SELECT id, message, type, created_at
	  FROM notification_logs
	  ORDER BY created_at, id
	`)
	return out, err
}

func (r *NotificationRepo) Append(message string, typ domain.NotificationType) (domain.NotificationLog, error) {
	n := domain.NotificationLog{ID: uuid.NewString(), Message: message, Type: typ, CreatedAt: now()}
	_, err := r.db.Exec(`
	  INSERT INTO notification_logs(id, message, type, created_at) VALUES(?, ?, ?, ?)
	`, n.ID, n.Message, n.Type, n.CreatedAt)
	return n, err
}

// AppendTx joins a notification to the transaction that produced its event, so
// a rolled-back mutation leaves no stray log entry.
func (r *NotificationRepo) AppendTx(tx *sqlx.Tx, message string, typ domain.NotificationType) (domain.NotificationLog, error) {
	n := domain.NotificationLog{ID: uuid.NewString(), Message: message, Type: typ, CreatedAt: now()}
	_, err := tx.Exec(`
	  INSERT INTO notification_logs(id, message, type, created_at) VALUES(?, ?, ?, ?)
	`, n.ID, n.Message, n.Type, n.CreatedAt)
	return n, err
}
