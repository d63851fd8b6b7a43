package repos

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/niel2512/hackathon-SmartFlow/internal/domain"
)

type AuditRepo struct{ db *sqlx.DB }

func NewAuditRepo(db *sqlx.DB) *AuditRepo { return &AuditRepo{db: db} }

// Record stores one audit entry; changes is marshalled to JSON.
func (r *AuditRepo) Record(userID, userEmail, action, entityType, entityID string, changes map[string]any) (domain.AuditEntry, error) {
	raw, err := json.Marshal(changes)
	if err != nil {
		raw = []byte("{}")
	}
	e := domain.AuditEntry{
		ID:         uuid.NewString(),
		UserID:     userID,
		UserEmail:  userEmail,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Changes:    string(raw),
		CreatedAt:  now(),
	}
	_, err = r.db.Exec(`
	  INSERT INTO audit_logs(id, user_id, user_email, action, entity_type, entity_id, changes, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.UserID, e.UserEmail, e.Action, e.EntityType, e.EntityID, e.Changes, e.CreatedAt)
	return e, err
}

func (r *AuditRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM audit_logs`)
	return n, err
}

// ListRecent returns the newest entries first.
func (r *AuditRepo) ListRecent(limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	out := []domain.AuditEntry{}
	err := r.db.Select(&out, `
	  SELECT id, user_id, user_email, action, entity_type, entity_id, changes, created_at
	  FROM audit_logs
	  ORDER BY created_at DESC, id DESC
	  LIMIT ?
	`, limit)
	return out, err
}
