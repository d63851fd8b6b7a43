package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/niel2512/hackathon-SmartFlow/internal/domain"
)

type WorkflowRepo struct{ db *sqlx.DB }

func NewWorkflowRepo(db *sqlx.DB) *WorkflowRepo { return &WorkflowRepo{db: db} }

func (r *WorkflowRepo) List() ([]domain.WorkflowRule, error) {
	out := []domain.WorkflowRule{}
	err := r.db.Select(&out, `
	  SELECT id, "trigger", action, created_at
	  FROM workflow_rules
	  ORDER BY created_at, id
	`)
	return out, err
}

func (r *WorkflowRepo) Get(id string) (domain.WorkflowRule, error) {
	var w domain.WorkflowRule
	err := r.db.Get(&w, `
	  SELECT id, "trigger", action, created_at FROM workflow_rules WHERE id = ?
	`, id)
	return w, err
}

func (r *WorkflowRepo) Create(w domain.WorkflowRule) error {
	_, err := r.db.Exec(`
	  INSERT INTO workflow_rules(id, "trigger", action, created_at) VALUES(?, ?, ?, ?)
	`, w.ID, w.Trigger, w.Action, w.CreatedAt)
	return err
}

func (r *WorkflowRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM workflow_rules WHERE id = ?`, id)
	return err
}
