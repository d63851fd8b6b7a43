package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/niel2512/hackathon-SmartFlow/internal/domain"
)

type UserRepo struct{ db *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.Get(&u, `
	  SELECT id, name, email, password_hash, role, created_at
	  FROM users WHERE LOWER(email) = LOWER(?)
	`, email); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	if err := r.db.Get(&u, `
	  SELECT id, name, email, password_hash, role, created_at
	  FROM users WHERE id = ?
	`, id); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(u domain.User) error {
	_, err := r.db.Exec(`
	  INSERT INTO users(id, name, email, password_hash, role, created_at)
	  VALUES(?, ?, ?, ?, ?, ?)
	`, u.ID, u.Name, u.Email, u.Hash, u.Role, u.CreatedAt)
	return err
}

// CreateSession binds a bearer token to a user.
func (r *UserRepo) CreateSession(sid, userID string) error {
	_, err := r.db.Exec(`
	  INSERT INTO sessions(id, user_id, created_at, last_seen) VALUES(?, ?, ?, ?)
	`, sid, userID, now(), now())
	return err
}

func (r *UserRepo) DeleteSession(sid string) error {
	_, err := r.db.Exec(`DELETE FROM sessions WHERE id = ?`, sid)
	return err
}

// SessionUser resolves a bearer token to its user and refreshes last_seen.
func (r *UserRepo) SessionUser(sid string) (*domain.User, error) {
	var u domain.User
	if err := r.db.Get(&u, `
	  SELECT u.id, u.name, u.email, u.password_hash, u.role, u.created_at
	  FROM sessions s JOIN users u ON u.id = s.user_id
	  WHERE s.id = ?
	`, sid); err != nil {
		return nil, err
	}
	_, _ = r.db.Exec(`UPDATE sessions SET last_seen = ? WHERE id = ?`, now(), sid)
	return &u, nil
}
