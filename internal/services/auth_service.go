package services

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/niel2512/hackathon-SmartFlow/internal/apperr"
	"github.com/niel2512/hackathon-SmartFlow/internal/domain"
	"github.com/niel2512/hackathon-SmartFlow/internal/repos"
)

var ErrBadCreds = apperr.Unauthorized("Invalid email or password")

type AuthService struct {
	Users *repos.UserRepo
}

func NewAuthService(users *repos.UserRepo) *AuthService { return &AuthService{Users: users} }

// Register creates a user and an initial session, returning the bearer token.
func (s *AuthService) Register(in domain.RegisterInput) (*domain.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if existing, err := s.Users.ByEmail(email); err == nil && existing != nil {
		return nil, "", apperr.Conflict("Email already exists")
	} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 12)
	if err != nil {
		return nil, "", err
	}
	u := domain.User{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Hash:      string(hash),
		Role:      in.Role,
		CreatedAt: repos.Now(),
	}
	if err := s.Users.Create(u); err != nil {
		return nil, "", err
	}

	token := uuid.NewString()
	if err := s.Users.CreateSession(token, u.ID); err != nil {
		return nil, "", err
	}
	return &u, token, nil
}

func (s *AuthService) Login(email, password string) (*domain.User, string, error) {
	u, err := s.Users.ByEmail(strings.TrimSpace(email))
	if err != nil {
		return nil, "", ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, "", ErrBadCreds
	}
	token := uuid.NewString()
	if err := s.Users.CreateSession(token, u.ID); err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) Logout(token string) error {
	return s.Users.DeleteSession(token)
}

func (s *AuthService) CurrentUser(token string) (*domain.User, error) {
	return s.Users.SessionUser(token)
}
