package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/credovault/credo/internal/auth/domain"
	"github.com/credovault/credo/internal/auth/store"
	"github.com/credovault/credo/pkg/cryptox"
	"github.com/credovault/credo/pkg/idx"
	"github.com/credovault/credo/pkg/slogx"
)

var (
	ErrUserExists = errors.New("user_exists")

	// ErrInvalidCredentials covers both unknown-username and wrong-password.
	// Callers must not distinguish the two, otherwise login becomes a
	// username enumeration oracle.
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

// AuthService orchestrates registration and login against the credential
// store and the token issuer.
type AuthService struct {
	Store  store.Store
	Tokens *TokenService
}

// Register creates a new user and returns the assigned id. The username is
// case-folded before storage; a name that differs from an existing one only
// by case is a duplicate.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (string, error) {
	log := slogx.FromContext(ctx)
	folded := domain.FoldUsername(username)

	// Courtesy lookup so the common duplicate case doesn't burn a bcrypt
	// hash. The unique index remains the actual guarantee.
	_, err := s.Store.Users().GetUserByUsername(ctx, folded)
	switch {
	case err == nil:
		return "", ErrUserExists
	case !errors.Is(err, store.ErrNotFound):
		return "", fmt.Errorf("register: lookup user: %w", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("register: hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     folded,
		PasswordHash: hash,
		Email:        email,
		Role:         domain.DefaultRole,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost a race with a concurrent registration of the same name.
			return "", ErrUserExists
		}
		return "", fmt.Errorf("register: create user: %w", err)
	}

	log.Info("user registered", "user_id", user.ID)
	return user.ID, nil
}

// Login verifies the credentials and, on success, issues a bearer token
// carrying the user's id and role.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	log := slogx.FromContext(ctx)
	folded := domain.FoldUsername(username)

	user, err := s.Store.Users().GetUserByUsername(ctx, folded)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("login: issue token: %w", err)
	}

	log.Info("user logged in", "user_id", user.ID)
	return token, nil
}
