package service

import (
	"context"
	"errors"

	"github.com/rkenterprise/site-backend/internal/model"
)

// Admin user errors.
var (
	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username already exists")
)

// AdminUserStore is the persistence surface the admin user service needs.
// Lookups return nil without error when no row matches; mutations report
// whether a row matched.
type AdminUserStore interface {
	List(ctx context.Context) ([]model.AdminUser, error)
	GetByID(ctx context.Context, id int) (*model.AdminUser, error)
	GetByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	UsernameExists(ctx context.Context, username string, excludeID int) (bool, error)
	Create(ctx context.Context, u *model.AdminUser) error
	Update(ctx context.Context, id int, username, newHash string) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// AdminUserService implements admin account management rules.
type AdminUserService struct {
	store AdminUserStore
	auth  *AuthService
}

func NewAdminUserService(store AdminUserStore, auth *AuthService) *AdminUserService {
	return &AdminUserService{store: store, auth: auth}
}

// List returns every admin account ascending by id.
func (s *AdminUserService) List(ctx context.Context) ([]model.AdminUser, error) {
	return s.store.List(ctx)
}

// GetByID returns one admin account or ErrNotFound.
func (s *AdminUserService) GetByID(ctx context.Context, id int) (*model.AdminUser, error) {
	u, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// GetByUsername returns one admin account or ErrNotFound. Used by login.
func (s *AdminUserService) GetByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	u, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// Create adds an admin account, rejecting duplicate usernames.
// The password is hashed before it reaches the store.
func (s *AdminUserService) Create(ctx context.Context, username, password string) (*model.AdminUser, error) {
	taken, err := s.store.UsernameExists(ctx, username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &model.AdminUser{Username: username, PasswordHash: hash}
	if err := s.store.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Update renames an account and rehashes the password only when one is
// provided. The duplicate check excludes the account itself.
func (s *AdminUserService) Update(ctx context.Context, id int, username, password string) error {
	taken, err := s.store.UsernameExists(ctx, username, id)
	if err != nil {
		return err
	}
	if taken {
		return ErrUsernameTaken
	}

	newHash := ""
	if password != "" {
		if newHash, err = s.auth.HashPassword(password); err != nil {
			return err
		}
	}

	matched, err := s.store.Update(ctx, id, username, newHash)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}

// Delete removes an account. The self-deletion guard lives in the handler,
// which knows the authenticated identity.
func (s *AdminUserService) Delete(ctx context.Context, id int) error {
	matched, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}
