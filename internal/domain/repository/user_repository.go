package repository

import (
	"context"

	"github.com/horecaseek-service/internal/domain"
)

// UserRepository persists service-side identities.
type UserRepository interface {
	// Create inserts a new user. Duplicate emails fail with ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail returns the user for an email, ErrUserNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByID returns the user by id, ErrUserNotFound when absent.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// ConfirmEmail marks the user's email as confirmed.
	ConfirmEmail(ctx context.Context, id string) error
}
