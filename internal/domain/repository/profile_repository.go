package repository

import (
	"context"

	"github.com/horecaseek-service/internal/domain"
)

// ProfileRepository persists per-identity profiles.
type ProfileRepository interface {
	// Upsert creates the profile for a user or updates it in place.
	// Uniqueness per user_id is enforced here (ON CONFLICT DO UPDATE),
	// keeping the one-profile-per-identity invariant.
	Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)

	// GetByUserID returns the profile owned by a user. A missing profile is
	// ErrProfileNotFound, distinct from any query failure.
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}
