package repository

import (
	"context"

	"github.com/horecaseek-service/internal/domain"
)

// SpotRepository persists user-shared spots.
type SpotRepository interface {
	// Create inserts a new spot and returns it with generated fields.
	Create(ctx context.Context, spot *domain.Spot) (*domain.Spot, error)

	// Update rewrites the mutable columns of a spot owned by userID.
	// Returns ErrListingNotFound when no row matches id+owner.
	Update(ctx context.Context, userID string, spot *domain.Spot) (*domain.Spot, error)

	// GetByID returns a spot, ErrListingNotFound when absent.
	GetByID(ctx context.Context, id string) (*domain.Spot, error)

	// ListAll returns every spot, newest first (public spots page).
	ListAll(ctx context.Context) ([]*domain.Spot, error)

	// ListByOwner returns the spots owned by a user, newest first.
	ListByOwner(ctx context.Context, userID string) ([]*domain.Spot, error)

	// SearchByDescription returns spots whose description contains the query
	// as a case-insensitive substring. Description only: a spot is never
	// matched through its name.
	SearchByDescription(ctx context.Context, query string) ([]*domain.Spot, error)

	// AddVote folds one vote into the accumulator atomically and returns the
	// updated pair.
	AddVote(ctx context.Context, id string, rating int) (*domain.RatingPair, error)

	// Count returns the total number of spots.
	Count(ctx context.Context) (int64, error)
}
