package repository

import (
	"context"

	"github.com/horecaseek-service/internal/domain"
)

// EstablishmentRepository persists professional venue listings.
type EstablishmentRepository interface {
	// Create inserts a new establishment and returns it with generated fields.
	Create(ctx context.Context, est *domain.Establishment) (*domain.Establishment, error)

	// Update rewrites the mutable columns of an establishment owned by
	// userID. Returns ErrListingNotFound when no row matches id+owner.
	Update(ctx context.Context, userID string, est *domain.Establishment) (*domain.Establishment, error)

	// GetByID returns an establishment, ErrListingNotFound when absent.
	GetByID(ctx context.Context, id string) (*domain.Establishment, error)

	// ListByCategory returns all establishments of one category (public
	// category pages).
	ListByCategory(ctx context.Context, category domain.Category) ([]*domain.Establishment, error)

	// ListByOwner returns the establishments owned by a user, newest first.
	ListByOwner(ctx context.Context, userID string) ([]*domain.Establishment, error)

	// SearchByNameOrCategory returns establishments whose name or category
	// contains the query as a case-insensitive substring.
	SearchByNameOrCategory(ctx context.Context, query string) ([]*domain.Establishment, error)

	// AddVote folds one vote into the accumulator atomically
	// (sum += rating, count += 1 in a single statement) and returns the
	// updated pair. Concurrent votes can never lose an update.
	AddVote(ctx context.Context, id string, rating int) (*domain.RatingPair, error)

	// Count returns the total number of establishments.
	Count(ctx context.Context) (int64, error)
}
