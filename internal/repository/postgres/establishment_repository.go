package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/domain"
	"github.com/horecaseek-service/internal/domain/repository"
	"github.com/horecaseek-service/internal/pkg/errors"
)

const establishmentColumns = `
	id, user_id, name, category, email, phone, website,
	latitude, longitude, price_range, opening_hours, gallery_urls,
	votes_sum, votes_count, created_at, updated_at
`

type establishmentRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewEstablishmentRepository(db *DB) repository.EstablishmentRepository {
	return &establishmentRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEstablishment(row rowScanner) (*domain.Establishment, error) {
	var est domain.Establishment
	err := row.Scan(
		&est.ID, &est.UserID, &est.Name, &est.Category, &est.Email, &est.Phone, &est.Website,
		&est.Latitude, &est.Longitude, &est.PriceRange, &est.OpeningHours, pq.Array(&est.GalleryURLs),
		&est.VotesSum, &est.VotesCount, &est.CreatedAt, &est.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &est, nil
}

func (r *establishmentRepository) Create(ctx context.Context, est *domain.Establishment) (*domain.Establishment, error) {
	if est.ID == "" {
		est.ID = uuid.NewString()
	}

	query := `
		INSERT INTO establishments (
			id, user_id, name, category, email, phone, website,
			latitude, longitude, price_range, opening_hours, gallery_urls
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + establishmentColumns

	row := r.db.QueryRowContext(ctx, query,
		est.ID, est.UserID, est.Name, est.Category, est.Email, est.Phone, est.Website,
		est.Latitude, est.Longitude, est.PriceRange, est.OpeningHours, pq.Array(est.GalleryURLs),
	)

	saved, err := scanEstablishment(row)
	if err != nil {
		r.logger.Error("Failed to create establishment", zap.String("user_id", est.UserID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return saved, nil
}

// Update filters on id AND user_id so a non-owner write matches zero rows.
// Ownership is also checked in the usecase; the predicate here mirrors the
// row-level rule the storage layer must enforce.
func (r *establishmentRepository) Update(ctx context.Context, userID string, est *domain.Establishment) (*domain.Establishment, error) {
	query := `
		UPDATE establishments SET
			name          = $3,
			category      = $4,
			email         = $5,
			phone         = $6,
			website       = $7,
			latitude      = $8,
			longitude     = $9,
			price_range   = $10,
			opening_hours = $11,
			gallery_urls  = $12,
			updated_at    = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + establishmentColumns

	row := r.db.QueryRowContext(ctx, query,
		est.ID, userID, est.Name, est.Category, est.Email, est.Phone, est.Website,
		est.Latitude, est.Longitude, est.PriceRange, est.OpeningHours, pq.Array(est.GalleryURLs),
	)

	saved, err := scanEstablishment(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrListingNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update establishment", zap.String("id", est.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return saved, nil
}

func (r *establishmentRepository) GetByID(ctx context.Context, id string) (*domain.Establishment, error) {
	query := `SELECT ` + establishmentColumns + ` FROM establishments WHERE id = $1`

	est, err := scanEstablishment(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrListingNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get establishment", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return est, nil
}

func (r *establishmentRepository) ListByCategory(ctx context.Context, category domain.Category) ([]*domain.Establishment, error) {
	query := `SELECT ` + establishmentColumns + ` FROM establishments WHERE category = $1 ORDER BY created_at DESC`
	return r.queryMany(ctx, query, string(category))
}

func (r *establishmentRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Establishment, error) {
	query := `SELECT ` + establishmentColumns + ` FROM establishments WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryMany(ctx, query, userID)
}

func (r *establishmentRepository) SearchByNameOrCategory(ctx context.Context, query string) ([]*domain.Establishment, error) {
	// Substring match on name OR category, case-insensitive. Matching stays
	// inside these two columns: no cross-field matches.
	q := `
		SELECT ` + establishmentColumns + `
		FROM establishments
		WHERE name ILIKE '%' || $1 || '%' OR category ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
	`
	return r.queryMany(ctx, q, query)
}

// AddVote is a single-statement increment: concurrent voters serialize on the
// row, and a lost update is impossible.
func (r *establishmentRepository) AddVote(ctx context.Context, id string, rating int) (*domain.RatingPair, error) {
	query := `
		UPDATE establishments
		SET votes_sum = votes_sum + $2, votes_count = votes_count + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING votes_sum, votes_count
	`

	var pair domain.RatingPair
	err := r.db.QueryRowContext(ctx, query, id, rating).Scan(&pair.VotesSum, &pair.VotesCount)
	if err == sql.ErrNoRows {
		return nil, errors.ErrListingNotFound
	}
	if err != nil {
		r.logger.Error("Failed to add vote", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &pair, nil
}

func (r *establishmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM establishments`); err != nil {
		r.logger.Error("Failed to count establishments", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}

func (r *establishmentRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]*domain.Establishment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query establishments", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var ests []*domain.Establishment
	for rows.Next() {
		est, err := scanEstablishment(rows)
		if err != nil {
			r.logger.Error("Failed to scan establishment", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		ests = append(ests, est)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Establishment rows iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return ests, nil
}
