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

const spotColumns = `
	id, user_id, name, description, latitude, longitude, image_urls,
	votes_sum, votes_count, created_at, updated_at
`

type spotRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSpotRepository(db *DB) repository.SpotRepository {
	return &spotRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func scanSpot(row rowScanner) (*domain.Spot, error) {
	var spot domain.Spot
	err := row.Scan(
		&spot.ID, &spot.UserID, &spot.Name, &spot.Description,
		&spot.Latitude, &spot.Longitude, pq.Array(&spot.ImageURLs),
		&spot.VotesSum, &spot.VotesCount, &spot.CreatedAt, &spot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &spot, nil
}

func (r *spotRepository) Create(ctx context.Context, spot *domain.Spot) (*domain.Spot, error) {
	if spot.ID == "" {
		spot.ID = uuid.NewString()
	}

	query := `
		INSERT INTO spots (
			id, user_id, name, description, latitude, longitude, image_urls,
			votes_sum, votes_count
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + spotColumns

	row := r.db.QueryRowContext(ctx, query,
		spot.ID, spot.UserID, spot.Name, spot.Description,
		spot.Latitude, spot.Longitude, pq.Array(spot.ImageURLs),
		spot.VotesSum, spot.VotesCount,
	)

	saved, err := scanSpot(row)
	if err != nil {
		r.logger.Error("Failed to create spot", zap.String("user_id", spot.UserID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return saved, nil
}

func (r *spotRepository) Update(ctx context.Context, userID string, spot *domain.Spot) (*domain.Spot, error) {
	query := `
		UPDATE spots SET
			name        = $3,
			description = $4,
			latitude    = $5,
			longitude   = $6,
			image_urls  = $7,
			updated_at  = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + spotColumns

	row := r.db.QueryRowContext(ctx, query,
		spot.ID, userID, spot.Name, spot.Description,
		spot.Latitude, spot.Longitude, pq.Array(spot.ImageURLs),
	)

	saved, err := scanSpot(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrListingNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update spot", zap.String("id", spot.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return saved, nil
}

func (r *spotRepository) GetByID(ctx context.Context, id string) (*domain.Spot, error) {
	query := `SELECT ` + spotColumns + ` FROM spots WHERE id = $1`

	spot, err := scanSpot(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrListingNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get spot", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return spot, nil
}

func (r *spotRepository) ListAll(ctx context.Context) ([]*domain.Spot, error) {
	query := `SELECT ` + spotColumns + ` FROM spots ORDER BY created_at DESC`
	return r.queryMany(ctx, query)
}

func (r *spotRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Spot, error) {
	query := `SELECT ` + spotColumns + ` FROM spots WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryMany(ctx, query, userID)
}

func (r *spotRepository) SearchByDescription(ctx context.Context, query string) ([]*domain.Spot, error) {
	q := `
		SELECT ` + spotColumns + `
		FROM spots
		WHERE description ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
	`
	return r.queryMany(ctx, q, query)
}

func (r *spotRepository) AddVote(ctx context.Context, id string, rating int) (*domain.RatingPair, error) {
	query := `
		UPDATE spots
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

func (r *spotRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM spots`); err != nil {
		r.logger.Error("Failed to count spots", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}

func (r *spotRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]*domain.Spot, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query spots", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var spots []*domain.Spot
	for rows.Next() {
		spot, err := scanSpot(rows)
		if err != nil {
			r.logger.Error("Failed to scan spot", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		spots = append(spots, spot)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Spot rows iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return spots, nil
}
