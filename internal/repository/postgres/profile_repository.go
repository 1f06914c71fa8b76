package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/domain"
	"github.com/horecaseek-service/internal/domain/repository"
	"github.com/horecaseek-service/internal/pkg/errors"
)

type profileRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewProfileRepository(db *DB) repository.ProfileRepository {
	return &profileRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Upsert keeps the one-profile-per-identity invariant inside the statement:
// a second insert for the same user_id turns into an update of that row.
func (r *profileRepository) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	query := `
		INSERT INTO profiles (id, user_id, full_name, phone, avatar_url, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name  = EXCLUDED.full_name,
			phone      = EXCLUDED.phone,
			avatar_url = CASE WHEN EXCLUDED.avatar_url <> '' THEN EXCLUDED.avatar_url ELSE profiles.avatar_url END,
			role       = EXCLUDED.role,
			updated_at = NOW()
		RETURNING id, user_id, full_name, phone, avatar_url, role, created_at, updated_at
	`

	var saved domain.Profile
	err := r.db.GetContext(ctx, &saved, query,
		profile.ID, profile.UserID, profile.FullName, profile.Phone, profile.AvatarURL, profile.Role,
	)
	if err != nil {
		r.logger.Error("Failed to upsert profile", zap.String("user_id", profile.UserID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &saved, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `
		SELECT id, user_id, full_name, phone, avatar_url, role, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var profile domain.Profile
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err == sql.ErrNoRows {
		return nil, errors.ErrProfileNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get profile by user id", zap.String("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &profile, nil
}
