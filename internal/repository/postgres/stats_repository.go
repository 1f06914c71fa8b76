package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/domain"
	"github.com/horecaseek-service/internal/domain/repository"
	"github.com/horecaseek-service/internal/pkg/errors"
)

type statsRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStatsRepository(db *DB) repository.StatsRepository {
	return &statsRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *statsRepository) GetCounts(ctx context.Context) (*domain.PlatformCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM profiles)       AS profiles,
			(SELECT COUNT(*) FROM establishments) AS establishments,
			(SELECT COUNT(*) FROM spots)          AS spots
	`

	var counts domain.PlatformCounts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		r.logger.Error("Failed to get platform counts", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &counts, nil
}
