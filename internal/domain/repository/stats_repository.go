package repository

import (
	"context"

	"github.com/horecaseek-service/internal/domain"
)

// StatsRepository aggregates platform-wide counts from the primary store.
type StatsRepository interface {
	// GetCounts returns totals for profiles, establishments and spots.
	GetCounts(ctx context.Context) (*domain.PlatformCounts, error)
}
