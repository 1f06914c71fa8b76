package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/domain"
	"github.com/horecaseek-service/internal/domain/repository"
	"github.com/horecaseek-service/internal/pkg/errors"
	"github.com/horecaseek-service/internal/usecase/dto"
)

const statsCacheKey = "stats:current"

// StatsUseCase - platform statistics: row totals from Postgres plus the
// vote counters fed by the stream worker.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewStatsUseCase - creates a new StatsUseCase
func NewStatsUseCase(
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// GetStatistics returns the merged stats payload, cached briefly. Vote
// counters are eventually consistent: they lag the accumulators by however
// far behind the worker is.
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*dto.StatsResponse, error) {
	if data, err := uc.cacheRepo.Get(ctx, statsCacheKey); err == nil && data != nil {
		var resp dto.StatsResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			return &resp, nil
		}
	}

	counts, err := uc.statsRepo.GetCounts(ctx)
	if err != nil {
		uc.logger.Error("Failed to load platform counts", zap.Error(err))
		return nil, errors.ErrFetchFailed
	}

	stats := &domain.Statistics{
		Counts: *counts,
		Votes: domain.VoteCounters{
			Total:          uc.counter(ctx, domain.CounterVotesTotal),
			Establishments: uc.counter(ctx, domain.CounterVotesEstablishments),
			Spots:          uc.counter(ctx, domain.CounterVotesSpots),
		},
	}

	resp := dto.ConvertStatistics(stats)

	if data, err := json.Marshal(resp); err == nil {
		if err := uc.cacheRepo.Set(ctx, statsCacheKey, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Stats cache write failed", zap.Error(err))
		}
	}

	return resp, nil
}

// counter reads one worker-maintained counter; missing or unreadable keys
// count as zero.
func (uc *StatsUseCase) counter(ctx context.Context, key string) int64 {
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Failed to read vote counter", zap.String("key", key), zap.Error(err))
		return 0
	}
	if data == nil {
		return 0
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		uc.logger.Warn("Corrupt vote counter", zap.String("key", key), zap.Error(err))
		return 0
	}
	return n
}
