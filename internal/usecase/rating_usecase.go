package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/domain"
	"github.com/horecaseek-service/internal/domain/repository"
	"github.com/horecaseek-service/internal/pkg/errors"
	"github.com/horecaseek-service/internal/pkg/utils"
)

// RatingUseCase - vote recording against a listing's accumulator.
type RatingUseCase struct {
	estRepo    repository.EstablishmentRepository
	spotRepo   repository.SpotRepository
	cacheRepo  repository.CacheRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

// NewRatingUseCase - creates a new RatingUseCase
func NewRatingUseCase(
	estRepo repository.EstablishmentRepository,
	spotRepo repository.SpotRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *RatingUseCase {
	return &RatingUseCase{
		estRepo:    estRepo,
		spotRepo:   spotRepo,
		cacheRepo:  cacheRepo,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// VoteResult is the updated accumulator plus the mean it now displays.
type VoteResult struct {
	VotesSum   int64  `json:"votes_sum"`
	VotesCount int64  `json:"votes_count"`
	MeanRating string `json:"mean_rating"`
}

// RecordVote folds one vote into a listing's accumulator. The rating must be
// an integer in [1,5]; it is checked here, before the store is touched. The
// increment itself is a single atomic statement in the repository, so
// concurrent votes both land. The same caller may vote repeatedly; every
// vote counts.
func (uc *RatingUseCase) RecordVote(ctx context.Context, kind domain.ListingKind, id string, rating int) (*VoteResult, error) {
	if !kind.Valid() {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"kind": string(kind),
		})
	}
	if rating < domain.RatingMin || rating > domain.RatingMax {
		return nil, errors.ErrInvalidRating
	}
	if id == "" {
		return nil, errors.ErrInvalidRequest
	}

	var (
		pair *domain.RatingPair
		err  error
	)
	switch kind {
	case domain.ListingEstablishment:
		pair, err = uc.estRepo.AddVote(ctx, id, rating)
	case domain.ListingSpot:
		pair, err = uc.spotRepo.AddVote(ctx, id, rating)
	}
	if err != nil {
		return nil, err
	}

	// The vote is durable at this point. Cache invalidation and the stream
	// event are best-effort on top of it.
	uc.invalidateListing(ctx, kind, id)
	uc.publishVote(ctx, kind, id, rating)

	return &VoteResult{
		VotesSum:   pair.VotesSum,
		VotesCount: pair.VotesCount,
		MeanRating: utils.FormatMean(pair.VotesSum, pair.VotesCount),
	}, nil
}

func (uc *RatingUseCase) invalidateListing(ctx context.Context, kind domain.ListingKind, id string) {
	if err := uc.cacheRepo.Delete(ctx, listingCacheKey(kind, id)); err != nil {
		uc.logger.Warn("Failed to invalidate listing cache",
			zap.String("kind", string(kind)),
			zap.String("id", id),
			zap.Error(err))
	}
}

func (uc *RatingUseCase) publishVote(ctx context.Context, kind domain.ListingKind, id string, rating int) {
	event := &domain.VoteEvent{
		Kind:      kind,
		ListingID: id,
		Rating:    rating,
		VotedAt:   time.Now().UTC(),
	}
	if err := uc.streamRepo.PublishVote(ctx, event); err != nil {
		uc.logger.Warn("Failed to publish vote event",
			zap.String("kind", string(kind)),
			zap.String("id", id),
			zap.Error(err))
	}
}

func listingCacheKey(kind domain.ListingKind, id string) string {
	return fmt.Sprintf("listing:%s:%s", kind, id)
}
