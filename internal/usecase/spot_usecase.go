package usecase

import (
	"context"
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/domain"
	"github.com/horecaseek-service/internal/domain/repository"
	"github.com/horecaseek-service/internal/pkg/errors"
	"github.com/horecaseek-service/internal/pkg/utils"
	"github.com/horecaseek-service/internal/pkg/validator"
	"github.com/horecaseek-service/internal/usecase/dto"
)

const spotsListCacheKey = "spots:all"

// SpotUseCase - user-shared spots: create with an initial vote, edit, the
// public spots feed.
type SpotUseCase struct {
	spotRepo    repository.SpotRepository
	storageRepo repository.StorageRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewSpotUseCase - creates a new SpotUseCase
func NewSpotUseCase(
	spotRepo repository.SpotRepository,
	storageRepo repository.StorageRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *SpotUseCase {
	return &SpotUseCase{
		spotRepo:    spotRepo,
		storageRepo: storageRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// Create validates the submission fully before any upload: a missing
// coordinate fails here, with zero storage calls made. The submitter's own
// vote seeds the accumulator (sum = vote, count = 1).
func (uc *SpotUseCase) Create(ctx context.Context, userID string, req *dto.CreateSpotRequest) (*dto.SpotResponse, error) {
	if userID == "" {
		return nil, errors.ErrAuthRequired
	}
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"error": err.Error(),
		})
	}
	if !utils.ValidateCoordinates(*req.Latitude, *req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}

	images, err := uc.uploadImages(ctx, req.Images)
	if err != nil {
		return nil, err
	}

	spot := &domain.Spot{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		ImageURLs:   images,
		VotesSum:    int64(req.InitialVote),
		VotesCount:  1,
	}

	created, err := uc.spotRepo.Create(ctx, spot)
	if err != nil {
		uc.logger.Error("Failed to create spot", zap.Error(err))
		return nil, err
	}

	uc.invalidate(ctx, spotsListCacheKey)

	resp := dto.ConvertSpot(created)
	return &resp, nil
}

// Update rewrites the spot's fields for its owner, appending any new images
// to the existing set.
func (uc *SpotUseCase) Update(ctx context.Context, userID string, req *dto.UpdateSpotRequest) (*dto.SpotResponse, error) {
	if userID == "" {
		return nil, errors.ErrAuthRequired
	}
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"error": err.Error(),
		})
	}
	if !utils.ValidateCoordinates(*req.Latitude, *req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}

	existing, err := uc.spotRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, errors.ErrForbidden
	}

	added, err := uc.uploadImages(ctx, req.NewImages)
	if err != nil {
		return nil, err
	}

	spot := &domain.Spot{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		ImageURLs:   append(existing.ImageURLs, added...),
	}

	updated, err := uc.spotRepo.Update(ctx, userID, spot)
	if err != nil {
		uc.logger.Error("Failed to update spot",
			zap.String("id", req.ID),
			zap.Error(err))
		return nil, err
	}

	uc.invalidate(ctx, spotsListCacheKey)
	uc.invalidate(ctx, listingCacheKey(domain.ListingSpot, updated.ID))

	resp := dto.ConvertSpot(updated)
	return &resp, nil
}

// GetByID returns one spot, cached per listing.
func (uc *SpotUseCase) GetByID(ctx context.Context, id string) (*dto.SpotResponse, error) {
	key := listingCacheKey(domain.ListingSpot, id)
	if data, err := uc.cacheRepo.Get(ctx, key); err == nil && data != nil {
		var resp dto.SpotResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			return &resp, nil
		}
	}

	spot, err := uc.spotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertSpot(spot)
	uc.cacheJSON(ctx, key, resp)
	return &resp, nil
}

// ListAll backs the public /spots page, newest first, cached as a whole.
func (uc *SpotUseCase) ListAll(ctx context.Context) ([]dto.SpotResponse, error) {
	if data, err := uc.cacheRepo.Get(ctx, spotsListCacheKey); err == nil && data != nil {
		var resp []dto.SpotResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			return resp, nil
		}
	}

	spots, err := uc.spotRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to list spots", zap.Error(err))
		return nil, errors.ErrFetchFailed
	}

	resp := dto.ConvertSpots(spots)
	uc.cacheJSON(ctx, spotsListCacheKey, resp)
	return resp, nil
}

// ListMine returns the caller's own spots, newest first. Not cached:
// owners expect their edits to show up immediately.
func (uc *SpotUseCase) ListMine(ctx context.Context, userID string) ([]dto.SpotResponse, error) {
	if userID == "" {
		return nil, errors.ErrAuthRequired
	}

	spots, err := uc.spotRepo.ListByOwner(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to list owned spots",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, errors.ErrFetchFailed
	}

	return dto.ConvertSpots(spots), nil
}

func (uc *SpotUseCase) uploadImages(ctx context.Context, files []dto.FileUpload) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	urls := make([]string, 0, len(files))
	for _, f := range files {
		key := uuid.New().String() + filepath.Ext(f.Filename)
		path, err := uc.storageRepo.Upload(ctx, repository.BucketSpots, key, f.Data, f.ContentType)
		if err != nil {
			uc.logger.Error("Spot image upload failed",
				zap.String("filename", f.Filename),
				zap.Error(err))
			return nil, errors.ErrUploadFailed
		}
		urls = append(urls, uc.storageRepo.PublicURL(repository.BucketSpots, path))
	}
	return urls, nil
}

func (uc *SpotUseCase) cacheJSON(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (uc *SpotUseCase) invalidate(ctx context.Context, key string) {
	if err := uc.cacheRepo.Delete(ctx, key); err != nil {
		uc.logger.Warn("Cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}
