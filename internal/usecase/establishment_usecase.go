package usecase

import (
	"context"
	"encoding/json"
	"fmt"
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

// EstablishmentUseCase - professional venue listings: create, edit, public
// category pages.
type EstablishmentUseCase struct {
	estRepo     repository.EstablishmentRepository
	storageRepo repository.StorageRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewEstablishmentUseCase - creates a new EstablishmentUseCase
func NewEstablishmentUseCase(
	estRepo repository.EstablishmentRepository,
	storageRepo repository.StorageRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *EstablishmentUseCase {
	return &EstablishmentUseCase{
		estRepo:     estRepo,
		storageRepo: storageRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// Create validates the full submission before any upload starts: a bad
// field never leaves orphaned files in storage. Uploads run next, and only
// when every file landed does the row get written. Any upload failure
// aborts the whole create.
func (uc *EstablishmentUseCase) Create(ctx context.Context, userID string, req *dto.CreateEstablishmentRequest) (*dto.EstablishmentResponse, error) {
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

	gallery, err := uc.uploadGallery(ctx, req.Gallery)
	if err != nil {
		return nil, err
	}

	est := &domain.Establishment{
		UserID:       userID,
		Name:         req.Name,
		Category:     domain.Category(req.Category),
		Email:        req.Email,
		Phone:        req.Phone,
		Website:      req.Website,
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		PriceRange:   req.PriceRange,
		OpeningHours: req.OpeningHours,
		GalleryURLs:  gallery,
	}

	created, err := uc.estRepo.Create(ctx, est)
	if err != nil {
		uc.logger.Error("Failed to create establishment", zap.Error(err))
		return nil, err
	}

	uc.invalidateCategory(ctx, created.Category)

	resp := dto.ConvertEstablishment(created)
	return &resp, nil
}

// Update rewrites the listing's fields for its owner. New gallery files are
// appended to the existing gallery; existing files are never dropped here.
func (uc *EstablishmentUseCase) Update(ctx context.Context, userID string, req *dto.UpdateEstablishmentRequest) (*dto.EstablishmentResponse, error) {
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

	existing, err := uc.estRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, errors.ErrForbidden
	}

	added, err := uc.uploadGallery(ctx, req.NewGallery)
	if err != nil {
		return nil, err
	}

	est := &domain.Establishment{
		ID:           req.ID,
		Name:         req.Name,
		Category:     domain.Category(req.Category),
		Email:        req.Email,
		Phone:        req.Phone,
		Website:      req.Website,
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		PriceRange:   req.PriceRange,
		OpeningHours: req.OpeningHours,
		GalleryURLs:  append(existing.GalleryURLs, added...),
	}

	updated, err := uc.estRepo.Update(ctx, userID, est)
	if err != nil {
		uc.logger.Error("Failed to update establishment",
			zap.String("id", req.ID),
			zap.Error(err))
		return nil, err
	}

	uc.invalidateCategory(ctx, existing.Category)
	if updated.Category != existing.Category {
		uc.invalidateCategory(ctx, updated.Category)
	}
	uc.invalidate(ctx, listingCacheKey(domain.ListingEstablishment, updated.ID))

	resp := dto.ConvertEstablishment(updated)
	return &resp, nil
}

// GetByID returns one establishment, cached per listing.
func (uc *EstablishmentUseCase) GetByID(ctx context.Context, id string) (*dto.EstablishmentResponse, error) {
	key := listingCacheKey(domain.ListingEstablishment, id)
	if data, err := uc.cacheRepo.Get(ctx, key); err == nil && data != nil {
		var resp dto.EstablishmentResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			return &resp, nil
		}
	}

	est, err := uc.estRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertEstablishment(est)
	uc.cacheJSON(ctx, key, resp)
	return &resp, nil
}

// ListByCategory backs the public category pages (/restaurants, /bars,
// /traiteurs, /hotels), cached per category.
func (uc *EstablishmentUseCase) ListByCategory(ctx context.Context, category string) ([]dto.EstablishmentResponse, error) {
	cat := domain.Category(category)
	if !cat.Valid() {
		return nil, errors.ErrInvalidCategory.WithDetails(map[string]interface{}{
			"category": category,
		})
	}

	key := categoryCacheKey(cat)
	if data, err := uc.cacheRepo.Get(ctx, key); err == nil && data != nil {
		var resp []dto.EstablishmentResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			return resp, nil
		}
	}

	ests, err := uc.estRepo.ListByCategory(ctx, cat)
	if err != nil {
		uc.logger.Error("Failed to list establishments",
			zap.String("category", category),
			zap.Error(err))
		return nil, errors.ErrFetchFailed
	}

	resp := dto.ConvertEstablishments(ests)
	uc.cacheJSON(ctx, key, resp)
	return resp, nil
}

// ListMine returns the caller's own listings, newest first. Not cached:
// owners expect their edits to show up immediately.
func (uc *EstablishmentUseCase) ListMine(ctx context.Context, userID string) ([]dto.EstablishmentResponse, error) {
	if userID == "" {
		return nil, errors.ErrAuthRequired
	}

	ests, err := uc.estRepo.ListByOwner(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to list owned establishments",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, errors.ErrFetchFailed
	}

	return dto.ConvertEstablishments(ests), nil
}

func (uc *EstablishmentUseCase) uploadGallery(ctx context.Context, files []dto.FileUpload) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	urls := make([]string, 0, len(files))
	for _, f := range files {
		key := uuid.New().String() + filepath.Ext(f.Filename)
		path, err := uc.storageRepo.Upload(ctx, repository.BucketEstablishments, key, f.Data, f.ContentType)
		if err != nil {
			uc.logger.Error("Gallery upload failed",
				zap.String("filename", f.Filename),
				zap.Error(err))
			return nil, errors.ErrUploadFailed
		}
		urls = append(urls, uc.storageRepo.PublicURL(repository.BucketEstablishments, path))
	}
	return urls, nil
}

func (uc *EstablishmentUseCase) cacheJSON(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (uc *EstablishmentUseCase) invalidateCategory(ctx context.Context, cat domain.Category) {
	uc.invalidate(ctx, categoryCacheKey(cat))
}

func (uc *EstablishmentUseCase) invalidate(ctx context.Context, key string) {
	if err := uc.cacheRepo.Delete(ctx, key); err != nil {
		uc.logger.Warn("Cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}

func categoryCacheKey(cat domain.Category) string {
	return fmt.Sprintf("listings:category:%s", cat)
}
