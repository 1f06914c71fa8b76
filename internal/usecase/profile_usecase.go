package usecase

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/domain"
	"github.com/horecaseek-service/internal/domain/repository"
	"github.com/horecaseek-service/internal/pkg/errors"
	"github.com/horecaseek-service/internal/pkg/validator"
	"github.com/horecaseek-service/internal/usecase/dto"
)

// ProfileUseCase - the one-profile-per-identity record.
type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	storageRepo repository.StorageRepository
	logger      *zap.Logger
}

// NewProfileUseCase - creates a new ProfileUseCase
func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	storageRepo repository.StorageRepository,
	logger *zap.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		storageRepo: storageRepo,
		logger:      logger,
	}
}

// Upsert creates or replaces the caller's profile. Validation runs before
// the avatar upload, and the upload before the row write; an upload failure
// leaves the stored profile untouched.
func (uc *ProfileUseCase) Upsert(ctx context.Context, userID string, req *dto.UpsertProfileRequest) (*dto.ProfileResponse, error) {
	if userID == "" {
		return nil, errors.ErrAuthRequired
	}
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"error": err.Error(),
		})
	}

	var avatarURL string
	if req.Avatar != nil {
		// Keyed by owner so a re-upload replaces the previous avatar.
		key := userID + filepath.Ext(req.Avatar.Filename)
		path, err := uc.storageRepo.Upload(ctx, repository.BucketAvatars, key, req.Avatar.Data, req.Avatar.ContentType)
		if err != nil {
			uc.logger.Error("Avatar upload failed", zap.Error(err))
			return nil, errors.ErrUploadFailed
		}
		avatarURL = uc.storageRepo.PublicURL(repository.BucketAvatars, path)
	}

	profile := &domain.Profile{
		UserID:    userID,
		FullName:  req.FullName,
		Phone:     req.Phone,
		AvatarURL: avatarURL,
		Role:      domain.Role(req.Role),
	}

	saved, err := uc.profileRepo.Upsert(ctx, profile)
	if err != nil {
		uc.logger.Error("Failed to upsert profile",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, err
	}

	resp := dto.ConvertProfile(saved)
	return &resp, nil
}

// GetOwn returns the caller's profile. A missing profile surfaces as
// ErrProfileNotFound, never as an empty profile.
func (uc *ProfileUseCase) GetOwn(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	if userID == "" {
		return nil, errors.ErrAuthRequired
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertProfile(profile)
	return &resp, nil
}
