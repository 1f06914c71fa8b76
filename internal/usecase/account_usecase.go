package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/domain"
	"github.com/horecaseek-service/internal/domain/repository"
	"github.com/horecaseek-service/internal/pkg/errors"
	"github.com/horecaseek-service/internal/usecase/dto"
)

// AccountUseCase - assembles the role-resolved account page.
type AccountUseCase struct {
	profileRepo repository.ProfileRepository
	estRepo     repository.EstablishmentRepository
	spotRepo    repository.SpotRepository
	logger      *zap.Logger
}

// NewAccountUseCase - creates a new AccountUseCase
func NewAccountUseCase(
	profileRepo repository.ProfileRepository,
	estRepo repository.EstablishmentRepository,
	spotRepo repository.SpotRepository,
	logger *zap.Logger,
) *AccountUseCase {
	return &AccountUseCase{
		profileRepo: profileRepo,
		estRepo:     estRepo,
		spotRepo:    spotRepo,
		logger:      logger,
	}
}

// LoadAccountView resolves the caller's role once and loads only the half
// of the view that role needs. The three failure modes stay distinct: no
// session is ErrAuthRequired, a missing profile is ErrProfileNotFound, and
// a listings query failure is ErrFetchFailed, never an empty list.
func (uc *AccountUseCase) LoadAccountView(ctx context.Context, userID string) (*dto.AccountView, error) {
	if userID == "" {
		return nil, errors.ErrAuthRequired
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &dto.AccountView{
		Profile: dto.ConvertProfile(profile),
		Role:    profile.Role,
	}

	switch profile.Role {
	case domain.RoleProfessional:
		ests, err := uc.estRepo.ListByOwner(ctx, userID)
		if err != nil {
			uc.logger.Error("Failed to load owner establishments",
				zap.String("user_id", userID),
				zap.Error(err))
			return nil, errors.ErrFetchFailed
		}
		view.Professional = &dto.ProfessionalView{
			Establishments: dto.ConvertEstablishments(ests),
		}
	case domain.RoleClient:
		spots, err := uc.spotRepo.ListByOwner(ctx, userID)
		if err != nil {
			uc.logger.Error("Failed to load owner spots",
				zap.String("user_id", userID),
				zap.Error(err))
			return nil, errors.ErrFetchFailed
		}
		view.Client = &dto.ClientView{
			Spots: dto.ConvertSpots(spots),
		}
	default:
		uc.logger.Warn("Profile with unknown role",
			zap.String("user_id", userID),
			zap.String("role", string(profile.Role)))
		view.Role = domain.RoleClient
		view.Client = &dto.ClientView{Spots: []dto.SpotResponse{}}
	}

	return view, nil
}
