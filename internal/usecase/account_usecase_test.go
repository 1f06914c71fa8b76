package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/domain"
	apperrors "github.com/horecaseek-service/internal/pkg/errors"
	"github.com/horecaseek-service/internal/usecase"
)

func TestAccountUseCase_LoadAccountView(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("professional gets establishments newest first with means", func(t *testing.T) {
		mockProfile := &MockProfileRepository{}
		mockEst := &MockEstablishmentRepository{}
		mockSpot := &MockSpotRepository{}
		uc := usecase.NewAccountUseCase(mockProfile, mockEst, mockSpot, logger)

		mockProfile.On("GetByUserID", ctx, "u1").Return(&domain.Profile{
			ID:       "p1",
			UserID:   "u1",
			FullName: "Marie Dupont",
			Role:     domain.RoleProfessional,
		}, nil)

		newer := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		older := newer.Add(-48 * time.Hour)
		mockEst.On("ListByOwner", ctx, "u1").Return([]*domain.Establishment{
			{ID: "e2", Name: "Le Comptoir", VotesSum: 9, VotesCount: 2, CreatedAt: newer},
			{ID: "e1", Name: "Chez Marie", VotesSum: 0, VotesCount: 0, CreatedAt: older},
		}, nil)

		view, err := uc.LoadAccountView(ctx, "u1")

		assert.NoError(t, err)
		assert.Equal(t, domain.RoleProfessional, view.Role)
		assert.NotNil(t, view.Professional)
		assert.Nil(t, view.Client)
		assert.Len(t, view.Professional.Establishments, 2)
		assert.Equal(t, "e2", view.Professional.Establishments[0].ID)
		assert.Equal(t, "4.5", view.Professional.Establishments[0].MeanRating)
		assert.Equal(t, "N/A", view.Professional.Establishments[1].MeanRating)
		mockSpot.AssertNotCalled(t, "ListByOwner", ctx, "u1")
	})

	t.Run("client gets spots, never establishments", func(t *testing.T) {
		mockProfile := &MockProfileRepository{}
		mockEst := &MockEstablishmentRepository{}
		mockSpot := &MockSpotRepository{}
		uc := usecase.NewAccountUseCase(mockProfile, mockEst, mockSpot, logger)

		mockProfile.On("GetByUserID", ctx, "u2").Return(&domain.Profile{
			ID: "p2", UserID: "u2", Role: domain.RoleClient,
		}, nil)
		mockSpot.On("ListByOwner", ctx, "u2").Return([]*domain.Spot{
			{ID: "s1", Description: "quiet terrace", VotesSum: 4, VotesCount: 1},
		}, nil)

		view, err := uc.LoadAccountView(ctx, "u2")

		assert.NoError(t, err)
		assert.Equal(t, domain.RoleClient, view.Role)
		assert.Nil(t, view.Professional)
		assert.NotNil(t, view.Client)
		assert.Len(t, view.Client.Spots, 1)
		mockEst.AssertNotCalled(t, "ListByOwner", ctx, "u2")
	})

	t.Run("no session is auth required", func(t *testing.T) {
		mockProfile := &MockProfileRepository{}
		uc := usecase.NewAccountUseCase(mockProfile, &MockEstablishmentRepository{}, &MockSpotRepository{}, logger)

		view, err := uc.LoadAccountView(ctx, "")

		assert.Nil(t, view)
		assert.ErrorIs(t, err, apperrors.ErrAuthRequired)
		mockProfile.AssertNotCalled(t, "GetByUserID", ctx, "")
	})

	t.Run("missing profile stays distinct from fetch failure", func(t *testing.T) {
		mockProfile := &MockProfileRepository{}
		uc := usecase.NewAccountUseCase(mockProfile, &MockEstablishmentRepository{}, &MockSpotRepository{}, logger)

		mockProfile.On("GetByUserID", ctx, "u3").Return(nil, apperrors.ErrProfileNotFound)

		view, err := uc.LoadAccountView(ctx, "u3")

		assert.Nil(t, view)
		assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
	})

	t.Run("listings failure is an error, never an empty dashboard", func(t *testing.T) {
		mockProfile := &MockProfileRepository{}
		mockEst := &MockEstablishmentRepository{}
		uc := usecase.NewAccountUseCase(mockProfile, mockEst, &MockSpotRepository{}, logger)

		mockProfile.On("GetByUserID", ctx, "u4").Return(&domain.Profile{
			ID: "p4", UserID: "u4", Role: domain.RoleProfessional,
		}, nil)
		mockEst.On("ListByOwner", ctx, "u4").Return(nil, errors.New("timeout"))

		view, err := uc.LoadAccountView(ctx, "u4")

		assert.Nil(t, view)
		assert.ErrorIs(t, err, apperrors.ErrFetchFailed)
	})
}
