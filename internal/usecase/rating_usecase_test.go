package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/domain"
	apperrors "github.com/horecaseek-service/internal/pkg/errors"
	"github.com/horecaseek-service/internal/usecase"
)

func TestRatingUseCase_RecordVote(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("vote updates accumulator and mean", func(t *testing.T) {
		mockEst := &MockEstablishmentRepository{}
		mockSpot := &MockSpotRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewRatingUseCase(mockEst, mockSpot, passthroughCache(), mockStream, logger)

		mockEst.On("AddVote", ctx, "e1", 5).
			Return(&domain.RatingPair{VotesSum: 9, VotesCount: 2}, nil)
		mockStream.On("PublishVote", ctx, mock.MatchedBy(func(ev *domain.VoteEvent) bool {
			return ev.Kind == domain.ListingEstablishment && ev.ListingID == "e1" && ev.Rating == 5
		})).Return(nil)

		result, err := uc.RecordVote(ctx, domain.ListingEstablishment, "e1", 5)

		assert.NoError(t, err)
		assert.Equal(t, int64(9), result.VotesSum)
		assert.Equal(t, int64(2), result.VotesCount)
		assert.Equal(t, "4.5", result.MeanRating)
		mockEst.AssertExpectations(t)
		mockStream.AssertExpectations(t)
	})

	t.Run("rating out of range rejected before the store", func(t *testing.T) {
		mockEst := &MockEstablishmentRepository{}
		mockSpot := &MockSpotRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewRatingUseCase(mockEst, mockSpot, passthroughCache(), mockStream, logger)

		for _, rating := range []int{0, 6, -1} {
			result, err := uc.RecordVote(ctx, domain.ListingSpot, "s1", rating)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, apperrors.ErrInvalidRating)
		}
		mockSpot.AssertNotCalled(t, "AddVote", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		mockEst := &MockEstablishmentRepository{}
		mockSpot := &MockSpotRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewRatingUseCase(mockEst, mockSpot, passthroughCache(), mockStream, logger)

		result, err := uc.RecordVote(ctx, domain.ListingKind("hotelroom"), "x", 3)

		assert.Nil(t, result)
		var appErr *apperrors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_REQUEST", appErr.Code)
	})

	t.Run("spot vote goes to the spot store", func(t *testing.T) {
		mockEst := &MockEstablishmentRepository{}
		mockSpot := &MockSpotRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewRatingUseCase(mockEst, mockSpot, passthroughCache(), mockStream, logger)

		mockSpot.On("AddVote", ctx, "s1", 3).
			Return(&domain.RatingPair{VotesSum: 3, VotesCount: 1}, nil)
		mockStream.On("PublishVote", ctx, mock.Anything).Return(nil)

		result, err := uc.RecordVote(ctx, domain.ListingSpot, "s1", 3)

		assert.NoError(t, err)
		assert.Equal(t, "3.0", result.MeanRating)
		mockEst.AssertNotCalled(t, "AddVote", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stream failure does not lose the vote", func(t *testing.T) {
		mockEst := &MockEstablishmentRepository{}
		mockSpot := &MockSpotRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewRatingUseCase(mockEst, mockSpot, passthroughCache(), mockStream, logger)

		mockEst.On("AddVote", ctx, "e1", 4).
			Return(&domain.RatingPair{VotesSum: 4, VotesCount: 1}, nil)
		mockStream.On("PublishVote", ctx, mock.Anything).
			Return(errors.New("stream unavailable"))

		result, err := uc.RecordVote(ctx, domain.ListingEstablishment, "e1", 4)

		assert.NoError(t, err)
		assert.Equal(t, "4.0", result.MeanRating)
	})

	t.Run("store error surfaces", func(t *testing.T) {
		mockEst := &MockEstablishmentRepository{}
		mockSpot := &MockSpotRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewRatingUseCase(mockEst, mockSpot, passthroughCache(), mockStream, logger)

		mockEst.On("AddVote", ctx, "missing", 4).
			Return(nil, apperrors.ErrListingNotFound)

		result, err := uc.RecordVote(ctx, domain.ListingEstablishment, "missing", 4)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, apperrors.ErrListingNotFound)
	})
}
