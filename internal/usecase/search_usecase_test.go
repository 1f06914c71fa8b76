package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/domain"
	"github.com/horecaseek-service/internal/usecase"
)

func TestSearchUseCase_Search(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("establishments come before spots", func(t *testing.T) {
		mockEst := &MockEstablishmentRepository{}
		mockSpot := &MockSpotRepository{}
		uc := usecase.NewSearchUseCase(mockEst, mockSpot, passthroughCache(), logger, time.Minute)

		mockEst.On("SearchByNameOrCategory", ctx, "tapas").Return([]*domain.Establishment{
			{ID: "e1", Name: "Tapas Bar", Category: domain.CategoryBar},
		}, nil)
		mockSpot.On("SearchByDescription", ctx, "tapas").Return([]*domain.Spot{
			{ID: "s1", Name: "Hidden place", Description: "great tapas here"},
		}, nil)

		resp, err := uc.Search(ctx, "tapas", 1)

		assert.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		assert.Len(t, resp.Results, 2)
		assert.Equal(t, "establishment", resp.Results[0].Kind)
		assert.Equal(t, "e1", resp.Results[0].ID)
		assert.Equal(t, "spot", resp.Results[1].Kind)
		assert.Equal(t, "s1", resp.Results[1].ID)

		mockEst.AssertExpectations(t)
		mockSpot.AssertExpectations(t)
	})

	t.Run("empty query returns empty without querying stores", func(t *testing.T) {
		mockEst := &MockEstablishmentRepository{}
		mockSpot := &MockSpotRepository{}
		uc := usecase.NewSearchUseCase(mockEst, mockSpot, passthroughCache(), logger, time.Minute)

		resp, err := uc.Search(ctx, "   ", 1)

		assert.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		assert.Empty(t, resp.Results)
		mockEst.AssertNotCalled(t, "SearchByNameOrCategory", mock.Anything, mock.Anything)
		mockSpot.AssertNotCalled(t, "SearchByDescription", mock.Anything, mock.Anything)
	})

	t.Run("page size capped at ten", func(t *testing.T) {
		mockEst := &MockEstablishmentRepository{}
		mockSpot := &MockSpotRepository{}
		uc := usecase.NewSearchUseCase(mockEst, mockSpot, passthroughCache(), logger, time.Minute)

		ests := make([]*domain.Establishment, 12)
		for i := range ests {
			ests[i] = &domain.Establishment{ID: fmt.Sprintf("e%d", i), Name: "Bar", Category: domain.CategoryBar}
		}
		mockEst.On("SearchByNameOrCategory", ctx, "bar").Return(ests, nil)
		mockSpot.On("SearchByDescription", ctx, "bar").Return([]*domain.Spot{}, nil)

		page1, err := uc.Search(ctx, "bar", 1)
		assert.NoError(t, err)
		assert.Len(t, page1.Results, 10)
		assert.Equal(t, 12, page1.Total)
	})

	t.Run("page beyond last is empty with full total", func(t *testing.T) {
		mockEst := &MockEstablishmentRepository{}
		mockSpot := &MockSpotRepository{}
		uc := usecase.NewSearchUseCase(mockEst, mockSpot, passthroughCache(), logger, time.Minute)

		mockEst.On("SearchByNameOrCategory", ctx, "bar").Return([]*domain.Establishment{
			{ID: "e1", Name: "Bar", Category: domain.CategoryBar},
		}, nil)
		mockSpot.On("SearchByDescription", ctx, "bar").Return([]*domain.Spot{}, nil)

		resp, err := uc.Search(ctx, "bar", 5)

		assert.NoError(t, err)
		assert.Empty(t, resp.Results)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, 5, resp.Page)
	})

	t.Run("huge page number is empty, never a panic", func(t *testing.T) {
		mockEst := &MockEstablishmentRepository{}
		mockSpot := &MockSpotRepository{}
		uc := usecase.NewSearchUseCase(mockEst, mockSpot, passthroughCache(), logger, time.Minute)

		mockEst.On("SearchByNameOrCategory", ctx, "bar").Return([]*domain.Establishment{
			{ID: "e1", Name: "Bar", Category: domain.CategoryBar},
		}, nil)
		mockSpot.On("SearchByDescription", ctx, "bar").Return([]*domain.Spot{}, nil)

		// The start offset wraps negative at this page number if unguarded.
		resp, err := uc.Search(ctx, "bar", math.MaxInt)

		assert.NoError(t, err)
		assert.Empty(t, resp.Results)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("store failure degrades to empty page", func(t *testing.T) {
		mockEst := &MockEstablishmentRepository{}
		mockSpot := &MockSpotRepository{}
		uc := usecase.NewSearchUseCase(mockEst, mockSpot, passthroughCache(), logger, time.Minute)

		mockEst.On("SearchByNameOrCategory", ctx, "bar").
			Return(nil, errors.New("connection refused"))

		resp, err := uc.Search(ctx, "bar", 1)

		assert.NoError(t, err)
		assert.Empty(t, resp.Results)
		assert.Equal(t, 0, resp.Total)
	})

	t.Run("spot failure also degrades, no partial establishments page", func(t *testing.T) {
		mockEst := &MockEstablishmentRepository{}
		mockSpot := &MockSpotRepository{}
		uc := usecase.NewSearchUseCase(mockEst, mockSpot, passthroughCache(), logger, time.Minute)

		mockEst.On("SearchByNameOrCategory", ctx, "bar").Return([]*domain.Establishment{
			{ID: "e1", Name: "Bar", Category: domain.CategoryBar},
		}, nil)
		mockSpot.On("SearchByDescription", ctx, "bar").
			Return(nil, errors.New("connection refused"))

		resp, err := uc.Search(ctx, "bar", 1)

		assert.NoError(t, err)
		assert.Empty(t, resp.Results)
		assert.Equal(t, 0, resp.Total)
	})

	t.Run("cache hit skips the stores", func(t *testing.T) {
		mockEst := &MockEstablishmentRepository{}
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSearchUseCase(mockEst, mockSpot, mockCache, logger, time.Minute)

		cached := []byte(`[{"id":"e1","kind":"establishment","name":"Bar","category":"bar"}]`)
		mockCache.On("Get", ctx, "search:bar").Return(cached, nil)

		resp, err := uc.Search(ctx, "Bar", 1)

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, "e1", resp.Results[0].ID)
		mockEst.AssertNotCalled(t, "SearchByNameOrCategory", mock.Anything, mock.Anything)
		mockSpot.AssertNotCalled(t, "SearchByDescription", mock.Anything, mock.Anything)
	})
}
