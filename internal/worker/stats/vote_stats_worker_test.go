package stats_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/domain"
	"github.com/horecaseek-service/internal/worker/stats"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishVote(ctx context.Context, event *domain.VoteEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) Increment(ctx context.Context, key string, delta int64) (int64, error) {
	args := m.Called(ctx, key, delta)
	return args.Get(0).(int64), args.Error(1)
}

func voteMessage(t *testing.T, id string, event domain.VoteEvent) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(event)
	assert.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: data}
}

func TestVoteStatsWorker(t *testing.T) {
	logger := zap.NewNop()

	t.Run("vote event increments total and per-kind counters", func(t *testing.T) {
		mockStream := &MockStreamRepository{}
		mockCache := &MockCacheRepository{}
		w := stats.NewVoteStatsWorker(mockStream, mockCache, "stats-group", 3, logger)

		messages := make(chan domain.StreamMessage, 1)
		messages <- voteMessage(t, "1-0", domain.VoteEvent{
			Kind: domain.ListingEstablishment, ListingID: "e1", Rating: 5,
		})

		mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamListingVotes, "stats-group").Return(nil)
		mockStream.On("ConsumeStream", mock.Anything, domain.StreamListingVotes, "stats-group", mock.Anything).
			Return((<-chan domain.StreamMessage)(messages), nil)
		mockCache.On("Increment", mock.Anything, domain.CounterVotesTotal, int64(1)).Return(int64(1), nil)
		mockCache.On("Increment", mock.Anything, domain.CounterVotesEstablishments, int64(1)).Return(int64(1), nil)
		mockStream.On("AckMessage", mock.Anything, domain.StreamListingVotes, "stats-group", "1-0").
			Run(func(mock.Arguments) { _ = w.Stop() }).
			Return(nil)

		err := w.Start(context.Background())

		assert.NoError(t, err)
		mockCache.AssertExpectations(t)
		mockStream.AssertExpectations(t)
	})

	t.Run("malformed event is acked and dropped", func(t *testing.T) {
		mockStream := &MockStreamRepository{}
		mockCache := &MockCacheRepository{}
		w := stats.NewVoteStatsWorker(mockStream, mockCache, "stats-group", 3, logger)

		messages := make(chan domain.StreamMessage, 1)
		messages <- domain.StreamMessage{ID: "2-0", Data: []byte("not json")}

		mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamListingVotes, "stats-group").Return(nil)
		mockStream.On("ConsumeStream", mock.Anything, domain.StreamListingVotes, "stats-group", mock.Anything).
			Return((<-chan domain.StreamMessage)(messages), nil)
		mockStream.On("AckMessage", mock.Anything, domain.StreamListingVotes, "stats-group", "2-0").
			Run(func(mock.Arguments) { _ = w.Stop() }).
			Return(nil)

		err := w.Start(context.Background())

		assert.NoError(t, err)
		mockCache.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("context cancellation stops the loop", func(t *testing.T) {
		mockStream := &MockStreamRepository{}
		mockCache := &MockCacheRepository{}
		w := stats.NewVoteStatsWorker(mockStream, mockCache, "stats-group", 3, logger)

		messages := make(chan domain.StreamMessage)
		mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamListingVotes, "stats-group").Return(nil)
		mockStream.On("ConsumeStream", mock.Anything, domain.StreamListingVotes, "stats-group", mock.Anything).
			Return((<-chan domain.StreamMessage)(messages), nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := w.Start(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
