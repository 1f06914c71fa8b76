package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/horecaseek-service/internal/domain"
)

// MockEstablishmentRepository is a mock of EstablishmentRepository
type MockEstablishmentRepository struct {
	mock.Mock
}

func (m *MockEstablishmentRepository) Create(ctx context.Context, est *domain.Establishment) (*domain.Establishment, error) {
	args := m.Called(ctx, est)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Establishment), args.Error(1)
}

func (m *MockEstablishmentRepository) Update(ctx context.Context, userID string, est *domain.Establishment) (*domain.Establishment, error) {
	args := m.Called(ctx, userID, est)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Establishment), args.Error(1)
}

func (m *MockEstablishmentRepository) GetByID(ctx context.Context, id string) (*domain.Establishment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Establishment), args.Error(1)
}

func (m *MockEstablishmentRepository) ListByCategory(ctx context.Context, category domain.Category) ([]*domain.Establishment, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Establishment), args.Error(1)
}

func (m *MockEstablishmentRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Establishment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Establishment), args.Error(1)
}

func (m *MockEstablishmentRepository) SearchByNameOrCategory(ctx context.Context, query string) ([]*domain.Establishment, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Establishment), args.Error(1)
}

func (m *MockEstablishmentRepository) AddVote(ctx context.Context, id string, rating int) (*domain.RatingPair, error) {
	args := m.Called(ctx, id, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatingPair), args.Error(1)
}

func (m *MockEstablishmentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSpotRepository is a mock of SpotRepository
type MockSpotRepository struct {
	mock.Mock
}

func (m *MockSpotRepository) Create(ctx context.Context, spot *domain.Spot) (*domain.Spot, error) {
	args := m.Called(ctx, spot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Spot), args.Error(1)
}

func (m *MockSpotRepository) Update(ctx context.Context, userID string, spot *domain.Spot) (*domain.Spot, error) {
	args := m.Called(ctx, userID, spot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Spot), args.Error(1)
}

func (m *MockSpotRepository) GetByID(ctx context.Context, id string) (*domain.Spot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Spot), args.Error(1)
}

func (m *MockSpotRepository) ListAll(ctx context.Context) ([]*domain.Spot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Spot), args.Error(1)
}

func (m *MockSpotRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Spot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Spot), args.Error(1)
}

func (m *MockSpotRepository) SearchByDescription(ctx context.Context, query string) ([]*domain.Spot, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Spot), args.Error(1)
}

func (m *MockSpotRepository) AddVote(ctx context.Context, id string, rating int) (*domain.RatingPair, error) {
	args := m.Called(ctx, id, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatingPair), args.Error(1)
}

func (m *MockSpotRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockProfileRepository is a mock of ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}


// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ConfirmEmail(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSessionRepository is a mock of SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SaveRefresh(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenHash, userID, ttl)
	return args.Error(0)
}

func (m *MockSessionRepository) ResolveRefresh(ctx context.Context, tokenHash string) (string, error) {
	args := m.Called(ctx, tokenHash)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) DeleteRefresh(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *MockSessionRepository) SaveConfirmCode(ctx context.Context, codeHash, userID string, ttl time.Duration) error {
	args := m.Called(ctx, codeHash, userID, ttl)
	return args.Error(0)
}

func (m *MockSessionRepository) ConsumeConfirmCode(ctx context.Context, codeHash string) (string, error) {
	args := m.Called(ctx, codeHash)
	return args.String(0), args.Error(1)
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

// passthroughCache wires every method as a no-op miss, for tests that do
// not care about caching.
func passthroughCache() *MockCacheRepository {
	c := &MockCacheRepository{}
	c.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	c.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	c.On("Delete", mock.Anything, mock.Anything).Return(nil).Maybe()
	return c
}

// MockStorageRepository is a mock of StorageRepository
type MockStorageRepository struct {
	mock.Mock
}

func (m *MockStorageRepository) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, bucket, key, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorageRepository) PublicURL(bucket, path string) string {
	args := m.Called(bucket, path)
	return args.String(0)
}

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

// MockStatsRepository is a mock of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetCounts(ctx context.Context) (*domain.PlatformCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlatformCounts), args.Error(1)
}

func ptrFloat64(f float64) *float64 { return &f }
