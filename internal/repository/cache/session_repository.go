package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/domain/repository"
)

const (
	refreshKeyPrefix = "session:refresh:"
	confirmKeyPrefix = "auth:confirm:"
)

type sessionRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewSessionRepository(redisConn *Redis) repository.SessionRepository {
	return &sessionRepository{
		client: redisConn.Client(),
		logger: redisConn.logger,
	}
}

func (r *sessionRepository) SaveRefresh(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {
	err := r.client.Set(ctx, refreshKeyPrefix+tokenHash, userID, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to save refresh session", zap.Error(err))
		return fmt.Errorf("session save error: %w", err)
	}
	return nil
}

func (r *sessionRepository) ResolveRefresh(ctx context.Context, tokenHash string) (string, error) {
	userID, err := r.client.Get(ctx, refreshKeyPrefix+tokenHash).Result()
	if err == redis.Nil {
		return "", nil // unknown or expired
	}
	if err != nil {
		r.logger.Error("Failed to resolve refresh session", zap.Error(err))
		return "", fmt.Errorf("session resolve error: %w", err)
	}
	return userID, nil
}

func (r *sessionRepository) DeleteRefresh(ctx context.Context, tokenHash string) error {
	if err := r.client.Del(ctx, refreshKeyPrefix+tokenHash).Err(); err != nil {
		r.logger.Error("Failed to delete refresh session", zap.Error(err))
		return fmt.Errorf("session delete error: %w", err)
	}
	return nil
}

func (r *sessionRepository) SaveConfirmCode(ctx context.Context, codeHash, userID string, ttl time.Duration) error {
	err := r.client.Set(ctx, confirmKeyPrefix+codeHash, userID, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to save confirm code", zap.Error(err))
		return fmt.Errorf("confirm code save error: %w", err)
	}
	return nil
}

// ConsumeConfirmCode uses GETDEL so the resolve and the invalidation are one
// atomic step: a code can never be redeemed twice.
func (r *sessionRepository) ConsumeConfirmCode(ctx context.Context, codeHash string) (string, error) {
	userID, err := r.client.GetDel(ctx, confirmKeyPrefix+codeHash).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		r.logger.Error("Failed to consume confirm code", zap.Error(err))
		return "", fmt.Errorf("confirm code consume error: %w", err)
	}
	return userID, nil
}
