package repository

import (
	"context"
	"time"
)

// SessionRepository stores opaque-token state: refresh sessions and one-time
// confirmation codes. Only SHA-256 hashes of tokens ever reach the store.
type SessionRepository interface {
	// SaveRefresh binds a refresh-token hash to a user id with a TTL.
	SaveRefresh(ctx context.Context, tokenHash, userID string, ttl time.Duration) error

	// ResolveRefresh returns the user id for a refresh-token hash, empty when
	// unknown or expired.
	ResolveRefresh(ctx context.Context, tokenHash string) (string, error)

	// DeleteRefresh invalidates a refresh session.
	DeleteRefresh(ctx context.Context, tokenHash string) error

	// SaveConfirmCode binds a confirmation-code hash to a user id with a TTL.
	SaveConfirmCode(ctx context.Context, codeHash, userID string, ttl time.Duration) error

	// ConsumeConfirmCode resolves and deletes a confirmation code in one
	// step, so a code can only ever be used once. Empty when unknown.
	ConsumeConfirmCode(ctx context.Context, codeHash string) (string, error)
}
