package repository

import (
	"context"

	"github.com/horecaseek-service/internal/domain"
)

// StreamRepository publishes and consumes redis-stream events.
type StreamRepository interface {
	// PublishVote appends a vote event to the votes stream.
	PublishVote(ctx context.Context, event *domain.VoteEvent) error

	// CreateConsumerGroup creates the consumer group for a stream, creating
	// the stream when needed. Already-exists is not an error.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeStream reads messages for a consumer group until ctx is done.
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// AckMessage acknowledges a processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error
}
