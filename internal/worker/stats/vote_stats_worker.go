package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/domain"
	"github.com/horecaseek-service/internal/domain/repository"
	"github.com/horecaseek-service/internal/worker"
)

// VoteStatsWorker consumes vote events from the listing-votes stream and
// maintains the platform vote counters. Counters are eventually consistent
// with the accumulators; a lost event only ever under-counts the stats
// page, never a listing's own rating.
type VoteStatsWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	cacheRepo    repository.CacheRepository
	consumerName string
	maxRetries   int
}

// NewVoteStatsWorker - creates a new VoteStatsWorker
func NewVoteStatsWorker(
	streamRepo repository.StreamRepository,
	cacheRepo repository.CacheRepository,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *VoteStatsWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &VoteStatsWorker{
		BaseWorker:   worker.NewBaseWorker("vote-stats", consumerGroup, logger),
		streamRepo:   streamRepo,
		cacheRepo:    cacheRepo,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

// Start runs the consume loop until stopped.
func (w *VoteStatsWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting VoteStatsWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamListingVotes, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.StreamListingVotes, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to open stream consumer: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

// handleMessage applies one vote event with bounded retries. A message that
// keeps failing is acked and dropped: the counters under-count rather than
// wedge the stream.
func (w *VoteStatsWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.VoteEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Warn("Dropping malformed vote event",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		w.ack(ctx, msg.ID)
		return
	}

	var err error
	for attempt := 0; attempt <= w.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
		}
		if err = w.applyEvent(ctx, &event); err == nil {
			break
		}
	}
	if err != nil {
		logger.Error("Dropping vote event after retries",
			zap.String("message_id", msg.ID),
			zap.Int("retries", w.maxRetries),
			zap.Error(err))
	}

	w.ack(ctx, msg.ID)
}

// applyEvent increments the total counter plus the per-kind counter.
func (w *VoteStatsWorker) applyEvent(ctx context.Context, event *domain.VoteEvent) error {
	if _, err := w.cacheRepo.Increment(ctx, domain.CounterVotesTotal, 1); err != nil {
		return fmt.Errorf("increment total: %w", err)
	}

	var kindKey string
	switch event.Kind {
	case domain.ListingEstablishment:
		kindKey = domain.CounterVotesEstablishments
	case domain.ListingSpot:
		kindKey = domain.CounterVotesSpots
	default:
		w.Logger().Warn("Vote event with unknown kind", zap.String("kind", string(event.Kind)))
		return nil
	}

	if _, err := w.cacheRepo.Increment(ctx, kindKey, 1); err != nil {
		return fmt.Errorf("increment %s: %w", kindKey, err)
	}
	return nil
}

func (w *VoteStatsWorker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamListingVotes, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Warn("Failed to ack message",
			zap.String("message_id", messageID),
			zap.Error(err))
	}
}
