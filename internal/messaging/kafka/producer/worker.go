package producer

import (
	"context"
	"time"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const drainBatchSize = 50

// ProcessOutboxEvents drains committed domain events to Kafka until the
// context ends. A publish failure leaves the row in the table with a bumped
// attempt count, so a broker outage delays events instead of losing them.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("outbox.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox drain started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox drain stopped")
			return
		case <-ticker.C:
			if err := drainOnce(ctx, repo, writer, log); err != nil {
				log.Error("outbox drain pass failed", zap.Error(err))
			}
		}
	}
}

func drainOnce(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	log *zap.Logger,
) error {
	events, err := repo.ListDue(ctx, drainBatchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	for _, event := range events {
		msg := kafkago.Message{
			Topic: event.Topic,
			Key:   []byte(event.AggregateID),
			Value: event.Payload,
			Headers: []kafkago.Header{
				{Key: "event_type", Value: []byte(event.EventType)},
				{Key: "request_id", Value: []byte(event.RequestID)},
			},
		}

		if err := writer.WriteMessages(ctx, msg); err != nil {
			log.Error("publish failed",
				zap.String("outbox_id", event.ID),
				zap.String("topic", event.Topic),
				zap.Int("attempts", event.Attempts+1),
				zap.Error(err),
			)
			_ = repo.MarkFailed(ctx, event.ID, err.Error())
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			log.Error("mark sent failed", zap.String("outbox_id", event.ID), zap.Error(err))
			continue
		}

		log.Debug("event published",
			zap.String("outbox_id", event.ID),
			zap.String("topic", event.Topic),
			zap.String("event_type", event.EventType),
		)
	}

	return nil
}
