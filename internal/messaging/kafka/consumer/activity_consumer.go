package consumer

import (
	"context"
	"encoding/json"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/activity"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeActivity drains the activity topic into the activity_log table.
// Malformed messages are committed and dropped; store failures are retried
// by not committing the offset.
func ConsumeActivity(
	ctx context.Context,
	reader *kafkago.Reader,
	repo activity.Repository,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.activity")
	log.Info("activity consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("activity consumer stopped")
				return
			}
			log.Error("fetch activity message failed", zap.Error(err))
			continue
		}

		var event events.ActivityEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode activity event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		entry := &activity.ActivityLog{
			EntityTable: event.TableName,
			Action:    event.Action,
			RowID:     event.RowID,
			Details:   []byte(event.Details),
			CreatedAt: event.OccurredAt,
		}

		if err := repo.Create(ctx, entry); err != nil {
			log.Error("persist activity entry failed",
				zap.String("table", event.TableName),
				zap.String("row_id", event.RowID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit activity message failed", zap.Error(err))
			continue
		}
	}
}
