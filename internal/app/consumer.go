package app

import (
	"context"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/activity"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/config"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/events"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/messaging/kafka/consumer"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer reads activity events off Kafka and lands them in the
// activity_log table. Blocks until ctx is canceled.
func RunConsumer(ctx context.Context, cfg *config.Config) error {
	db, err := connection.ConnectGORMWithRetry(
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
		5,
	)
	if err != nil {
		return err
	}

	reader := consumer.NewReader(cfg.Kafka.Broker, cfg.Kafka.ConsumerGroup, events.ActivityTopic)
	defer reader.Close()

	consumer.ConsumeActivity(ctx, reader, activity.NewRepository(db), zap.L())
	return nil
}
