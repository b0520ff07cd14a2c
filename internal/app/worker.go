package app

import (
	"context"
	"time"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/advance"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/config"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/messaging/kafka"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/messaging/kafka/producer"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/payroll"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/reconcile"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker drives the two background loops: publishing outbox events to
// Kafka and retrying queued reconciliations. Blocks until ctx is canceled.
func RunWorker(ctx context.Context, cfg *config.Config) error {
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

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	payrollRepo := payroll.NewRepository(db)
	advanceRepo := advance.NewRepository(db)
	taskRepo := reconcile.NewTaskRepository(db)
	reconcileService := reconcile.NewService(sqlDB, payrollRepo, advanceRepo, taskRepo, outboxRepo)

	if cfg.Kafka.Broker != "" {
		writer, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, 5)
		if err != nil {
			return err
		}
		defer writer.Close()

		go producer.ProcessOutboxEvents(ctx, outboxRepo, writer, zap.L(), cfg.Worker.OutboxPollInterval)
	} else {
		zap.L().Warn("no kafka broker configured, outbox publishing disabled")
	}

	runReconcileLoop(ctx, reconcileService, cfg.Worker.ReconcilePollInterval)
	return nil
}

func runReconcileLoop(ctx context.Context, svc reconcile.Service, pollInterval time.Duration) {
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}

	log := zap.L().Named("reconcile.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("reconcile retry worker started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("reconcile retry worker stopped")
			return
		case <-ticker.C:
			n, err := svc.RetryPending(ctx, 50)
			if err != nil {
				log.Error("retry pending reconciliations failed", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Info("reconcile retries succeeded", zap.Int("count", n))
			}
		}
	}
}
