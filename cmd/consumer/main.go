package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/app"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	if cfg.Kafka.Broker == "" {
		logger.Fatal("KAFKA_BROKER is required for the consumer")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunConsumer(ctx, cfg); err != nil {
		logger.Fatal("consumer failed", zap.Error(err))
	}
}
