package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"dalal-payroll"`
		Port string `envconfig:"PORT" default:"3000"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     string `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"dalal"`
		SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	}

	Redis struct {
		Addr string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	}

	Kafka struct {
		Broker        string `envconfig:"KAFKA_BROKER"`
		ConsumerGroup string `envconfig:"KAFKA_CONSUMER_GROUP" default:"dalal-activity"`
	}

	Server struct {
		ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"5s"`
		WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"10s"`
		IdleTimeout  time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
	}

	Worker struct {
		OutboxPollInterval    time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"3s"`
		ReconcilePollInterval time.Duration `envconfig:"RECONCILE_POLL_INTERVAL" default:"5s"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
