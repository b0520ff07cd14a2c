package app

import (
	"github.com/Mosab-97/Dalal-Payroll-App/internal/config"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/middleware"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BuildApp connects the infrastructure and mounts every module under /v1.
// Redis and Kafka are optional at runtime: without Redis the API loses
// idempotency and summary caching, without Kafka events stay queued in the
// outbox table until a broker shows up.
func BuildApp(router *gin.Engine, cfg *config.Config) error {
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

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, 3)
	if err != nil {
		zap.L().Warn("redis unavailable, idempotency and caching disabled", zap.Error(err))
		rdb = nil
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	registerModules(router, db, sqlDB, rdb)

	return nil
}
