// Package main runs the background worker: queued counter reconciliation and the scheduled sweep.
package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/robfig/cron/v3"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/churchserve/backend/config"
	"github.com/churchserve/backend/internal/signups"
	"github.com/churchserve/backend/internal/worker"
	"github.com/churchserve/backend/pkg/database"
	"github.com/churchserve/backend/pkg/queue"
	"github.com/churchserve/backend/pkg/redis"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	if _, err := maxprocs.Set(maxprocs.Logger(logger.Sugar().Debugf)); err != nil {
		logger.Warn("set GOMAXPROCS", zap.Error(err))
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), database.PoolOptions{
		MaxConns:        int32(cfg.Database.MaxConns),
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
	if err != nil {
		logger.Fatal("redis", zap.Error(err))
	}
	defer rdb.Close()

	jobQueue := queue.NewQueue(rdb.Client, logger)
	reconciler := worker.NewReconciler(signups.NewRepository(pool), jobQueue, logger)

	workerCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if n, err := reconciler.Sweep(workerCtx); err != nil {
		logger.Error("startup sweep failed", zap.Error(err))
	} else {
		logger.Info("startup sweep done", zap.Int64("repaired", n))
	}

	var sweeps *cron.Cron
	if cfg.Reconcile.SweepSchedule != "off" {
		sweeps, err = reconciler.ScheduleSweeps(workerCtx, cfg.Reconcile.SweepSchedule)
		if err != nil {
			logger.Fatal("sweep schedule", zap.Error(err))
		}
		sweeps.Start()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		reconciler.Run(workerCtx)
	}()
	logger.Info("worker started", zap.String("sweep_schedule", cfg.Reconcile.SweepSchedule))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if sweeps != nil {
		<-sweeps.Stop().Done()
	}
	cancel()
	wg.Wait()
	logger.Info("worker stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
