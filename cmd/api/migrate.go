package main

import (
	"context"
	"fmt"

	dbadapter "teamboard/internal/adapter/db"
	"teamboard/internal/config"

	"go.uber.org/zap"
)

func runMigrate(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer syncLogger(logger)

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	if err := dbadapter.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := dbadapter.SeedSampleData(ctx, db); err != nil {
		return fmt.Errorf("seed sample data: %w", err)
	}

	logger.Info("database ready", zap.String("driver", cfg.DbDriver))
	return nil
}
