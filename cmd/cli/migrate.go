package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/lixi-remit/lixi-landing/config"
	"github.com/lixi-remit/lixi-landing/internal/log"
	"github.com/lixi-remit/lixi-landing/pkg/migrations"
	"github.com/lixi-remit/lixi-landing/pkg/utils"
)

const migrateTimeout = 5 * time.Minute

func runMigrate(ctx context.Context, logger *log.Logger, args []string, stdout io.Writer) error {
	showStatus := len(args) > 0 && args[0] == "status"
	if len(args) > 0 && !showStatus {
		return fmt.Errorf("unknown migrate argument %q", args[0])
	}

	ctx, cancel := context.WithTimeout(ctx, migrateTimeout)
	defer cancel()

	db, err := config.OpenDatabase(ctx, logger, nil)
	if err != nil {
		return err
	}
	defer config.CloseDatabase(db, logger)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get SQL DB instance: %w", err)
	}

	cfg := migrations.Config{
		Dir:    utils.GetEnvTrimmedOrDefault("MIGRATIONS_DIR", "migrations"),
		Logger: logger,
	}

	if showStatus {
		status, err := migrations.CurrentStatus(sqlDB, cfg)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, formatStatus(status))
		return nil
	}

	if err := migrations.Up(ctx, sqlDB, cfg); err != nil {
		return err
	}

	logger.Info("Database migrations completed")
	return nil
}

func formatStatus(status migrations.Status) string {
	if !status.Applied {
		return "no migrations applied"
	}
	if status.Dirty {
		return fmt.Sprintf("version %d (dirty)", status.Version)
	}
	return fmt.Sprintf("version %d", status.Version)
}
