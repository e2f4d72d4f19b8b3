package main

import (
	"context"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/lixi-remit/lixi-landing/config"
	"github.com/lixi-remit/lixi-landing/domain"
	"github.com/lixi-remit/lixi-landing/internal/log"
)

const (
	shutdownTimeout = 30 * time.Second
	drainTimeout    = 15 * time.Second
)

func main() {
	logger := log.NewLoggerWithJSONOutput()

	autoMigrate := slices.ContainsFunc(os.Args[1:], func(arg string) bool {
		arg = strings.ToLower(arg)
		return arg == "--auto-migrate" || arg == "-m"
	})

	appConfig, err := config.LoadApplicationConfiguration(logger, autoMigrate)
	if err != nil {
		logger.Error("Failed to load application configuration", "error", err.Error())
		os.Exit(1)
	}

	core := domain.SetupCoreDomain(appConfig)
	logger.Info("LiXi landing server initialized", "store", core.StoreName)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := appConfig.RouterService.RunHTTPServer(); err != nil {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		logger.Error("Server error", "error", err)
		drain(logger, core)
		appConfig.Cleanup()
		os.Exit(1)
	case <-quit:
		logger.Info("Shutdown signal received, shutting down gracefully...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := appConfig.RouterService.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", "error", err)
		} else {
			logger.Info("HTTP server shut down gracefully")
		}

		drain(logger, core)
		appConfig.Cleanup()

		logger.Info("Graceful shutdown completed")
	}
}

// drain lets background sign-up notifications finish before their clients close.
func drain(logger *log.Logger, core *domain.Core) {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	if err := core.Shutdown(ctx); err != nil {
		logger.Warn("Sign-up notifications did not finish before shutdown", "error", err)
		return
	}
	logger.Info("Sign-up notifications drained")
}
