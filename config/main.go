package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lixi-remit/lixi-landing/config/router"
	"github.com/lixi-remit/lixi-landing/internal/emailoctopus"
	"github.com/lixi-remit/lixi-landing/internal/events"
	"github.com/lixi-remit/lixi-landing/internal/export"
	"github.com/lixi-remit/lixi-landing/internal/log"
	"github.com/lixi-remit/lixi-landing/internal/models"
	"github.com/lixi-remit/lixi-landing/pkg/constants"
	"github.com/lixi-remit/lixi-landing/pkg/utils"
	"gorm.io/gorm"
)

const cleanupTimeout = 5 * time.Second

type ApplicationConfig struct {
	// DB is nil unless the waitlist store is postgres.
	DB              *gorm.DB
	RouterService   *router.RouterService
	Logger          *log.Logger
	Cache           Cache
	Config          *AppConfig
	TracingShutdown func(context.Context) error

	MailingList *emailoctopus.Client
	Publisher   events.Publisher
	ObjectStore *export.ObjectStore
}

type AppConfig struct {
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RequestTimeout    time.Duration

	Store         string
	NotifyTimeout time.Duration
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		RateLimitRequests: getEnvPositiveInt("RATE_LIMIT_REQUESTS", constants.DefaultRateLimitRequests),
		RateLimitWindow:   utils.GetEnvDuration("RATE_LIMIT_WINDOW", constants.DefaultRateLimitWindow()),
		RequestTimeout:    utils.GetEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		Store:             strings.ToLower(utils.GetEnvTrimmedOrDefault("WAITLIST_STORE", constants.StoreMemory)),
		NotifyTimeout:     utils.GetEnvDuration("SIGNUP_NOTIFY_TIMEOUT", 10*time.Second),
	}
}

func (c *AppConfig) Validate() error {
	switch c.Store {
	case constants.StoreMemory, constants.StorePostgres:
		return nil
	default:
		return fmt.Errorf("unsupported WAITLIST_STORE %q (allowed: %s, %s)", c.Store, constants.StoreMemory, constants.StorePostgres)
	}
}

func (ac *ApplicationConfig) Cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	if ac.TracingShutdown != nil {
		if err := ac.TracingShutdown(ctx); err != nil {
			ac.Logger.Error("Failed to shutdown tracer provider", "error", err)
		}
	}

	if ac.Publisher != nil {
		if err := ac.Publisher.Close(); err != nil {
			ac.Logger.Error("Failed to close event publisher", "error", err)
		}
	}

	if ac.DB != nil {
		CloseDatabase(ac.DB, ac.Logger)
	}

	if ac.RouterService != nil {
		ac.RouterService.Cleanup()
	}

	if ac.Cache != nil {
		CloseCache(ac.Cache, ac.Logger)
	}

	ac.Logger.Info("Application cleanup completed")
}

func LoadApplicationConfiguration(logger *log.Logger, autoMigrate bool) (*ApplicationConfig, error) {
	InitializeEnvFile(logger)

	appConfig := NewAppConfig()
	if err := appConfig.Validate(); err != nil {
		return nil, err
	}

	if autoMigrate {
		appEnv := GetAppEnv()
		if err := ValidateAutoMigrateAllowed(appEnv); err != nil {
			return nil, err
		}
		if appEnv == "" {
			logger.Warn("APP_ENV not set; allowing --auto-migrate as development")
		}
	}

	ctx := context.Background()

	tracingShutdown, err := SetupTracing(ctx, logger)
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	if appConfig.Store == constants.StorePostgres {
		db, err = OpenDatabase(ctx, logger, nil)
		if err != nil {
			return nil, err
		}

		if autoMigrate {
			if err := AutoMigrate(logger, db, models.ModelRegistry...); err != nil {
				CloseDatabase(db, logger)
				return nil, err
			}
		}
	} else {
		logger.Info("Using in-memory waitlist store; entries are lost on restart")
		if autoMigrate {
			logger.Warn("--auto-migrate ignored for the in-memory store")
		}
	}

	cache := NewCacheConfig().NewCacheOrNil(logger)

	routerService := router.CreateRouterService(logger, cache, &router.RouterConfig{
		RateLimitRequests: appConfig.RateLimitRequests,
		RateLimitWindow:   appConfig.RateLimitWindow,
		RequestTimeout:    appConfig.RequestTimeout,
	})

	integrations := LoadIntegrations(ctx, logger)

	logger.Info("Application configuration loaded successfully",
		"store", appConfig.Store,
		"mailing_list_enabled", integrations.MailingList.Enabled(),
		"event_publishing", integrations.Publisher.Healthy(),
		"object_storage", integrations.ObjectStore != nil,
	)

	return &ApplicationConfig{
		DB:              db,
		RouterService:   routerService,
		Logger:          logger,
		Cache:           cache,
		Config:          appConfig,
		TracingShutdown: tracingShutdown,
		MailingList:     integrations.MailingList,
		Publisher:       integrations.Publisher,
		ObjectStore:     integrations.ObjectStore,
	}, nil
}
