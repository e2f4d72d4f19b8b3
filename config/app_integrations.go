package config

import (
	"context"
	"time"

	"github.com/lixi-remit/lixi-landing/internal/emailoctopus"
	"github.com/lixi-remit/lixi-landing/internal/events"
	"github.com/lixi-remit/lixi-landing/internal/export"
	"github.com/lixi-remit/lixi-landing/internal/log"
	"github.com/lixi-remit/lixi-landing/pkg/circuitbreaker"
	"github.com/lixi-remit/lixi-landing/pkg/retry"
)

const amqpDialTimeout = 15 * time.Second

// Integrations are the optional outbound services. Each one degrades to a
// disabled value instead of failing startup.
type Integrations struct {
	MailingList *emailoctopus.Client
	Publisher   events.Publisher
	// ObjectStore is nil when MinIO is not configured.
	ObjectStore *export.ObjectStore
}

func LoadIntegrations(ctx context.Context, logger *log.Logger) Integrations {
	return Integrations{
		MailingList: NewMailingList(logger),
		Publisher:   NewEventPublisher(ctx, logger),
		ObjectStore: NewObjectStoreOrNil(logger),
	}
}

func NewMailingList(logger *log.Logger) *emailoctopus.Client {
	client := emailoctopus.NewClient(emailoctopus.ConfigFromEnv())
	if !client.Enabled() {
		logger.Info("EmailOctopus is not configured; sign-ups will not be added to the mailing list")
	}
	return client
}

func NewEventPublisher(ctx context.Context, logger *log.Logger) events.Publisher {
	cfg := events.ConfigFromEnv()
	if !cfg.Enabled() {
		logger.Info("AMQP is not configured; waitlist events will not be published")
		return events.NoopPublisher{}
	}

	ctx, cancel := context.WithTimeout(ctx, amqpDialTimeout)
	defer cancel()

	breakerCfg := circuitbreaker.DefaultConfig()
	breakerCfg.OnStateChange = func(from, to circuitbreaker.CircuitState) {
		logger.Warn("Event publisher circuit changed state", "from", from.String(), "to", to.String())
	}

	publisher, err := events.Dial(ctx, cfg,
		retry.NewExponentialBackoff(retry.DefaultConfig()),
		circuitbreaker.NewCircuitBreaker(breakerCfg),
		logger,
	)
	if err != nil {
		logger.Error("Failed to connect event publisher; continuing without it", "error", err)
		return events.NoopPublisher{}
	}

	return publisher
}

func NewObjectStoreOrNil(logger *log.Logger) *export.ObjectStore {
	cfg := export.StorageConfigFromEnv()
	if !cfg.Enabled() {
		logger.Info("Object storage (MinIO) is not configured")
		return nil
	}

	store, err := export.NewObjectStore(cfg)
	if err != nil {
		logger.Error("Failed to create object storage client", "error", err)
		return nil
	}

	logger.Info("Object storage (MinIO) configured", "bucket", store.Bucket())
	return store
}
