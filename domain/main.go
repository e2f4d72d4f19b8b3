package domain

import (
	"context"

	"github.com/lixi-remit/lixi-landing/config"
	"github.com/lixi-remit/lixi-landing/domain/landing"
	"github.com/lixi-remit/lixi-landing/domain/monitoring"
	"github.com/lixi-remit/lixi-landing/domain/waitlist"
	"github.com/lixi-remit/lixi-landing/internal/events"
)

// Core holds the domain pieces that outlive route registration.
type Core struct {
	Notifier  waitlist.SignupNotifier
	StoreName string
}

// Shutdown waits for in-flight sign-up notifications or until ctx expires.
func (c *Core) Shutdown(ctx context.Context) error {
	if c == nil || c.Notifier == nil {
		return nil
	}
	return c.Notifier.Close(ctx)
}

func SetupCoreDomain(appConfig *config.ApplicationConfig) *Core {
	rs := appConfig.RouterService
	metrics := waitlist.NewMetrics(rs.MetricsRegisterer())

	notifier := waitlist.NewSignupNotifier(waitlist.NotifierConfig{
		Subscriber: appConfig.MailingList,
		Publisher:  appConfig.Publisher,
		Metrics:    metrics,
		Logger:     appConfig.Logger,
		Timeout:    appConfig.Config.NotifyTimeout,
	})

	waitlistFactory := waitlist.NewWaitlistServiceFactory(waitlist.FactoryConfig{
		Store:    appConfig.Config.Store,
		DB:       appConfig.DB,
		Notifier: notifier,
		Metrics:  metrics,
		Logger:   appConfig.Logger,
	})
	service := waitlistFactory.CreateService()

	monitoringCfg := monitoring.Config{
		DB:                 appConfig.DB,
		Waitlist:           service,
		StoreName:          waitlistFactory.StoreName(),
		MailingListEnabled: appConfig.MailingList.Enabled(),
		Logger:             appConfig.Logger,
	}
	// NoopPublisher stands in when AMQP is unset; report the queue as absent.
	if events.Configured(appConfig.Publisher) {
		monitoringCfg.MessageQueue = appConfig.Publisher
	}
	if appConfig.Cache != nil {
		monitoringCfg.Cache = appConfig.Cache
	}
	if appConfig.ObjectStore != nil {
		monitoringCfg.Storage = appConfig.ObjectStore
	}

	rs.MountController(landing.NewLandingController(appConfig.Logger))
	rs.MountController(waitlist.NewWaitlistController(service, appConfig.Logger))
	rs.MountController(monitoring.NewMonitoringControllerFactory(monitoringCfg).CreateController())

	appConfig.Logger.Info("Core domain ready", "store", waitlistFactory.StoreName())

	return &Core{Notifier: notifier, StoreName: waitlistFactory.StoreName()}
}
