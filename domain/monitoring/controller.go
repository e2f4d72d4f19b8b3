package monitoring

import (
	"context"
	"time"

	"github.com/lixi-remit/lixi-landing/config/router"
	"github.com/lixi-remit/lixi-landing/internal/log"
	"github.com/lixi-remit/lixi-landing/pkg/constants"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

// QueueHealth is satisfied by the event publisher.
type QueueHealth interface {
	Healthy() bool
}

type WaitlistCounter interface {
	CountEntries(ctx context.Context) (int64, error)
}

type HealthStatus struct {
	Store        int `json:"store"`
	Database     int `json:"database"`      // 0 when the memory store is in use
	Cache        int `json:"cache"`         // 0 when Redis is not configured
	MessageQueue int `json:"message_queue"` // 0 when AMQP is not configured
	Storage      int `json:"storage"`       // 0 when MinIO is not configured
	Uptime       int `json:"uptime"`
}

type MonitoringController struct {
	db                 *gorm.DB
	cache              Pinger
	queue              QueueHealth
	storage            Pinger
	waitlist           WaitlistCounter
	storeName          string
	mailingListEnabled bool
	logger             *log.Logger
	startTime          time.Time
}

func NewMonitoringController(cfg Config) *router.RESTController {
	ctrl := &MonitoringController{
		db:                 cfg.DB,
		cache:              cfg.Cache,
		queue:              cfg.MessageQueue,
		storage:            cfg.Storage,
		waitlist:           cfg.Waitlist,
		storeName:          cfg.StoreName,
		mailingListEnabled: cfg.MailingListEnabled,
		logger:             cfg.Logger,
		startTime:          time.Now(),
	}

	return router.NewRESTController(
		"MonitoringController",
		"/",
		func(routerService *router.RouterService, controller *router.RESTController) {
			monitoringRateLimiter := routerService.NewRateLimiter(constants.MonitoringRequestsPerMinute, time.Minute)

			routerService.AddGetHandler(controller, monitoringRateLimiter, "health", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.healthCheck(routerService, c)
			})

			routerService.AddGetHandler(controller, monitoringRateLimiter, "status", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.status(routerService, c)
			})
		},
	)
}

func (ctrl *MonitoringController) healthCheck(
	routerService *router.RouterService,
	c *router.RequestContext,
) *router.ServiceResult {
	logger := routerService.GetLogger(c)
	logger.Info("Health check endpoint called")

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	return router.OKResult(ctrl.performHealthChecks(ctx, logger), "LiXi health check completed")
}

func (ctrl *MonitoringController) status(
	routerService *router.RouterService,
	c *router.RequestContext,
) *router.ServiceResult {
	count, err := ctrl.waitlist.CountEntries(c.Request.Context())
	if err != nil {
		routerService.GetLogger(c).Error("Failed to count waitlist entries", "error", err)
		return router.InternalServerErrorResult("Failed to read waitlist status")
	}

	return router.OKResult(map[string]any{
		"waitlist_count":       count,
		"mailing_list_enabled": ctrl.mailingListEnabled,
		"store":                ctrl.storeName,
	}, "")
}

func (ctrl *MonitoringController) performHealthChecks(ctx context.Context, logger *log.Logger) HealthStatus {
	status := HealthStatus{
		Uptime: int(time.Since(ctrl.startTime).Seconds()),
	}

	status.Store = checkDependency(logger, "store", ctrl.waitlist != nil, func() bool {
		_, err := ctrl.waitlist.CountEntries(ctx)
		return err == nil
	})
	status.Database = checkDependency(logger, "database", ctrl.db != nil, func() bool {
		return ctrl.checkDatabase(ctx)
	})
	status.Cache = checkDependency(logger, "cache", ctrl.cache != nil, func() bool {
		return ctrl.cache.Ping(ctx) == nil
	})
	status.MessageQueue = checkDependency(logger, "message_queue", ctrl.queue != nil, func() bool {
		return ctrl.queue.Healthy()
	})
	status.Storage = checkDependency(logger, "storage", ctrl.storage != nil, func() bool {
		return ctrl.storage.Ping(ctx) == nil
	})

	return status
}

func checkDependency(logger *log.Logger, name string, configured bool, check func() bool) int {
	if !configured {
		logger.Debug("Dependency not configured, health check skipped", "dependency", name)
		return 0
	}
	if !check() {
		logger.Error("Health check failed", "dependency", name)
		return 0
	}
	return 1
}

func (ctrl *MonitoringController) checkDatabase(ctx context.Context) bool {
	sqlDB, err := ctrl.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.PingContext(ctx) == nil
}
