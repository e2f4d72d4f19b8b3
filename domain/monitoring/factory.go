package monitoring

import (
	"github.com/lixi-remit/lixi-landing/config/router"
	"github.com/lixi-remit/lixi-landing/internal/log"
	"gorm.io/gorm"
)

// Config wires the dependency checks. Leave a dependency nil when it is not configured;
// it then reports 0 instead of failing the request.
type Config struct {
	DB                 *gorm.DB
	Cache              Pinger
	MessageQueue       QueueHealth
	Storage            Pinger
	Waitlist           WaitlistCounter
	StoreName          string
	MailingListEnabled bool
	Logger             *log.Logger
}

type MonitoringControllerFactory interface {
	CreateController() *router.RESTController
}

type DefaultMonitoringControllerFactory struct {
	config Config
}

func NewMonitoringControllerFactory(cfg Config) MonitoringControllerFactory {
	return &DefaultMonitoringControllerFactory{config: cfg}
}

func (f *DefaultMonitoringControllerFactory) CreateController() *router.RESTController {
	return NewMonitoringController(f.config)
}
