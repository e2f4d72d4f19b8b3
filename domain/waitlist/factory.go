package waitlist

import (
	"github.com/lixi-remit/lixi-landing/config/router"
	"github.com/lixi-remit/lixi-landing/internal/log"
	"github.com/lixi-remit/lixi-landing/pkg/constants"
	"gorm.io/gorm"
)

type WaitlistServiceFactory interface {
	CreateRepository() WaitlistRepository
	CreateService() WaitlistService
	CreateController() *router.RESTController
}

type FactoryConfig struct {
	Store    string
	DB       *gorm.DB
	Notifier SignupNotifier
	Metrics  *Metrics
	Logger   *log.Logger
}

// DefaultWaitlistServiceFactory builds one repository and shares it between
// the service and anything else that asks for it (health checks, export).
type DefaultWaitlistServiceFactory struct {
	config     FactoryConfig
	repository WaitlistRepository
}

func NewWaitlistServiceFactory(cfg FactoryConfig) *DefaultWaitlistServiceFactory {
	return &DefaultWaitlistServiceFactory{config: cfg}
}

func (f *DefaultWaitlistServiceFactory) CreateRepository() WaitlistRepository {
	if f.repository != nil {
		return f.repository
	}

	if f.config.Store == constants.StorePostgres && f.config.DB != nil {
		f.repository = NewGormRepository(f.config.DB)
	} else {
		if f.config.Store == constants.StorePostgres && f.config.Logger != nil {
			f.config.Logger.Warn("WAITLIST_STORE=postgres without a database, using the in-memory store")
		}
		f.repository = NewMemoryRepository()
	}

	return f.repository
}

func (f *DefaultWaitlistServiceFactory) CreateService() WaitlistService {
	return NewWaitlistService(f.config.Logger, f.CreateRepository(), f.config.Notifier, f.config.Metrics)
}

func (f *DefaultWaitlistServiceFactory) CreateController() *router.RESTController {
	return NewWaitlistController(f.CreateService(), f.config.Logger)
}

// StoreName reports the backend actually in use.
func (f *DefaultWaitlistServiceFactory) StoreName() string {
	if _, ok := f.CreateRepository().(*gormRepository); ok {
		return constants.StorePostgres
	}
	return constants.StoreMemory
}
