package service

import (
	"github.com/apexglitch/crm/internal/config"
	"github.com/apexglitch/crm/internal/logger"
	"github.com/apexglitch/crm/internal/notify"
	"github.com/apexglitch/crm/internal/store"
)

type Services struct {
	AuthService     AuthService
	CustomerService CustomerService
	DocumentService DocumentService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, notifier notify.Notifier, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		CustomerService: NewCustomerService(
			storages.CustomerRepository,
			storages.DocumentRepository,
			storages.FileStore,
			notifier,
			logger,
		),
		DocumentService: NewDocumentService(
			storages.DocumentRepository,
			storages.CustomerRepository,
			storages.FileStore,
			cfg.Storage.Files.MaxUploadSize,
			notifier,
			logger,
		),
	}
}
