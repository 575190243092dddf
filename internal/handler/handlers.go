package handler

import (
	"github.com/apexglitch/crm/internal/config"
	"github.com/apexglitch/crm/internal/handler/http"
	"github.com/apexglitch/crm/internal/logger"
	"github.com/apexglitch/crm/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.Storage.Files, logger),
	}, nil
}
