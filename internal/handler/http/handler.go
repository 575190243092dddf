package http

import (
	"github.com/apexglitch/crm/internal/config"
	"github.com/apexglitch/crm/internal/logger"
	"github.com/apexglitch/crm/internal/service"
)

type Handler struct {
	services *service.Services

	// maxUploadSize caps the request body of document uploads.
	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Files, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		maxUploadSize: cfg.MaxUploadSize,
		logger:        logger,
	}
}
