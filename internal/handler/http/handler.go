package http

import (
	"github.com/MKhiriev/go-resource-client/internal/logger"
	"github.com/MKhiriev/go-resource-client/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
