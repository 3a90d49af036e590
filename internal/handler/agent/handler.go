package agent

import (
	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/internal/service"
)

type Handler struct {
	entities service.EntityService

	logger *logger.Logger
}

func NewHandler(entities service.EntityService, logger *logger.Logger) *Handler {
	logger.Info().Msg("agent handler created")
	return &Handler{
		entities: entities,
		logger:   logger,
	}
}
