package handler

import (
	"github.com/MKhiriev/go-site-sync/internal/config"
	"github.com/MKhiriev/go-site-sync/internal/handler/agent"
	"github.com/MKhiriev/go-site-sync/internal/handler/http"
	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/internal/service"
)

type Handlers struct {
	HTTP  *http.Handler
	Agent *agent.Handler
}

// NewHandlers builds the document store's transport handlers.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}

// NewAgentHandlers builds the sync agent's local API handler.
func NewAgentHandlers(services *service.ClientServices, cfg config.Agent, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new agent handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{Agent: agent.NewHandler(services.EntityService, logger)}, nil
}
