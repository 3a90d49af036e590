package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-site-sync/internal/config"
	"github.com/MKhiriev/go-site-sync/internal/handler"
	"github.com/MKhiriev/go-site-sync/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds the document store server.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress, cfg.RequestTimeout, logger),
		logger:     logger,
	}, nil
}

// NewAgentServer builds the server of the sync agent's local API. Unlike the
// document store server it does not listen for OS signals; the agent app
// decides when to shut it down.
func NewAgentServer(handlers *handler.Handlers, cfg config.Agent, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new agent server...")

	if handlers == nil || handlers.Agent == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return newHTTPServer(handlers.Agent.Init(), cfg.HTTPAddress, 0, logger), nil
}

func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
