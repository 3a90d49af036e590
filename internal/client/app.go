package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-site-sync/internal/adapter"
	"github.com/MKhiriev/go-site-sync/internal/config"
	"github.com/MKhiriev/go-site-sync/internal/handler"
	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/internal/server"
	"github.com/MKhiriev/go-site-sync/internal/service"
	"github.com/MKhiriev/go-site-sync/internal/store"
	"github.com/MKhiriev/go-site-sync/internal/utils"
	"github.com/MKhiriev/go-site-sync/internal/workers"
)

type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	server   server.Server

	logger *logger.Logger
}

// NewApp builds the sync agent from its configuration. The reachability
// probe doubles as the device signal and as a background worker.
func NewApp(cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	remote, err := adapter.NewHTTPRemoteStore(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create remote store adapter: %w", err)
	}

	probe, err := adapter.NewReachabilityProbe(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create reachability probe: %w", err)
	}

	ids := utils.NewUUIDGenerator()
	storages := store.NewClientStorages(ids, logger)
	services := service.NewClientServices(storages, remote, probe, ids, cfg.Sync, logger)

	return newApp(services, probe, cfg, logger)
}

func newApp(services *service.ClientServices, probe workers.Worker, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	handlers, err := handler.NewAgentHandlers(services, cfg.Agent, logger)
	if err != nil {
		return nil, fmt.Errorf("create agent handlers: %w", err)
	}

	srv, err := server.NewAgentServer(handlers, cfg.Agent, logger)
	if err != nil {
		return nil, fmt.Errorf("create agent server: %w", err)
	}

	return &App{
		services: services,
		workers:  workers.NewWorkers(probe, services.SyncJob, cfg.Workers, logger),
		server:   srv,
		logger:   logger,
	}, nil
}

// Run starts the agent and blocks until SIGTERM, SIGINT or SIGQUIT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.services.Monitor.Start(ctx)
	a.workers.Run(ctx)

	go a.server.RunServer()
	a.logger.Info().Msg("sync agent started")

	<-ctx.Done()

	a.server.Shutdown()
	a.workers.Stop()
	a.services.Monitor.Stop()
	a.services.Close()

	a.logger.Info().Msg("sync agent stopped gracefully")
	return nil
}
