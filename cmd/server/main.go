package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-site-sync/internal/config"
	"github.com/MKhiriev/go-site-sync/internal/handler"
	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/internal/server"
	"github.com/MKhiriev/go-site-sync/internal/service"
	"github.com/MKhiriev/go-site-sync/internal/store"
	"github.com/MKhiriev/go-site-sync/internal/validators"
	"github.com/MKhiriev/go-site-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("go-site-sync-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.LogLevel != "" && !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.DocumentRepository.Close()

	validator, err := validators.NewDocumentValidatorFromDir(cfg.App.SchemaDir)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading document schemas")
	}

	services, err := service.NewServices(storages, cfg.App, validator, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
