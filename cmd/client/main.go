package main

import (
	"fmt"

	"github.com/MKhiriev/go-site-sync/internal/client"
	"github.com/MKhiriev/go-site-sync/internal/config"
	"github.com/MKhiriev/go-site-sync/internal/logger"
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

	log := logger.NewClientLogger("go-site-sync-agent")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.LogLevel != "" && !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	app, err := client.NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init sync agent error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("sync agent run error")
	}
}
