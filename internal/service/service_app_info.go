package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-site-sync/internal/config"
	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/internal/store"
)

type appInfoService struct {
	appVersion string
	repository store.DocumentRepository

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, repository store.DocumentRepository, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		repository: repository,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) CheckHealth(ctx context.Context) error {
	if err := s.repository.Ping(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "appInfoService.CheckHealth").Msg("document store is not reachable")
		return fmt.Errorf("ping document store: %w", err)
	}
	return nil
}
