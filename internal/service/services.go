package service

import (
	"github.com/MKhiriev/go-site-sync/internal/config"
	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/internal/store"
	"github.com/MKhiriev/go-site-sync/internal/utils"
	"github.com/MKhiriev/go-site-sync/internal/validators"
)

type Services struct {
	DocumentService DocumentService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, validator validators.Validator, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, storages.DocumentRepository, logger)
	if err != nil {
		return nil, err
	}

	documents := NewDocumentService(storages.DocumentRepository, utils.NewUUIDGenerator(), logger)

	return &Services{
		DocumentService: NewDocumentValidationService(validator).Wrap(documents),
		AppInfoService:  appInfo,
	}, nil
}
