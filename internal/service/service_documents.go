package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/internal/store"
	"github.com/MKhiriev/go-site-sync/internal/utils"
	"github.com/MKhiriev/go-site-sync/models"
)

type documentService struct {
	repository store.DocumentRepository
	ids        utils.IDGenerator

	logger *logger.Logger
}

func NewDocumentService(repository store.DocumentRepository, ids utils.IDGenerator, logger *logger.Logger) DocumentService {
	return &documentService{
		repository: repository,
		ids:        ids,
		logger:     logger,
	}
}

func (s *documentService) Create(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	if doc.ID == "" {
		doc.ID = s.ids.Generate()
	}

	created, err := s.repository.Create(ctx, doc)
	if err != nil {
		log.Err(err).Str("func", "documentService.Create").Str("collection", doc.Collection).Msg("error creating document")
		return models.Document{}, fmt.Errorf("create document: %w", err)
	}

	return created, nil
}

func (s *documentService) Update(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	updated, err := s.repository.Update(ctx, doc)
	if errors.Is(err, store.ErrDocumentNotFound) {
		return models.Document{}, fmt.Errorf("%w: %s/%s", ErrDocumentNotFound, doc.Collection, doc.ID)
	}
	if err != nil {
		log.Err(err).Str("func", "documentService.Update").Str("collection", doc.Collection).Str("id", doc.ID).Msg("error updating document")
		return models.Document{}, fmt.Errorf("update document: %w", err)
	}

	return updated, nil
}

func (s *documentService) Delete(ctx context.Context, collection, id string) error {
	if err := s.repository.Delete(ctx, collection, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "documentService.Delete").Str("collection", collection).Str("id", id).Msg("error deleting document")
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

func (s *documentService) Get(ctx context.Context, collection, id string) (models.Document, error) {
	doc, err := s.repository.Get(ctx, collection, id)
	if errors.Is(err, store.ErrDocumentNotFound) {
		return models.Document{}, fmt.Errorf("%w: %s/%s", ErrDocumentNotFound, collection, id)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "documentService.Get").Str("collection", collection).Str("id", id).Msg("error getting document")
		return models.Document{}, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

func (s *documentService) List(ctx context.Context, collection string) ([]models.Document, error) {
	docs, err := s.repository.List(ctx, collection)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "documentService.List").Str("collection", collection).Msg("error listing documents")
		return nil, fmt.Errorf("list documents: %w", err)
	}
	if docs == nil {
		docs = []models.Document{}
	}
	return docs, nil
}
