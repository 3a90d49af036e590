package store

import (
	"context"

	"github.com/MKhiriev/go-site-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentRepository persists documents for the reference remote store.
type DocumentRepository interface {
	// Create inserts doc or, when (collection, id) already exists, replaces
	// its payload. The original creation time is kept.
	Create(ctx context.Context, doc models.Document) (models.Document, error)
	// Update replaces the payload of an existing document.
	Update(ctx context.Context, doc models.Document) (models.Document, error)
	// Delete removes a document. Missing documents are not an error.
	Delete(ctx context.Context, collection, id string) error
	Get(ctx context.Context, collection, id string) (models.Document, error)
	// List returns every document of collection ordered by id.
	List(ctx context.Context, collection string) ([]models.Document, error)
	Ping(ctx context.Context) error
	Close() error
}

// ErrorClassificator decides whether a backend error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
