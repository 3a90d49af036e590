package service

import (
	"context"

	"github.com/MKhiriev/go-site-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DocumentService is the business layer of the reference document store.
type DocumentService interface {
	// Create stores doc under its id, generating one when empty. Creating an
	// existing document replaces its payload so replays are idempotent.
	Create(ctx context.Context, doc models.Document) (models.Document, error)

	// Update replaces the payload of an existing document.
	Update(ctx context.Context, doc models.Document) (models.Document, error)

	// Delete removes a document. Missing documents are not an error.
	Delete(ctx context.Context, collection, id string) error

	Get(ctx context.Context, collection, id string) (models.Document, error)
	List(ctx context.Context, collection string) ([]models.Document, error)
}

// AppInfoService reports the running build and its health.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string

	// CheckHealth returns an error when the backing store cannot be reached.
	CheckHealth(ctx context.Context) error
}
