package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-site-sync/internal/validators"
	"github.com/MKhiriev/go-site-sync/models"
)

// DocumentServiceWrapper defines middleware composition for DocumentService.
// Implementations wrap an existing DocumentService to add behavior such as
// logging or validating.
type DocumentServiceWrapper interface {
	Wrap(DocumentService) DocumentService // returns a decorated DocumentService applying additional behavior
}

// DocumentValidationService rejects malformed documents before they reach
// the wrapped DocumentService.
type DocumentValidationService struct {
	inner     DocumentService
	validator validators.Validator
}

func NewDocumentValidationService(validator validators.Validator) DocumentServiceWrapper {
	return &DocumentValidationService{validator: validator}
}

func (v *DocumentValidationService) Create(ctx context.Context, doc models.Document) (models.Document, error) {
	fields := []string{validators.FieldCollection, validators.FieldPayload}
	if doc.ID != "" {
		fields = append(fields, validators.FieldID)
	}
	if err := v.validator.Validate(ctx, doc, fields...); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return v.inner.Create(ctx, doc)
}

func (v *DocumentValidationService) Update(ctx context.Context, doc models.Document) (models.Document, error) {
	if err := v.validator.Validate(ctx, doc); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return v.inner.Update(ctx, doc)
}

func (v *DocumentValidationService) Delete(ctx context.Context, collection, id string) error {
	if err := v.validateKey(ctx, collection, id); err != nil {
		return err
	}
	return v.inner.Delete(ctx, collection, id)
}

func (v *DocumentValidationService) Get(ctx context.Context, collection, id string) (models.Document, error) {
	if err := v.validateKey(ctx, collection, id); err != nil {
		return models.Document{}, err
	}
	return v.inner.Get(ctx, collection, id)
}

func (v *DocumentValidationService) List(ctx context.Context, collection string) ([]models.Document, error) {
	doc := models.Document{Collection: collection}
	if err := v.validator.Validate(ctx, doc, validators.FieldCollection); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return v.inner.List(ctx, collection)
}

func (v *DocumentValidationService) Wrap(wrapped DocumentService) DocumentService {
	v.inner = wrapped
	return v
}

func (v *DocumentValidationService) validateKey(ctx context.Context, collection, id string) error {
	doc := models.Document{Collection: collection, ID: id}
	if err := v.validator.Validate(ctx, doc, validators.FieldCollection, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return nil
}
