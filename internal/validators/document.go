package validators

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/MKhiriev/go-site-sync/models"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Field name constants used to restrict validation to a subset of a
// document.
const (
	// FieldCollection targets the collection name.
	FieldCollection = "collection"

	// FieldID targets the document id.
	FieldID = "id"

	// FieldPayload targets the payload, checked against the collection
	// schema when one is registered.
	FieldPayload = "payload"
)

const maxIDLength = 128

var collectionNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// DocumentValidator checks documents before they reach the store. Payloads
// of collections that have a registered JSON schema are validated against
// it; other collections accept any JSON object.
type DocumentValidator struct {
	mu      sync.RWMutex
	schemas map[string]*jsonschema.Schema
}

// NewDocumentValidator returns a validator without schemas.
func NewDocumentValidator() *DocumentValidator {
	return &DocumentValidator{schemas: make(map[string]*jsonschema.Schema)}
}

// NewDocumentValidatorFromDir loads every <collection>.json file in dir as
// the schema of that collection. An empty dir yields a validator without
// schemas.
func NewDocumentValidatorFromDir(dir string) (*DocumentValidator, error) {
	v := NewDocumentValidator()
	if dir == "" {
		return v, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadingSchema, err)
	}

	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrLoadingSchema, file, err)
		}
		collection := strings.TrimSuffix(filepath.Base(file), ".json")
		if err = v.AddSchema(collection, raw); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// AddSchema compiles raw as the JSON schema of collection, replacing any
// previous one.
func (v *DocumentValidator) AddSchema(collection string, raw []byte) error {
	if !collectionNamePattern.MatchString(collection) {
		return fmt.Errorf("%w: %q", ErrInvalidCollection, collection)
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(raw)))
	if err != nil {
		return fmt.Errorf("%w: parse %s: %w", ErrLoadingSchema, collection, err)
	}

	url := "https://site-sync.local/schemas/" + collection + ".json"
	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(url, doc); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLoadingSchema, collection, err)
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		return fmt.Errorf("%w: compile %s: %w", ErrLoadingSchema, collection, err)
	}

	v.mu.Lock()
	v.schemas[collection] = schema
	v.mu.Unlock()
	return nil
}

// Collections returns the names of collections with a schema.
func (v *DocumentValidator) Collections() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	names := make([]string, 0, len(v.schemas))
	for name := range v.schemas {
		names = append(names, name)
	}
	return names
}

// Validate accepts models.Document or *models.Document. Without fields the
// collection, id and payload are all checked.
func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch doc := obj.(type) {
	case models.Document:
		return v.validateDocument(doc, fields...)
	case *models.Document:
		if doc == nil {
			return ErrUnsupportedType
		}
		return v.validateDocument(*doc, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *DocumentValidator) validateDocument(doc models.Document, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCollection, FieldID, FieldPayload}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldCollection:
			err = validateCollection(doc.Collection)
		case FieldID:
			err = validateID(doc.ID)
		case FieldPayload:
			err = v.validatePayload(doc.Collection, doc.Payload)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func validateCollection(collection string) error {
	if !collectionNamePattern.MatchString(collection) {
		return fmt.Errorf("%w: %q", ErrInvalidCollection, collection)
	}
	return nil
}

func validateID(id string) error {
	if id == "" || len(id) > maxIDLength || strings.ContainsAny(id, "/?#") {
		return fmt.Errorf("%w: %q", ErrInvalidDocumentID, id)
	}
	return nil
}

func (v *DocumentValidator) validatePayload(collection string, payload models.Payload) error {
	if payload == nil {
		return ErrEmptyPayload
	}

	v.mu.RLock()
	schema, ok := v.schemas[collection]
	v.mu.RUnlock()
	if !ok {
		return nil
	}

	if err := schema.Validate(map[string]any(payload)); err != nil {
		return fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}
	return nil
}
