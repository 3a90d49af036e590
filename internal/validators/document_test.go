// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-site-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tasksSchema = `{
  "type": "object",
  "required": ["title"],
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "progress": {"type": "number", "minimum": 0, "maximum": 100}
  }
}`

func newTasksValidator(t *testing.T) *DocumentValidator {
	t.Helper()
	v := NewDocumentValidator()
	require.NoError(t, v.AddSchema("tasks", []byte(tasksSchema)))
	return v
}

func TestValidate_Document(t *testing.T) {
	v := newTasksValidator(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		doc     models.Document
		wantErr error
	}{
		{
			name: "valid task",
			doc:  models.Document{Collection: "tasks", ID: "t1", Payload: models.Payload{"title": "Pour slab", "progress": 40.0}},
		},
		{
			name: "collection without schema accepts any object",
			doc:  models.Document{Collection: "notes", ID: "n1", Payload: models.Payload{"anything": true}},
		},
		{
			name:    "missing required field",
			doc:     models.Document{Collection: "tasks", ID: "t1", Payload: models.Payload{"progress": 10.0}},
			wantErr: ErrSchemaViolation,
		},
		{
			name:    "out of range",
			doc:     models.Document{Collection: "tasks", ID: "t1", Payload: models.Payload{"title": "x", "progress": 140.0}},
			wantErr: ErrSchemaViolation,
		},
		{
			name:    "nil payload",
			doc:     models.Document{Collection: "notes", ID: "n1"},
			wantErr: ErrEmptyPayload,
		},
		{
			name:    "upper case collection",
			doc:     models.Document{Collection: "Tasks", ID: "t1", Payload: models.Payload{}},
			wantErr: ErrInvalidCollection,
		},
		{
			name:    "empty collection",
			doc:     models.Document{ID: "t1", Payload: models.Payload{}},
			wantErr: ErrInvalidCollection,
		},
		{
			name:    "empty id",
			doc:     models.Document{Collection: "notes", Payload: models.Payload{}},
			wantErr: ErrInvalidDocumentID,
		},
		{
			name:    "id with slash",
			doc:     models.Document{Collection: "notes", ID: "a/b", Payload: models.Payload{}},
			wantErr: ErrInvalidDocumentID,
		},
		{
			name:    "id too long",
			doc:     models.Document{Collection: "notes", ID: strings.Repeat("x", maxIDLength+1), Payload: models.Payload{}},
			wantErr: ErrInvalidDocumentID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.doc)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			// pointer form behaves the same
			doc := tt.doc
			assert.ErrorIs(t, v.Validate(ctx, &doc), tt.wantErr)
		})
	}
}

func TestValidate_FieldScoping(t *testing.T) {
	v := newTasksValidator(t)
	ctx := context.Background()

	// update requests carry no id in the body; only the payload matters
	doc := models.Document{Collection: "tasks", Payload: models.Payload{"title": "Frame walls"}}

	assert.NoError(t, v.Validate(ctx, doc, FieldCollection, FieldPayload))
	assert.ErrorIs(t, v.Validate(ctx, doc), ErrInvalidDocumentID)
	assert.ErrorIs(t, v.Validate(ctx, doc, "owner"), ErrUnknownField)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewDocumentValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "tasks"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.Document)(nil)), ErrUnsupportedType)
}

func TestAddSchema_Errors(t *testing.T) {
	v := NewDocumentValidator()

	assert.ErrorIs(t, v.AddSchema("Bad Name", []byte(`{}`)), ErrInvalidCollection)
	assert.ErrorIs(t, v.AddSchema("tasks", []byte(`{not json`)), ErrLoadingSchema)
	assert.ErrorIs(t, v.AddSchema("tasks", []byte(`{"type": 12}`)), ErrLoadingSchema)
	assert.Empty(t, v.Collections())
}

func TestNewDocumentValidatorFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tasks.json"), []byte(tasksSchema), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("ignored"), 0o600))

	v, err := NewDocumentValidatorFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"tasks"}, v.Collections())

	err = v.Validate(context.Background(), models.Document{Collection: "tasks", ID: "t1", Payload: models.Payload{}})
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestNewDocumentValidatorFromDir_Empty(t *testing.T) {
	v, err := NewDocumentValidatorFromDir("")
	require.NoError(t, err)
	assert.Empty(t, v.Collections())
}

func TestNewDocumentValidatorFromDir_BrokenSchema(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sites.json"), []byte(`{"type":`), 0o600))

	_, err := NewDocumentValidatorFromDir(dir)
	assert.ErrorIs(t, err, ErrLoadingSchema)
}

func TestNewDocumentValidatorFromDir_ShippedSchemas(t *testing.T) {
	v, err := NewDocumentValidatorFromDir(filepath.Join("..", "..", "schemas"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sites", "tasks"}, v.Collections())
}
