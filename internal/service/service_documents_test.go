package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/internal/mock"
	"github.com/MKhiriev/go-site-sync/internal/store"
	"github.com/MKhiriev/go-site-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDocumentService(t *testing.T) (DocumentService, *mock.MockDocumentRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDocumentRepository(ctrl)
	return NewDocumentService(repo, &sequentialIDs{prefix: "doc"}, logger.Nop()), repo
}

func TestDocumentService_Create_GeneratesMissingID(t *testing.T) {
	svc, repo := newTestDocumentService(t)

	repo.EXPECT().
		Create(gomock.Any(), models.Document{Collection: "tasks", ID: "doc-1", Payload: models.Payload{"title": "A"}}).
		DoAndReturn(func(_ context.Context, doc models.Document) (models.Document, error) {
			return doc, nil
		})

	created, err := svc.Create(context.Background(), models.Document{Collection: "tasks", Payload: models.Payload{"title": "A"}})

	require.NoError(t, err)
	assert.Equal(t, "doc-1", created.ID)
}

func TestDocumentService_Create_KeepsProposedID(t *testing.T) {
	svc, repo := newTestDocumentService(t)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc models.Document) (models.Document, error) {
			return doc, nil
		})

	created, err := svc.Create(context.Background(), models.Document{Collection: "tasks", ID: "client-7", Payload: models.Payload{}})

	require.NoError(t, err)
	assert.Equal(t, "client-7", created.ID)
}

func TestDocumentService_Create_RepositoryError(t *testing.T) {
	svc, repo := newTestDocumentService(t)
	dbErr := errors.New("disk full")

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Document{}, dbErr)

	_, err := svc.Create(context.Background(), models.Document{Collection: "tasks", Payload: models.Payload{}})

	assert.ErrorIs(t, err, dbErr)
}

func TestDocumentService_UpdateAndGet_NotFound(t *testing.T) {
	svc, repo := newTestDocumentService(t)
	ctx := context.Background()

	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(models.Document{}, store.ErrDocumentNotFound)
	repo.EXPECT().Get(gomock.Any(), "tasks", "missing").Return(models.Document{}, store.ErrDocumentNotFound)

	_, err := svc.Update(ctx, models.Document{Collection: "tasks", ID: "missing", Payload: models.Payload{}})
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	_, err = svc.Get(ctx, "tasks", "missing")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestDocumentService_Update(t *testing.T) {
	svc, repo := newTestDocumentService(t)
	doc := models.Document{Collection: "tasks", ID: "t1", Payload: models.Payload{"title": "B"}}

	repo.EXPECT().Update(gomock.Any(), doc).Return(doc, nil)

	updated, err := svc.Update(context.Background(), doc)

	require.NoError(t, err)
	assert.Equal(t, doc, updated)
}

func TestDocumentService_Delete(t *testing.T) {
	svc, repo := newTestDocumentService(t)
	ctx := context.Background()

	repo.EXPECT().Delete(gomock.Any(), "tasks", "t1").Return(nil)
	require.NoError(t, svc.Delete(ctx, "tasks", "t1"))

	dbErr := errors.New("locked")
	repo.EXPECT().Delete(gomock.Any(), "tasks", "t2").Return(dbErr)
	assert.ErrorIs(t, svc.Delete(ctx, "tasks", "t2"), dbErr)
}

func TestDocumentService_List_EmptyIsNotNil(t *testing.T) {
	svc, repo := newTestDocumentService(t)

	repo.EXPECT().List(gomock.Any(), "tasks").Return(nil, nil)

	docs, err := svc.List(context.Background(), "tasks")

	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestDocumentService_List_Error(t *testing.T) {
	svc, repo := newTestDocumentService(t)
	dbErr := errors.New("timeout")

	repo.EXPECT().List(gomock.Any(), "tasks").Return(nil, dbErr)

	docs, err := svc.List(context.Background(), "tasks")

	assert.Nil(t, docs)
	assert.ErrorIs(t, err, dbErr)
}
