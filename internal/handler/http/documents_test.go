package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-site-sync/internal/app"
	"github.com/MKhiriev/go-site-sync/internal/service"
	"github.com/MKhiriev/go-site-sync/internal/store"
	"github.com/MKhiriev/go-site-sync/internal/utils"
	"github.com/MKhiriev/go-site-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

func TestCreateDocument(t *testing.T) {
	router, mocks := newTestRouter(t)
	want := models.Document{Collection: "tasks", ID: "client-1", Payload: models.Payload{"title": "A"}}

	mocks.documents.EXPECT().Create(gomock.Any(), want).Return(want, nil)

	rr := doRequest(t, router, http.MethodPost, "/api/collections/tasks/documents",
		models.DocumentRequest{ID: "client-1", Payload: models.Payload{"title": "A"}})

	require.Equal(t, http.StatusCreated, rr.Code)
	var got models.Document
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "client-1", got.ID)
	assert.Equal(t, "A", got.Payload["title"])
}

func TestCreateDocument_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/collections/tasks/documents", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, ErrInvalidJSON.Error(), decodeError(t, rr))
}

func TestCreateDocument_ValidationError(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.documents.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(models.Document{}, fmt.Errorf("%w: title is required", service.ErrInvalidDocument))

	rr := doRequest(t, router, http.MethodPost, "/api/collections/tasks/documents", models.DocumentRequest{Payload: models.Payload{}})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeError(t, rr), "title is required")
}

func TestUpdateDocument_PathIDWins(t *testing.T) {
	router, mocks := newTestRouter(t)
	want := models.Document{Collection: "tasks", ID: "t1", Payload: models.Payload{"title": "B"}}

	mocks.documents.EXPECT().Update(gomock.Any(), want).Return(want, nil)

	rr := doRequest(t, router, http.MethodPut, "/api/collections/tasks/documents/t1",
		models.DocumentRequest{ID: "other", Payload: models.Payload{"title": "B"}})

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDocumentErrorStatuses(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "not found", err: fmt.Errorf("%w: tasks/t1", service.ErrDocumentNotFound), wantStatus: http.StatusNotFound, wantMessage: "document not found: tasks/t1"},
		{name: "store unavailable", err: fmt.Errorf("%w: %w: conn reset", store.ErrStoreUnavailable, store.ErrExecutingQuery), wantStatus: http.StatusServiceUnavailable, wantMessage: app.MsgStoreUnavailable},
		{name: "query failure", err: fmt.Errorf("%w: syntax", store.ErrExecutingQuery), wantStatus: http.StatusInternalServerError, wantMessage: app.MsgInternalServerError},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMessage: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			mocks.documents.EXPECT().Update(gomock.Any(), gomock.Any()).Return(models.Document{}, tt.err)

			rr := doRequest(t, router, http.MethodPut, "/api/collections/tasks/documents/t1",
				models.DocumentRequest{Payload: models.Payload{"title": "B"}})

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, rr))
		})
	}
}

func TestGetDocument(t *testing.T) {
	router, mocks := newTestRouter(t)
	doc := models.Document{Collection: "sites", ID: "s1", Payload: models.Payload{"name": "Depot"}}

	mocks.documents.EXPECT().Get(gomock.Any(), "sites", "s1").Return(doc, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/collections/sites/documents/s1", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.Document
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Depot", got.Payload["name"])
}

func TestDeleteDocument(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.documents.EXPECT().Delete(gomock.Any(), "tasks", "t1").Return(nil)

	rr := doRequest(t, router, http.MethodDelete, "/api/collections/tasks/documents/t1", nil)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestListDocuments(t *testing.T) {
	tests := []struct {
		name string
		docs []models.Document
	}{
		{name: "empty", docs: []models.Document{}},
		{name: "two", docs: []models.Document{
			{Collection: "tasks", ID: "a", Payload: models.Payload{"title": "A"}},
			{Collection: "tasks", ID: "b", Payload: models.Payload{"title": "B"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			mocks.documents.EXPECT().List(gomock.Any(), "tasks").Return(tt.docs, nil)

			rr := doRequest(t, router, http.MethodGet, "/api/collections/tasks/documents", nil)

			require.Equal(t, http.StatusOK, rr.Code)
			var got models.DocumentListResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, len(tt.docs), got.Length)
			assert.Len(t, got.Documents, len(tt.docs))
		})
	}
}
