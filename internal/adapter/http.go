package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/MKhiriev/go-site-sync/internal/config"
	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/internal/utils"
	"github.com/MKhiriev/go-site-sync/models"
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the caller's trace id to the remote store.
const TraceIDHeader = "X-Trace-ID"

const (
	healthPath     = "/api/health"
	documentsPath  = "/api/collections/{collection}/documents"
	documentIDPath = "/api/collections/{collection}/documents/{id}"
)

type httpRemoteStore struct {
	client  *utils.HTTPClient
	enabled atomic.Bool

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs an HTTP/REST implementation of [RemoteStore].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. The adapter starts enabled.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteStore(adapterCfg config.Adapter, logger *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.
		SetBaseURL(baseURL).
		SetError(&utils.ErrorResponse{})

	store := &httpRemoteStore{client: client, logger: logger}
	store.enabled.Store(true)
	return store, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Create implements [RemoteStore]. It POSTs the payload together with the
// proposed id to POST /api/collections/{collection}/documents and returns the
// id of the stored document.
func (h *httpRemoteStore) Create(ctx context.Context, collection, id string, payload models.Payload) (string, error) {
	if !h.enabled.Load() {
		return "", ErrRemoteDisabled
	}

	var created models.Document
	resp, err := h.request(ctx).
		SetPathParam("collection", collection).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DocumentRequest{ID: id, Payload: payload}).
		SetResult(&created).
		Post(documentsPath)
	if err != nil {
		return "", fmt.Errorf("%w: create request: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if created.ID == "" {
		return id, nil
	}
	return created.ID, nil
}

// Update implements [RemoteStore] via PUT /api/collections/{collection}/documents/{id}.
func (h *httpRemoteStore) Update(ctx context.Context, collection, id string, payload models.Payload) error {
	if !h.enabled.Load() {
		return ErrRemoteDisabled
	}

	resp, err := h.request(ctx).
		SetPathParams(map[string]string{"collection": collection, "id": id}).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DocumentRequest{Payload: payload}).
		Put(documentIDPath)
	if err != nil {
		return fmt.Errorf("%w: update request: %w", ErrUnreachable, err)
	}

	return mapHTTPError(resp)
}

// Delete implements [RemoteStore] via DELETE /api/collections/{collection}/documents/{id}.
func (h *httpRemoteStore) Delete(ctx context.Context, collection, id string) error {
	if !h.enabled.Load() {
		return ErrRemoteDisabled
	}

	resp, err := h.request(ctx).
		SetPathParams(map[string]string{"collection": collection, "id": id}).
		Delete(documentIDPath)
	if err != nil {
		return fmt.Errorf("%w: delete request: %w", ErrUnreachable, err)
	}

	return mapHTTPError(resp)
}

// List implements [RemoteStore] via GET /api/collections/{collection}/documents.
func (h *httpRemoteStore) List(ctx context.Context, collection string) ([]models.Entity, error) {
	if !h.enabled.Load() {
		return nil, ErrRemoteDisabled
	}

	var list models.DocumentListResponse
	resp, err := h.request(ctx).
		SetPathParam("collection", collection).
		SetResult(&list).
		Get(documentsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: list request: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	entities := make([]models.Entity, 0, len(list.Documents))
	for _, doc := range list.Documents {
		entities = append(entities, models.Entity{
			Collection: collection,
			ID:         doc.ID,
			Payload:    models.ClonePayload(doc.Payload),
		})
	}
	return entities, nil
}

// Enable implements [RemoteStore]. The adapter is switched on only after the
// health endpoint answers; otherwise it is left disabled.
func (h *httpRemoteStore) Enable(ctx context.Context) error {
	if err := h.Ping(ctx); err != nil {
		h.enabled.Store(false)
		h.logger.Warn().Err(err).Str("func", "httpRemoteStore.Enable").Msg("remote store did not answer, staying disabled")
		return err
	}

	h.enabled.Store(true)
	return nil
}

// Disable implements [RemoteStore]. It only flips local state and never fails.
func (h *httpRemoteStore) Disable(ctx context.Context) error {
	h.enabled.Store(false)
	return nil
}

// Ping implements [RemoteStore] via GET /api/health.
func (h *httpRemoteStore) Ping(ctx context.Context) error {
	resp, err := h.request(ctx).Get(healthPath)
	if err != nil {
		return fmt.Errorf("%w: health request: %w", ErrUnreachable, err)
	}
	return mapHTTPError(resp)
}

// request starts a request bound to ctx that forwards the caller's trace id.
func (h *httpRemoteStore) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(TraceIDHeader, traceID)
	}
	return req
}
