package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-site-sync/internal/app"
	"github.com/MKhiriev/go-site-sync/internal/service"
	"github.com/MKhiriev/go-site-sync/internal/store"
	"github.com/MKhiriev/go-site-sync/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON: http.StatusBadRequest,

	service.ErrInvalidDocument:  http.StatusBadRequest,
	service.ErrDocumentNotFound: http.StatusNotFound,

	store.ErrDocumentNotFound:   http.StatusNotFound,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
	store.ErrEncodingPayload:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	// a retryable backend failure also wraps the sentinel of the failed step
	if errors.Is(err, store.ErrStoreUnavailable) {
		return http.StatusServiceUnavailable
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status. Details of 5xx failures stay in the logs.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	switch status {
	case http.StatusServiceUnavailable:
		utils.WriteError(w, app.MsgStoreUnavailable, status)
	case http.StatusInternalServerError:
		utils.WriteError(w, app.MsgInternalServerError, status)
	default:
		utils.WriteError(w, err.Error(), status)
	}
}
