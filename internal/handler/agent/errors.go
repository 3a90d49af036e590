package agent

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-site-sync/internal/adapter"
	"github.com/MKhiriev/go-site-sync/internal/service"
)

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrEntityNotCached is returned when a read finds nothing in the cache.
	ErrEntityNotCached = errors.New("entity is not cached")

	// ErrConnectRefused is returned when a manual reconnect did not succeed.
	ErrConnectRefused = errors.New("remote store could not be connected")
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:     http.StatusBadRequest,
	ErrEntityNotCached: http.StatusNotFound,
	ErrConnectRefused:  http.StatusConflict,

	service.ErrEmptyCollection: http.StatusBadRequest,
	service.ErrEmptyEntityID:   http.StatusBadRequest,
	service.ErrInvalidMutation: http.StatusBadRequest,
	service.ErrNotConnected:    http.StatusConflict,
	service.ErrDrainInProgress: http.StatusConflict,

	adapter.ErrBadRequest: http.StatusBadRequest,
	adapter.ErrNotFound:   http.StatusNotFound,
	adapter.ErrConflict:   http.StatusConflict,
}

// statusFromError maps facade errors to statuses. Remote failures without a
// more specific mapping surface as 502 since the agent only relays them.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}

	var directErr *service.DirectWriteError
	if errors.As(err, &directErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
