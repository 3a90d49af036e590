package adapter

import "errors"

var (
	// ErrRemoteDisabled is returned by every [RemoteStore] call made while
	// the adapter is disabled.
	ErrRemoteDisabled = errors.New("remote store is disabled")

	// ErrUnreachable wraps transport failures where no response was received.
	ErrUnreachable = errors.New("remote store unreachable")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)
