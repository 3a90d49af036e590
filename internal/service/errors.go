package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotConnected     = errors.New("remote store is not connected")
	ErrDrainInProgress  = errors.New("drain already in progress")
	ErrInvalidMutation  = errors.New("invalid mutation kind")
	ErrEmptyCollection  = errors.New("collection is required")
	ErrEmptyEntityID    = errors.New("entity id is required")
	ErrInvalidDocument  = errors.New("invalid document")
	ErrDocumentNotFound = errors.New("document not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ConnectivityError describes a failed attempt to switch the remote store
// connection on or off. The monitor logs it and never hands it to callers.
type ConnectivityError struct {
	Op  string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("connectivity %s: %v", e.Op, e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// DirectWriteError is returned when an online write is rejected by the remote
// store. The write is not queued; the caller decides what to do.
type DirectWriteError struct {
	Op         string
	Collection string
	ID         string
	Err        error
}

func (e *DirectWriteError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("direct %s on %s: %v", e.Op, e.Collection, e.Err)
	}
	return fmt.Sprintf("direct %s on %s/%s: %v", e.Op, e.Collection, e.ID, e.Err)
}

func (e *DirectWriteError) Unwrap() error {
	return e.Err
}
