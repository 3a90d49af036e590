// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote document store and for observing device reachability.
//
// The primary abstraction is [RemoteStore], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteStore]) targeting the reference document store in cmd/server.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrRemoteDisabled] while the adapter
// is switched off).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-site-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteStore defines transport-agnostic communication with the remote
// document store.
type RemoteStore interface {
	// Create stores a new document. id is the client-proposed identifier;
	// the returned id is the one the store assigned, which callers must adopt
	// if it differs.
	Create(ctx context.Context, collection, id string, payload models.Payload) (string, error)

	// Update replaces the payload of an existing document.
	Update(ctx context.Context, collection, id string, payload models.Payload) error

	// Delete removes a document. Deleting a missing document succeeds.
	Delete(ctx context.Context, collection, id string) error

	// List returns the current contents of collection.
	List(ctx context.Context, collection string) ([]models.Entity, error)

	// Enable re-establishes the connection. It fails when the store cannot
	// be reached; the adapter then stays disabled.
	Enable(ctx context.Context) error

	// Disable switches the adapter off. Every call other than Enable fails
	// with [ErrRemoteDisabled] until the adapter is enabled again.
	Disable(ctx context.Context) error

	// Ping checks reachability without changing the enabled state.
	Ping(ctx context.Context) error
}

// DeviceSignal reports whether the device has network access.
type DeviceSignal interface {
	Online() bool

	// Subscribe registers fn for online/offline transitions and returns a
	// function that removes it.
	Subscribe(fn func(online bool)) (unsubscribe func())
}
