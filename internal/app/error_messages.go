// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// document store and sync agent handlers.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies in place of internal error details.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgStoreUnavailable is returned when the persistence backend could not
	// be reached. The request may be retried.
	MsgStoreUnavailable = "document store is temporarily unavailable"
)
