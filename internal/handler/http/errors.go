// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors reported by the document handlers before the service layer
// is reached. Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrHijackNotSupported is returned by the logging response writer when
	// the wrapped writer cannot hand over its connection.
	ErrHijackNotSupported = errors.New("response writer does not support hijacking")
)
