// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself, before a request
// reaches the service layer. Callers can match against them with [errors.Is].
var (
	// ErrUnsupportedMediaType is returned when a request carrying a body
	// does not declare an application/json Content-Type.
	ErrUnsupportedMediaType = errors.New("content type must be application/json")

	// ErrRouteNotFound is returned for paths that match no route.
	ErrRouteNotFound = errors.New("requested resource was not found")

	// ErrMethodNotAllowed is returned when the path exists but does not
	// accept the request method.
	ErrMethodNotAllowed = errors.New("method is not allowed for the requested resource")

	// ErrPanicRecovered wraps the value of a recovered handler panic.
	ErrPanicRecovered = errors.New("handler panicked")

	// ErrRequestTimeout is returned when a request outlives the configured
	// request timeout.
	ErrRequestTimeout = errors.New("request timed out")
)
