// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound account payloads before they reach the
// service layer.
//
// Rules are declared as `validate` struct tags on the request models and
// enforced by go-playground/validator. Failures are reported as a single
// [ValidationError] that maps JSON field names to human readable messages,
// so the HTTP layer can return every problem in one 400 response.
package validators

import "context"

// Validator validates a request value and reports every rejected field at
// once.
type Validator interface {
	Validate(ctx context.Context, v any) error
}
