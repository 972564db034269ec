package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-accounts-service/models"
)

var (
	ErrBadRequest           = errors.New("bad request")
	ErrNotFound             = errors.New("not found")
	ErrMethodNotAllowed     = errors.New("method not allowed")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInternalServerError  = errors.New("internal server error")
	ErrUnexpectedStatus     = errors.New("unexpected status")
)

// APIError is returned for every non-2xx response.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Body is the decoded error document. When the server did not answer
	// with one, Status and Error come from the HTTP status and Message holds
	// the trimmed raw body.
	Body models.ErrorResponse

	kind error
}

func (e *APIError) Error() string {
	if e.Body.Message != "" {
		return fmt.Sprintf("%s (%d): %s", e.kind, e.StatusCode, e.Body.Message)
	}
	return fmt.Sprintf("%s (%d)", e.kind, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.kind
}
