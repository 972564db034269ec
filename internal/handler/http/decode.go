package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-accounts-service/internal/service"
	"github.com/MKhiriev/go-accounts-service/internal/validators"
	"github.com/MKhiriev/go-accounts-service/models"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

const fieldBody = "body"

// decodeAccountRequest reads a single JSON object from the request body.
// Every decoding problem is reported as a *validators.ValidationError.
func decodeAccountRequest(w http.ResponseWriter, r *http.Request) (models.AccountRequest, error) {
	var req models.AccountRequest

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&req); err != nil {
		return models.AccountRequest{}, decodeError(err)
	}
	if decoder.More() {
		return models.AccountRequest{}, validators.NewFieldError(fieldBody, "request body must contain a single JSON object")
	}

	return req, nil
}

func decodeError(err error) error {
	var (
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
		maxBytesErr *http.MaxBytesError
	)

	switch {
	case errors.Is(err, io.EOF):
		return validators.NewFieldError(fieldBody, "request body is empty")
	case errors.Is(err, io.ErrUnexpectedEOF):
		return validators.NewFieldError(fieldBody, "request body is not valid JSON")
	case errors.As(err, &syntaxErr):
		return validators.NewFieldError(fieldBody, fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset))
	case errors.As(err, &maxBytesErr):
		return validators.NewFieldError(fieldBody, "request body is too large")
	case errors.Is(err, models.ErrInvalidDate):
		return validators.NewFieldError(validators.FieldDateJoined, err.Error())
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return validators.NewFieldError(fieldBody, fmt.Sprintf("expected a JSON object, got %s", typeErr.Value))
		}
		return validators.NewFieldError(typeErr.Field, fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type))
	default:
		return validators.NewFieldError(fieldBody, "request body is not valid JSON")
	}
}

// accountIDFromURL parses the {id} route parameter. The route pattern only
// admits digits, so a failure here means the value overflows int64 and no
// such account can exist.
func accountIDFromURL(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", service.ErrAccountNotFound, service.ErrInvalidAccountID)
	}
	return id, nil
}
