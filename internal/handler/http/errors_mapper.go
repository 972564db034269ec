package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-accounts-service/internal/logger"
	"github.com/MKhiriev/go-accounts-service/internal/service"
	"github.com/MKhiriev/go-accounts-service/internal/store"
	"github.com/MKhiriev/go-accounts-service/internal/utils"
	"github.com/MKhiriev/go-accounts-service/internal/validators"
	"github.com/MKhiriev/go-accounts-service/models"
)

// errorStatuses is checked in order; the first sentinel found in the error
// chain selects the status and the public message.
var errorStatuses = []struct {
	target error
	status int
}{
	{ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
	{ErrRouteNotFound, http.StatusNotFound},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed},
	{ErrPanicRecovered, http.StatusInternalServerError},
	{ErrRequestTimeout, http.StatusGatewayTimeout},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{validators.ErrInvalidAccount, http.StatusBadRequest},
	{service.ErrAccountNotFound, http.StatusNotFound},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},

	{store.ErrAccountNotFound, http.StatusNotFound},
	{store.ErrConstraintViolation, http.StatusBadRequest},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
	{store.ErrDatabaseUnavailable, http.StatusInternalServerError},
}

// matchError returns the first sentinel of errorStatuses found in err.
func matchError(err error) (error, int) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.target, e.status
		}
	}
	return nil, http.StatusInternalServerError
}

// writeError renders err as a models.ErrorResponse. Server side faults are
// logged and answered with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	target, status := matchError(err)

	body := models.ErrorResponse{
		Status: status,
		Error:  http.StatusText(status),
	}

	var validationErr *validators.ValidationError
	switch {
	case status >= http.StatusInternalServerError:
		log.Err(err).Str("func", "writeError").Int("status", status).Msg("request failed")
		body.Message = "internal server error"
	case errors.As(err, &validationErr):
		body.Message = validators.ErrInvalidAccount.Error()
		body.Fields = validationErr.Fields
	case target != nil:
		body.Message = target.Error()
	default:
		body.Message = http.StatusText(status)
	}

	if _, writeErr := utils.WriteJSON(w, body, status); writeErr != nil {
		log.Err(writeErr).Str("func", "writeError").Msg("error writing error response")
	}
}
