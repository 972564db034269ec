package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-accounts-service/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:           ErrBadRequest,
	http.StatusNotFound:             ErrNotFound,
	http.StatusMethodNotAllowed:     ErrMethodNotAllowed,
	http.StatusUnsupportedMediaType: ErrUnsupportedMediaType,
	http.StatusInternalServerError:  ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode(), kind: ErrUnexpectedStatus}
	if kind, ok := statusErrors[resp.StatusCode()]; ok {
		apiErr.kind = kind
	}

	if body, ok := resp.Error().(*models.ErrorResponse); ok && body != nil && body.Status != 0 {
		apiErr.Body = *body
		return apiErr
	}

	// resty only decodes JSON bodies; fall back to the raw payload
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Status != 0 {
		apiErr.Body = body
		return apiErr
	}

	apiErr.Body = models.ErrorResponse{
		Status:  resp.StatusCode(),
		Error:   http.StatusText(resp.StatusCode()),
		Message: strings.TrimSpace(string(resp.Body())),
	}
	return apiErr
}
