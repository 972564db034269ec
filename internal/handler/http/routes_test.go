package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-accounts-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoutes_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"OK"}`, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assertSecurityHeaders(t, rr)
}

func TestRoutes_Index(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetServiceInfo(gomock.Any()).Return(models.ServiceInfo{
		Name:    "Account REST API Service",
		Version: "1.0",
		Paths:   "/accounts",
	})

	rr := doRequest(t, router, http.MethodGet, "/", nil, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"name":"Account REST API Service","version":"1.0","paths":"/accounts"}`, rr.Body.String())
	assertSecurityHeaders(t, rr)
}

func TestRoutes_UnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/nope", nil, "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	body := decodeErrorBody(t, rr)
	assert.Equal(t, http.StatusNotFound, body.Status)
	assert.Equal(t, "Not Found", body.Error)
	assertSecurityHeaders(t, rr)
}

func TestRoutes_NonNumericIDIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rr := doRequest(t, router, method, "/accounts/abc", nil, "application/json")
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		method, path, allow string
	}{
		{http.MethodPatch, "/accounts/1", "GET, PUT, DELETE"},
		{http.MethodDelete, "/accounts", "GET, POST"},
		{http.MethodPost, "/health", "GET"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := doRequest(t, router, tt.method, tt.path, nil, "")

			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
			assert.Equal(t, tt.allow, rr.Header().Get("Allow"))

			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, "Method Not Allowed", body.Error)
			assertSecurityHeaders(t, rr)
		})
	}
}

func TestRoutes_PanicIsRecovered(t *testing.T) {
	router, m := newTestRouter(t)
	m.accounts.EXPECT().ListAccounts(gomock.Any()).DoAndReturn(
		func(any) ([]models.Account, error) { panic("boom") },
	)

	rr := doRequest(t, router, http.MethodGet, "/accounts", nil, "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assertSecurityHeaders(t, rr)

	body := decodeErrorBody(t, rr)
	assert.Equal(t, http.StatusInternalServerError, body.Status)
	assert.Equal(t, "Internal Server Error", body.Error)
	assert.Equal(t, "internal server error", body.Message)
	assert.NotContains(t, rr.Body.String(), "boom")
}

func TestRoutes_RequestTimeoutIsJSON(t *testing.T) {
	router, m := newTestRouterWithTimeout(t, 20*time.Millisecond)
	m.accounts.EXPECT().ListAccounts(gomock.Any()).DoAndReturn(
		func(ctx context.Context) ([]models.Account, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	)

	rr := doRequest(t, router, http.MethodGet, "/accounts", nil, "")

	assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	assertSecurityHeaders(t, rr)
	body := decodeErrorBody(t, rr)
	assert.Equal(t, http.StatusGatewayTimeout, body.Status)
	assert.Equal(t, "Gateway Timeout", body.Error)
}
