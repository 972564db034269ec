package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-accounts-service/internal/config"
	"github.com/MKhiriev/go-accounts-service/internal/logger"
	"github.com/MKhiriev/go-accounts-service/internal/mock"
	"github.com/MKhiriev/go-accounts-service/internal/service"
	"github.com/MKhiriev/go-accounts-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler returns a Handler with a nop logger and no services; enough
// for middleware tests that never reach a route handler.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

type testMocks struct {
	accounts *mock.MockAccountService
	appInfo  *mock.MockAppInfoService
}

// newTestRouter builds the full router over mocked services. The account
// mock is wrapped with the real validation decorator so invalid payloads
// never reach it.
func newTestRouter(t *testing.T) (http.Handler, testMocks) {
	t.Helper()
	return newTestRouterWithTimeout(t, 5*time.Second)
}

func newTestRouterWithTimeout(t *testing.T, timeout time.Duration) (http.Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		accounts: mock.NewMockAccountService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		AccountService: service.NewAccountValidationService().Wrap(m.accounts),
		AppInfoService: m.appInfo,
	}

	h := NewHandler(services, config.Server{RequestTimeout: timeout}, config.Security{}, logger.Nop())
	return h.Init(), m
}

func doRequest(t *testing.T, router http.Handler, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

func decodeErrorBody(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}

func assertSecurityHeaders(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()
	want := map[string]string{
		"Access-Control-Allow-Origin": "*",
		"X-Frame-Options":             "SAMEORIGIN",
		"X-Content-Type-Options":      "nosniff",
		"Content-Security-Policy":     "default-src 'self'; object-src 'none'",
		"Referrer-Policy":             "strict-origin-when-cross-origin",
	}
	for k, v := range want {
		assert.Equal(t, v, rr.Header().Get(k), k)
	}
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresSettings(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{RequestTimeout: time.Second}, config.Security{ForceHTTPS: true}, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, time.Second, h.requestTimeout)
	assert.True(t, h.forceHTTPS)
	assert.NotNil(t, h.Init())
}
