package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-accounts-service/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogging_RecordsAccessLine(t *testing.T) {
	buf := &bytes.Buffer{}
	l := &logger.Logger{Logger: zerolog.New(buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts?x=1", nil)
	req = req.WithContext(l.WithContext(req.Context()))
	rr := httptest.NewRecorder()

	newTestHandler().withLogging(next).ServeHTTP(rr, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	assert.Equal(t, "/accounts?x=1", entry["uri"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.EqualValues(t, http.StatusCreated, entry["status"])
	assert.EqualValues(t, 5, entry["size"])
	assert.Contains(t, entry, "duration")
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	buf := &bytes.Buffer{}
	l := &logger.Logger{Logger: zerolog.New(buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, 0, entry["size"])
}

func TestAccessLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusOK))
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusNoContent))
	assert.Equal(t, zerolog.WarnLevel, accessLogLevel(http.StatusNotFound))
	assert.Equal(t, zerolog.WarnLevel, accessLogLevel(http.StatusUnsupportedMediaType))
	assert.Equal(t, zerolog.ErrorLevel, accessLogLevel(http.StatusInternalServerError))
}

func TestWithLogging_ServerErrorLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	l := &logger.Logger{Logger: zerolog.New(buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
}
