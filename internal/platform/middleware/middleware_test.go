package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal_error"}`, rr.Body.String())
	assert.Contains(t, buf.String(), "panic recovered")
}

func TestLogger_DoesNotLogHeaders(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/receiver-auth/time-letters?limit=5", nil)
	req.Header.Set("X-Auth-Code", "secret-master-key")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, "/api/receiver-auth/time-letters")
	assert.False(t, strings.Contains(out, "secret-master-key"))
	assert.False(t, strings.Contains(out, "limit=5"))
}

func TestLatency_NilMetricsIsSafe(t *testing.T) {
	handler := Latency(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestContentTypeJSON(t *testing.T) {
	handler := ContentTypeJSON(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	form := httptest.NewRequest(http.MethodPost, "/api/receiver-auth/verify", strings.NewReader("authCode=x"))
	form.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, form)
	assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)

	body := httptest.NewRequest(http.MethodPost, "/api/receiver-auth/verify", strings.NewReader(`{"authCode":"x"}`))
	body.Header.Set("Content-Type", "application/json")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, body)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/receiver-auth/overview", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code, "bodiless requests pass")
}
