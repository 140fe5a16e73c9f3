package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/honeypot/core/handler"
	"github.com/dmitrymomot/honeypot/core/response"
	"github.com/dmitrymomot/honeypot/middleware"
)

func captureLogs() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestLogging(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		log, buf := captureLogs()
		req := httptest.NewRequest(http.MethodGet, "/contact", nil)
		req.RemoteAddr = "198.51.100.4:1000"

		serve(ok, req,
			middleware.RequestIDWithConfig[ctx](middleware.RequestIDConfig{Generator: func() string { return "req-1" }}),
			middleware.ClientIP[ctx](),
			middleware.Logging[ctx](log),
		)

		rec := decodeRecord(t, buf)
		assert.Equal(t, "INFO", rec["level"])
		assert.Equal(t, "HTTP request completed", rec["msg"])
		assert.Equal(t, "GET", rec["method"])
		assert.Equal(t, "/contact", rec["path"])
		assert.EqualValues(t, http.StatusOK, rec["status_code"])
		assert.Equal(t, "req-1", rec["request_id"])
		assert.Equal(t, "198.51.100.4", rec["client_ip"])
	})

	t.Run("client_error_logs_warn", func(t *testing.T) {
		t.Parallel()

		log, buf := captureLogs()
		serve(func(c ctx) handler.Response {
			return response.StringWithStatus("nope", http.StatusNotFound)
		}, httptest.NewRequest(http.MethodGet, "/", nil), middleware.Logging[ctx](log))

		rec := decodeRecord(t, buf)
		assert.Equal(t, "WARN", rec["level"])
		assert.EqualValues(t, http.StatusNotFound, rec["status_code"])
	})

	t.Run("handler_error_logs_error", func(t *testing.T) {
		t.Parallel()

		log, buf := captureLogs()
		serve(func(c ctx) handler.Response {
			return response.Error(errors.New("boom"))
		}, httptest.NewRequest(http.MethodGet, "/", nil), middleware.Logging[ctx](log))

		rec := decodeRecord(t, buf)
		assert.Equal(t, "ERROR", rec["level"])
		assert.Equal(t, "boom", rec["error"])
	})
}
