package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/honeypot/core/handler"
	"github.com/dmitrymomot/honeypot/core/response"
	"github.com/dmitrymomot/honeypot/middleware"
)

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "remote_addr", remote: "192.168.1.100:54321", want: "192.168.1.100"},
		{name: "cloudflare", headers: map[string]string{"CF-Connecting-IP": "203.0.113.7"}, remote: "10.0.0.1:1", want: "203.0.113.7"},
		{name: "forwarded_for_leftmost", headers: map[string]string{"X-Forwarded-For": "198.51.100.2, 10.0.0.1"}, remote: "10.0.0.1:1", want: "198.51.100.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			var got string
			w := serve(func(c ctx) handler.Response {
				got, _ = middleware.GetClientIP(c)
				return response.String("ok")
			}, req, middleware.ClientIP[ctx]())

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, w.Header().Get("X-Client-IP"))
		})
	}
}

func TestClientIPWithConfig(t *testing.T) {
	t.Parallel()

	t.Run("response_header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.5:12345"

		w := serve(ok, req, middleware.ClientIPWithConfig[ctx](middleware.ClientIPConfig{
			ResponseHeader: "X-Client-IP",
		}))

		assert.Equal(t, "10.0.0.5", w.Header().Get("X-Client-IP"))
	})

	t.Run("validate_rejects", func(t *testing.T) {
		t.Parallel()

		called := false
		w := serve(func(c ctx) handler.Response {
			called = true
			return response.String("ok")
		}, httptest.NewRequest(http.MethodGet, "/", nil), middleware.ClientIPWithConfig[ctx](middleware.ClientIPConfig{
			ValidateFunc: func(handler.Context, string) error { return errors.New("blocked") },
		}))

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("custom_resolver", func(t *testing.T) {
		t.Parallel()

		var got string
		serve(func(c ctx) handler.Response {
			got, _ = middleware.GetClientIP(c)
			return response.String("ok")
		}, httptest.NewRequest(http.MethodGet, "/", nil), middleware.ClientIPWithConfig[ctx](middleware.ClientIPConfig{
			Resolver: func(*http.Request) string { return "127.0.0.9" },
		}))

		assert.Equal(t, "127.0.0.9", got)
	})

	t.Run("skip", func(t *testing.T) {
		t.Parallel()

		var found bool
		serve(func(c ctx) handler.Response {
			_, found = middleware.GetClientIP(c)
			return response.String("ok")
		}, httptest.NewRequest(http.MethodGet, "/", nil), middleware.ClientIPWithConfig[ctx](middleware.ClientIPConfig{
			Skip: func(handler.Context) bool { return true },
		}))

		assert.False(t, found)
	})
}
