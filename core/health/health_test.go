package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/honeypot/core/handler"
	"github.com/dmitrymomot/honeypot/core/health"
	"github.com/dmitrymomot/honeypot/core/response"
)

type ctx = *handler.RequestContext

func serve(h handler.HandlerFunc[ctx]) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.Adapt(h, handler.NewContext, response.ErrorHandler[ctx]).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	return rec
}

func TestLiveness(t *testing.T) {
	t.Parallel()

	rec := serve(health.Liveness[ctx])
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	ok := health.Check{Name: "ok", Fn: func(context.Context) error { return nil }}

	t.Run("all_pass", func(t *testing.T) {
		t.Parallel()

		rec := serve(health.Readiness[ctx](nil, ok, ok))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("no_checks", func(t *testing.T) {
		t.Parallel()

		rec := serve(health.Readiness[ctx](nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("failure_stops_early", func(t *testing.T) {
		t.Parallel()

		called := false
		down := health.Check{Name: "db", Fn: func(context.Context) error { return errors.New("down") }}
		after := health.Check{Name: "after", Fn: func(context.Context) error { called = true; return nil }}

		rec := serve(health.Readiness[ctx](nil, ok, down, after))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.False(t, called)
	})

	t.Run("check_gets_deadline", func(t *testing.T) {
		t.Parallel()

		var hasDeadline bool
		dep := health.Check{Name: "dep", Fn: func(ctx context.Context) error {
			_, hasDeadline = ctx.Deadline()
			return nil
		}}

		serve(health.Readiness[ctx](nil, dep))
		assert.True(t, hasDeadline)
	})
}
