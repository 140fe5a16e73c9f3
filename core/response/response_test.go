package response_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/honeypot/core/handler"
	"github.com/dmitrymomot/honeypot/core/response"
)

func TestStringWithStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		content    string
		status     int
		wantStatus int
	}{
		{name: "created", content: "created", status: http.StatusCreated, wantStatus: http.StatusCreated},
		{name: "zero_status_defaults_to_ok", content: "ok", status: 0, wantStatus: http.StatusOK},
		{name: "empty_body", content: "", status: http.StatusAccepted, wantStatus: http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			err := response.StringWithStatus(tt.content, tt.status)(w, httptest.NewRequest(http.MethodGet, "/", nil))

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.content, w.Body.String())
		})
	}
}

func TestHTML(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	err := response.HTML("<p>hi</p>")(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "<p>hi</p>", w.Body.String())
}

func TestRedirectSeeOther(t *testing.T) {
	t.Parallel()

	t.Run("standard", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		err := response.RedirectSeeOther("/thanks")(w, httptest.NewRequest(http.MethodPost, "/contact", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/thanks", w.Header().Get("Location"))
	})

	t.Run("htmx", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.Header.Set("HX-Request", "true")
		w := httptest.NewRecorder()
		err := response.RedirectSeeOther("/thanks")(w, req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "/thanks", w.Header().Get("HX-Location"))
		assert.Empty(t, w.Header().Get("Location"))
	})

	t.Run("invalid_status_falls_back_to_found", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		err := response.RedirectWithStatus("/x", http.StatusOK)(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, w.Code)
	})
}

func TestTempl(t *testing.T) {
	t.Parallel()

	t.Run("renders_with_request_context", func(t *testing.T) {
		t.Parallel()

		type ctxKey struct{}
		component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := fmt.Fprintf(w, "<h1>%v</h1>", ctx.Value(ctxKey{}))
			return err
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, "hello"))
		w := httptest.NewRecorder()

		err := response.Templ(component)(w, req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "<h1>hello</h1>", w.Body.String())
	})

	t.Run("render_error_is_wrapped", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			return boom
		})

		err := response.TemplWithStatus(component, http.StatusUnprocessableEntity)(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("nil_component", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, response.Templ(nil))
	})
}

type teapotError struct{}

func (teapotError) Error() string   { return "short and stout" }
func (teapotError) StatusCode() int { return http.StatusForbidden }

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "http_error",
			err:        response.ErrBadRequest.WithMessage("invalid form"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid form",
		},
		{
			name:       "status_code_interface",
			err:        fmt.Errorf("wrapped: %w", teapotError{}),
			wantStatus: http.StatusForbidden,
			wantBody:   http.StatusText(http.StatusForbidden),
		},
		{
			name:       "plain_error_hides_cause",
			err:        errors.New("database password is hunter2"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			ctx := handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil))

			response.ErrorHandler(ctx, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestHTTPErrorWithErrorDoesNotMutateBase(t *testing.T) {
	t.Parallel()

	e := response.ErrNotFound.WithError(errors.New("missing row"))

	assert.Equal(t, "missing row", e.Details["cause"])
	assert.Nil(t, response.ErrNotFound.Details)
}
