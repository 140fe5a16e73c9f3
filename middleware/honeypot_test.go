package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/honeypot/core/handler"
	"github.com/dmitrymomot/honeypot/core/honeypot"
	"github.com/dmitrymomot/honeypot/core/response"
	"github.com/dmitrymomot/honeypot/core/session"
	"github.com/dmitrymomot/honeypot/middleware"
)

// stickyTransport hands out the same session on every request.
type stickyTransport struct {
	sess *session.Session
}

func (s stickyTransport) Load(handler.Context) (*session.Session, error) { return s.sess, nil }
func (s stickyTransport) Save(handler.Context, *session.Session) error   { return nil }

type failingStore struct{ err error }

func (f failingStore) Token(context.Context, string) (string, error)  { return "", f.err }
func (f failingStore) SetToken(context.Context, string, string) error { return f.err }
func (f failingStore) CSSClass(context.Context) (string, error)       { return "", f.err }
func (f failingStore) SetCSSClass(context.Context, string) error      { return f.err }

// contactApp renders the form on GET and counts accepted submissions.
type contactApp struct {
	mu       sync.Mutex
	fields   honeypot.Fields
	accepted int
}

func (a *contactApp) handle(c ctx) handler.Response {
	if c.Request().Method == http.MethodGet {
		guard, ok := middleware.GetHoneypot(c)
		if !ok {
			return response.Error(errors.New("no guard"))
		}
		f, err := guard.Initialize(c, c.Request().URL.Path)
		if err != nil {
			return response.Error(err)
		}
		a.mu.Lock()
		a.fields = f
		a.mu.Unlock()
		return response.String("form")
	}

	a.mu.Lock()
	a.accepted++
	a.mu.Unlock()
	return response.String("thanks")
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHoneypot(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T, cfg middleware.HoneypotConfig[ctx]) (*contactApp, []handler.Middleware[ctx]) {
		t.Helper()

		app := &contactApp{}
		mws := []handler.Middleware[ctx]{
			middleware.Session[ctx](stickyTransport{sess: newSession(t)}),
			middleware.HoneypotWithConfig(cfg),
		}

		w := serve(app.handle, httptest.NewRequest(http.MethodGet, "/contact", nil), mws...)
		require.Equal(t, http.StatusOK, w.Code)
		require.NotEmpty(t, app.fields.Name)
		return app, mws
	}

	t.Run("human_submission_reaches_handler", func(t *testing.T) {
		t.Parallel()

		app, mws := setup(t, middleware.HoneypotConfig[ctx]{})

		w := serve(app.handle, postForm("/contact", url.Values{
			"message":       {"hello"},
			app.fields.Name: {""},
		}), mws...)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "thanks", w.Body.String())
		assert.Equal(t, 1, app.accepted)
	})

	t.Run("filled_decoy_is_dropped_silently", func(t *testing.T) {
		t.Parallel()

		app, mws := setup(t, middleware.HoneypotConfig[ctx]{})

		w := serve(app.handle, postForm("/contact?ref=home", url.Values{
			"message":       {"buy now"},
			app.fields.Name: {"http://spam.example"},
		}), mws...)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/contact?ref=home", w.Header().Get("Location"))
		assert.Zero(t, app.accepted)
	})

	t.Run("missing_decoy_is_rejected", func(t *testing.T) {
		t.Parallel()

		app, mws := setup(t, middleware.HoneypotConfig[ctx]{})

		w := serve(app.handle, postForm("/contact", url.Values{"message": {"hi"}}), mws...)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Zero(t, app.accepted)
	})

	t.Run("custom_bot_response", func(t *testing.T) {
		t.Parallel()

		app, mws := setup(t, middleware.HoneypotConfig[ctx]{
			BotResponse: func(c ctx) handler.Response {
				return response.StringWithStatus("nope", http.StatusUnprocessableEntity)
			},
		})

		w := serve(app.handle, postForm("/contact", url.Values{app.fields.Name: {"x"}}), mws...)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("too_fast_with_timestamps", func(t *testing.T) {
		t.Parallel()

		now := time.Unix(1_700_000_000, 0)
		var mu sync.Mutex
		clock := func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			return now
		}

		cfg := honeypot.DefaultConfig()
		cfg.UseTimestamps = true
		app, mws := setup(t, middleware.HoneypotConfig[ctx]{
			Config:  cfg,
			Options: []honeypot.Option{honeypot.WithClock(clock)},
		})
		require.True(t, app.fields.HasTimestamp())

		submission := url.Values{
			app.fields.Name:          {""},
			app.fields.TimestampName: {app.fields.TimestampValue},
		}

		mu.Lock()
		now = now.Add(3 * time.Second)
		mu.Unlock()
		w := serve(app.handle, postForm("/contact", submission), mws...)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Zero(t, app.accepted)

		mu.Lock()
		now = now.Add(30 * time.Second)
		mu.Unlock()
		w = serve(app.handle, postForm("/contact", submission), mws...)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, app.accepted)
	})

	t.Run("safe_methods_are_not_validated", func(t *testing.T) {
		t.Parallel()

		app, mws := setup(t, middleware.HoneypotConfig[ctx]{})

		w := serve(app.handle, httptest.NewRequest(http.MethodGet, "/contact?x=1", nil), mws...)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("form_name_hook", func(t *testing.T) {
		t.Parallel()

		app, mws := setup(t, middleware.HoneypotConfig[ctx]{
			FormName: func(c ctx) string { return "/contact" },
		})

		w := serve(app.handle, postForm("/contact/submit", url.Values{app.fields.Name: {""}}), mws...)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHoneypotStoreFailures(t *testing.T) {
	t.Parallel()

	t.Run("no_session", func(t *testing.T) {
		t.Parallel()

		called := false
		w := serve(func(c ctx) handler.Response {
			called = true
			return response.String("ok")
		}, postForm("/contact", url.Values{}), middleware.Honeypot[ctx](honeypot.DefaultConfig()))

		assert.False(t, called)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("backend_error_is_not_a_rejection", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("redis: connection refused")
		var handled error
		w := serve(ok, postForm("/contact", url.Values{"hp_x": {""}}), middleware.HoneypotWithConfig(middleware.HoneypotConfig[ctx]{
			Store: func(ctx) (honeypot.TokenStore, error) { return failingStore{err: boom}, nil },
			ErrorHandler: func(c ctx, err error) handler.Response {
				handled = err
				return response.StringWithStatus("try later", http.StatusServiceUnavailable)
			},
		}))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.ErrorIs(t, handled, honeypot.ErrStoreUnavailable)
		assert.ErrorIs(t, handled, boom)
	})
}
