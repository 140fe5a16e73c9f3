package cmd

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/honeypot/core/handler"
	"github.com/dmitrymomot/honeypot/core/health"
	"github.com/dmitrymomot/honeypot/core/honeypot"
	"github.com/dmitrymomot/honeypot/core/logger"
	"github.com/dmitrymomot/honeypot/core/response"
	"github.com/dmitrymomot/honeypot/middleware"
)

const contactForm = "contact"

type reqCtx = *handler.RequestContext

// tokenStoreFunc opens the honeypot token store of one session.
type tokenStoreFunc func(sessionID string) (honeypot.TokenStore, error)

// app holds the dependencies of the demo HTTP handlers.
type app struct {
	log       *slog.Logger
	transport middleware.SessionTransport
	honeypot  honeypot.Config
	maxBody   int64
	checks    []health.Check

	// tokens overrides where honeypot tokens live. Nil keeps them in the
	// session values.
	tokens tokenStoreFunc
}

// contactPage is the view model of the contact form.
type contactPage struct {
	Style  string
	Fields honeypot.Fields
	Name   string
	Error  string
}

func newContext(w http.ResponseWriter, r *http.Request) reqCtx {
	ctx := handler.NewContext(w, r)
	if rc := chi.RouteContext(r.Context()); rc != nil {
		for i, key := range rc.URLParams.Keys {
			ctx.SetParam(key, rc.URLParams.Values[i])
		}
	}
	return ctx
}

func (a *app) routes() http.Handler {
	mws := []handler.Middleware[reqCtx]{
		middleware.RequestID[reqCtx](),
		middleware.ClientIP[reqCtx](),
		middleware.Logging[reqCtx](a.log),
		middleware.BodyLimit[reqCtx](a.maxBody),
		middleware.SessionWithConfig(middleware.SessionConfig[reqCtx]{
			Transport: a.transport,
			Logger:    a.log,
		}),
		middleware.HoneypotWithConfig(middleware.HoneypotConfig[reqCtx]{
			Config:   a.honeypot,
			Logger:   a.log,
			Store:    a.tokenStore(),
			FormName: func(reqCtx) string { return contactForm },
		}),
	}
	adapt := func(h handler.HandlerFunc[reqCtx]) http.Handler {
		return handler.Adapt(handler.Chain(h, mws...), newContext, response.ErrorHandler[reqCtx])
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	plain := func(h handler.HandlerFunc[reqCtx]) http.Handler {
		return handler.Adapt(h, newContext, response.ErrorHandler[reqCtx])
	}
	r.Method(http.MethodGet, "/health/live", plain(health.Liveness[reqCtx]))
	r.Method(http.MethodGet, "/health/ready", plain(health.Readiness[reqCtx](a.log, a.checks...)))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/contact", http.StatusFound)
	})
	r.Method(http.MethodGet, "/contact", adapt(a.showContact))
	r.Method(http.MethodPost, "/contact", adapt(a.submitContact))

	return r
}

// tokenStore returns nil when tokens stay in the session, which makes the
// middleware fall back to its default.
func (a *app) tokenStore() func(reqCtx) (honeypot.TokenStore, error) {
	if a.tokens == nil {
		return nil
	}
	return func(ctx reqCtx) (honeypot.TokenStore, error) {
		sess, ok := middleware.GetSession(ctx)
		if !ok {
			return nil, honeypot.ErrNoStore
		}
		return a.tokens(sess.ID.String())
	}
}

func (a *app) renderContact(ctx reqCtx, page contactPage, status int) handler.Response {
	guard, ok := middleware.GetHoneypot(ctx)
	if !ok {
		return response.Error(response.ErrInternalServerError)
	}

	fields, err := guard.Initialize(ctx, contactForm)
	if err != nil {
		return response.Error(response.ErrServiceUnavailable.WithError(err))
	}
	style, err := guard.Style(ctx)
	if err != nil {
		return response.Error(response.ErrServiceUnavailable.WithError(err))
	}

	page.Fields = fields
	page.Style = style
	return response.TemplWithStatus(contactView(page), status)
}

func (a *app) showContact(ctx reqCtx) handler.Response {
	return a.renderContact(ctx, contactPage{}, http.StatusOK)
}

// submitContact only runs for submissions the honeypot middleware accepted.
func (a *app) submitContact(ctx reqCtx) handler.Response {
	r := ctx.Request()
	name := strings.TrimSpace(r.PostFormValue("name"))
	message := strings.TrimSpace(r.PostFormValue("message"))

	if message == "" {
		return a.renderContact(ctx, contactPage{Name: name, Error: "Please enter a message."}, http.StatusUnprocessableEntity)
	}

	guard, ok := middleware.GetHoneypot(ctx)
	if !ok {
		return response.Error(response.ErrInternalServerError)
	}
	// A replay of the same form body must not pass again.
	if _, err := guard.Rotate(ctx, contactForm); err != nil {
		return response.Error(response.ErrServiceUnavailable.WithError(err))
	}

	a.log.InfoContext(ctx, "contact message received",
		logger.Component("contact"),
		logger.Form(contactForm),
		slog.String("name", name),
		slog.Int("message_length", len(message)),
	)

	if name == "" {
		name = "there"
	}
	return response.Templ(thanksView(name))
}
