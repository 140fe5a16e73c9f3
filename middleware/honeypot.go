package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"slices"

	"github.com/dmitrymomot/honeypot/core/handler"
	"github.com/dmitrymomot/honeypot/core/honeypot"
	"github.com/dmitrymomot/honeypot/core/logger"
	"github.com/dmitrymomot/honeypot/core/response"
)

type honeypotKey struct{}

// HoneypotConfig configures the honeypot middleware.
type HoneypotConfig[C handler.Context] struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx C) bool

	// Config holds the guard settings (default: honeypot.DefaultConfig())
	Config honeypot.Config

	// Options are applied after Config, e.g. honeypot.WithGenerator
	Options []honeypot.Option

	// Store resolves the token store of the current visitor
	// (default: values of the session set by the Session middleware)
	Store func(ctx C) (honeypot.TokenStore, error)

	// FormName identifies the form a request renders or submits (default: URL path)
	FormName func(ctx C) string

	// Methods that carry submissions to validate (default: POST, PUT, PATCH)
	Methods []string

	// Logger receives rejection events (default: slog with io.Discard)
	Logger *slog.Logger

	// BotResponse answers a rejected submission without running the handler
	// (default: 303 See Other back to the form)
	BotResponse func(ctx C) handler.Response

	// ErrorHandler builds the response when the store fails
	// (default: 503 Service Unavailable)
	ErrorHandler func(ctx C, err error) handler.Response
}

// Honeypot protects form submissions with the default configuration.
// It must run after the Session middleware.
func Honeypot[C handler.Context](cfg honeypot.Config) handler.Middleware[C] {
	return HoneypotWithConfig(HoneypotConfig[C]{Config: cfg})
}

// HoneypotWithConfig creates a honeypot middleware with custom configuration.
//
// Every request gets a Guard bound to the visitor's store; handlers fetch it
// with GetHoneypot to render fields. Submissions using one of Methods are
// validated before the handler runs. Bots get BotResponse and never reach
// the handler; store failures go to ErrorHandler.
func HoneypotWithConfig[C handler.Context](cfg HoneypotConfig[C]) handler.Middleware[C] {
	if cfg.Config == (honeypot.Config{}) {
		cfg.Config = honeypot.DefaultConfig()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Store == nil {
		cfg.Store = func(ctx C) (honeypot.TokenStore, error) {
			sess, ok := GetSession(ctx)
			if !ok {
				return nil, honeypot.ErrNoStore
			}
			return honeypot.NewSessionStore(sess), nil
		}
	}
	if cfg.FormName == nil {
		cfg.FormName = func(ctx C) string {
			return ctx.Request().URL.Path
		}
	}
	if len(cfg.Methods) == 0 {
		cfg.Methods = []string{http.MethodPost, http.MethodPut, http.MethodPatch}
	}
	if cfg.BotResponse == nil {
		cfg.BotResponse = func(ctx C) handler.Response {
			return response.RedirectSeeOther(ctx.Request().URL.RequestURI())
		}
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(ctx C, err error) handler.Response {
			return response.Error(response.ErrServiceUnavailable.WithError(err))
		}
	}

	opts := append([]honeypot.Option{honeypot.WithLogger(cfg.Logger)}, cfg.Options...)

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			store, err := cfg.Store(ctx)
			if err != nil {
				return cfg.ErrorHandler(ctx, err)
			}

			guard, err := honeypot.NewFromConfig(cfg.Config, store, opts...)
			if err != nil {
				return cfg.ErrorHandler(ctx, err)
			}

			ctx.SetValue(honeypotKey{}, guard)

			if !slices.Contains(cfg.Methods, ctx.Request().Method) {
				return next(ctx)
			}

			form := cfg.FormName(ctx)
			decision, err := guard.ValidateRequest(ctx.Request(), form)
			if err != nil {
				cfg.Logger.ErrorContext(ctx, "honeypot middleware: validation failed",
					logger.Component("honeypot"),
					logger.Form(form),
					logger.Error(err),
				)
				return cfg.ErrorHandler(ctx, err)
			}

			if decision != honeypot.Accept {
				return cfg.BotResponse(ctx)
			}

			return next(ctx)
		}
	}
}

// GetHoneypot returns the Guard set up by the Honeypot middleware.
func GetHoneypot(ctx context.Context) (*honeypot.Guard, bool) {
	g, ok := ctx.Value(honeypotKey{}).(*honeypot.Guard)
	return g, ok && g != nil
}
