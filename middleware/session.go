package middleware

import (
	"context"
	"io"
	"log/slog"

	"github.com/dmitrymomot/honeypot/core/handler"
	"github.com/dmitrymomot/honeypot/core/logger"
	"github.com/dmitrymomot/honeypot/core/response"
	"github.com/dmitrymomot/honeypot/core/session"
)

type sessionKey struct{}

// SessionTransport loads and saves the session of a request.
// sessiontransport.Cookie implements it.
type SessionTransport interface {
	Load(ctx handler.Context) (*session.Session, error)
	Save(ctx handler.Context, sess *session.Session) error
}

// SessionConfig configures the session middleware.
type SessionConfig[C handler.Context] struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx C) bool

	// Transport loads the session before the handler and saves it after (required)
	Transport SessionTransport

	// Logger for structured logging (default: slog with io.Discard)
	Logger *slog.Logger

	// ErrorHandler builds the response for load and save failures
	// (default: 503 Service Unavailable)
	ErrorHandler func(ctx C, err error) handler.Response
}

// Session loads the session from transport, stores it in the request
// context and saves it once the handler returns.
//
// Handlers must finish mutating the session before returning their
// Response; changes made while rendering are not saved.
func Session[C handler.Context](transport SessionTransport) handler.Middleware[C] {
	return SessionWithConfig(SessionConfig[C]{Transport: transport})
}

// SessionWithConfig creates a session middleware with custom configuration.
func SessionWithConfig[C handler.Context](cfg SessionConfig[C]) handler.Middleware[C] {
	if cfg.Transport == nil {
		panic("session middleware: transport is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(ctx C, err error) handler.Response {
			return response.Error(response.ErrServiceUnavailable.WithError(err))
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			sess, err := cfg.Transport.Load(ctx)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return response.Error(ctxErr)
				}
				cfg.Logger.ErrorContext(ctx, "session middleware: failed to load session",
					logger.Component("session"),
					logger.Error(err),
				)
				return cfg.ErrorHandler(ctx, err)
			}

			ctx.SetValue(sessionKey{}, sess)

			resp := next(ctx)

			if err := cfg.Transport.Save(ctx, sess); err != nil {
				cfg.Logger.ErrorContext(ctx, "session middleware: failed to save session",
					logger.Component("session"),
					logger.SessionID(sess.ID.String()),
					logger.Error(err),
				)
				return cfg.ErrorHandler(ctx, err)
			}

			return resp
		}
	}
}

// GetSession returns the session stored by the Session middleware.
func GetSession(ctx context.Context) (*session.Session, bool) {
	if ctx == nil {
		return nil, false
	}
	sess, ok := ctx.Value(sessionKey{}).(*session.Session)
	return sess, ok && sess != nil
}

// MustGetSession returns the session or panics if the Session middleware did not run.
func MustGetSession(ctx context.Context) *session.Session {
	sess, ok := GetSession(ctx)
	if !ok {
		panic("session not found in context")
	}
	return sess
}
