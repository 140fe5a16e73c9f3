package sessiontransport

import (
	"errors"
	"time"

	"github.com/dmitrymomot/honeypot/core/cookie"
	"github.com/dmitrymomot/honeypot/core/handler"
	"github.com/dmitrymomot/honeypot/core/session"
	"github.com/dmitrymomot/honeypot/pkg/clientip"
)

// Cookie carries Session.Token in a signed cookie.
type Cookie struct {
	manager *session.Manager
	cookies *cookie.Manager
	name    string
}

// NewCookie creates a cookie-based session transport.
func NewCookie(mgr *session.Manager, cookies *cookie.Manager, name string) *Cookie {
	if name == "" {
		name = DefaultCookieName
	}
	return &Cookie{
		manager: mgr,
		cookies: cookies,
		name:    name,
	}
}

// Load returns the session referenced by the request cookie. A missing,
// tampered, unknown or expired cookie yields a fresh unsaved session.
// Store failures are returned as errors.
func (c *Cookie) Load(ctx handler.Context) (*session.Session, error) {
	r := ctx.Request()

	token, err := c.cookies.GetSigned(r, c.name)
	if err != nil {
		return c.fresh(ctx)
	}

	sess, err := c.manager.GetByToken(ctx, token)
	switch {
	case err == nil:
		return sess, nil
	case errors.Is(err, session.ErrNotFound), errors.Is(err, session.ErrExpired):
		return c.fresh(ctx)
	default:
		return nil, errors.Join(ErrLoadSession, err)
	}
}

// Save persists the session and refreshes the cookie so its max-age tracks
// the server-side expiration.
func (c *Cookie) Save(ctx handler.Context, sess *session.Session) error {
	if sess == nil {
		return nil
	}

	if err := c.manager.Store(ctx, sess); err != nil {
		return err
	}

	until := time.Until(sess.ExpiresAt)
	if until <= 0 {
		return session.ErrExpired
	}

	return c.cookies.SetSigned(ctx.ResponseWriter(), c.name, sess.Token,
		cookie.WithMaxAge(int(until.Seconds())),
		cookie.WithHTTPOnly(true),
	)
}

// Delete removes the session from the store and expires the cookie.
func (c *Cookie) Delete(ctx handler.Context, sess *session.Session) error {
	if sess != nil {
		if err := c.manager.Delete(ctx, sess.ID); err != nil {
			return err
		}
	}
	c.cookies.Delete(ctx.ResponseWriter(), c.name)
	return nil
}

func (c *Cookie) fresh(ctx handler.Context) (*session.Session, error) {
	r := ctx.Request()
	return c.manager.New(session.NewSessionParams{
		IP:        clientip.GetIP(r),
		UserAgent: r.Header.Get("User-Agent"),
	})
}
