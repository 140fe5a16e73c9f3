package sessiontransport

import (
	"github.com/dmitrymomot/honeypot/core/cookie"
	"github.com/dmitrymomot/honeypot/core/session"
)

// DefaultCookieName is used when no cookie name is configured.
const DefaultCookieName = "__session"

// CookieConfig provides environment-based configuration for cookie-based session transport.
type CookieConfig struct {
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"__session" yaml:"cookie_name"`
}

// DefaultCookieConfig returns a CookieConfig with sensible defaults.
func DefaultCookieConfig() CookieConfig {
	return CookieConfig{CookieName: DefaultCookieName}
}

// NewCookieFromConfig creates a cookie-based session transport from configuration.
func NewCookieFromConfig(cfg CookieConfig, mgr *session.Manager, cookies *cookie.Manager) *Cookie {
	return NewCookie(mgr, cookies, cfg.CookieName)
}
