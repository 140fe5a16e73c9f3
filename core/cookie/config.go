package cookie

import (
	"net/http"
	"strings"
)

// Config provides environment-based configuration for the cookie manager.
type Config struct {
	// Secrets is a comma-separated list; the first one signs.
	Secrets string `env:"COOKIE_SECRETS" envDefault:"" yaml:"secrets"`

	Path   string `env:"COOKIE_PATH" envDefault:"/" yaml:"path"`
	Domain string `env:"COOKIE_DOMAIN" envDefault:"" yaml:"domain"`
	Secure bool   `env:"COOKIE_SECURE" envDefault:"false" yaml:"secure"`

	// SameSite is one of "lax", "strict" or "none".
	SameSite string `env:"COOKIE_SAME_SITE" envDefault:"lax" yaml:"same_site"`
}

// DefaultConfig returns a Config with secure defaults.
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		SameSite: "lax",
	}
}

// NewFromConfig creates a Manager from configuration. Options in opts win
// over configured values.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	configOpts := []Option{WithSecure(cfg.Secure), WithSameSite(parseSameSite(cfg.SameSite))}
	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}

	return New(cfg.parseSecrets(), append(configOpts, opts...)...)
}

func (c Config) parseSecrets() []string {
	var secrets []string
	for _, s := range strings.Split(c.Secrets, ",") {
		if s = strings.TrimSpace(s); s != "" {
			secrets = append(secrets, s)
		}
	}
	return secrets
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
