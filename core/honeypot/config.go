package honeypot

import (
	"log/slog"
	"time"
)

// DefaultFieldLabel tells humans who see the decoy (screen readers, no CSS) to skip it.
const DefaultFieldLabel = "Please do not fill in this field"

// Config provides environment-based configuration for the guard.
type Config struct {
	// MinimumFillDuration is the strict lower bound on time between render and submit.
	MinimumFillDuration time.Duration `env:"HONEYPOT_MIN_FILL_DURATION" envDefault:"10s" yaml:"minimum_fill_duration"`

	// UseTimestamps enables the fill-time check.
	UseTimestamps bool `env:"HONEYPOT_USE_TIMESTAMPS" envDefault:"false" yaml:"use_timestamps"`

	// Secret keys the timestamp field name and signs its value. Optional.
	Secret string `env:"HONEYPOT_SECRET" yaml:"secret"`

	// FieldLabel is rendered next to the decoy input.
	FieldLabel string `env:"HONEYPOT_FIELD_LABEL" envDefault:"Please do not fill in this field" yaml:"field_label"`
}

// DefaultConfig returns the reference policy: 10 seconds, timestamps off.
func DefaultConfig() Config {
	return Config{
		MinimumFillDuration: 10 * time.Second,
		FieldLabel:          DefaultFieldLabel,
	}
}

// Option configures a Guard.
type Option func(*Guard)

// WithMinimumFillDuration sets the minimum fill duration. Negative values are ignored.
func WithMinimumFillDuration(d time.Duration) Option {
	return func(g *Guard) {
		if d >= 0 {
			g.minFill = d
		}
	}
}

// WithTimestamps enables or disables the fill-time check.
func WithTimestamps(enabled bool) Option {
	return func(g *Guard) {
		g.useTimestamps = enabled
	}
}

// WithSecret keys timestamp field names and signs timestamp values.
func WithSecret(secret string) Option {
	return func(g *Guard) {
		g.secret = secret
	}
}

// WithFieldLabel overrides DefaultFieldLabel.
func WithFieldLabel(label string) Option {
	return func(g *Guard) {
		if label != "" {
			g.label = label
		}
	}
}

// WithGenerator replaces the crypto/rand token generator.
func WithGenerator(gen Generator) Option {
	return func(g *Guard) {
		if gen != nil {
			g.generator = gen
		}
	}
}

// WithLogger sets the logger receiving rejection warnings.
func WithLogger(log *slog.Logger) Option {
	return func(g *Guard) {
		if log != nil {
			g.log = log
		}
	}
}

// WithClock overrides time.Now. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Guard) {
		if now != nil {
			g.now = now
		}
	}
}

// NewFromConfig creates a Guard from configuration.
// Options are applied after the config values and take precedence.
func NewFromConfig(cfg Config, store TokenStore, opts ...Option) (*Guard, error) {
	configOpts := []Option{
		WithTimestamps(cfg.UseTimestamps),
		WithSecret(cfg.Secret),
		WithFieldLabel(cfg.FieldLabel),
	}
	if cfg.MinimumFillDuration > 0 {
		configOpts = append(configOpts, WithMinimumFillDuration(cfg.MinimumFillDuration))
	}

	return New(store, append(configOpts, opts...)...)
}
