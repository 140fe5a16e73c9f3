package session

import (
	"time"
)

// Config holds session manager configuration.
type Config struct {
	// TTL is the session time-to-live (idle timeout).
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h" yaml:"ttl"`

	// TouchInterval is the minimum time between activity updates (0 = every request).
	TouchInterval time.Duration `env:"SESSION_TOUCH_INTERVAL" envDefault:"5m" yaml:"touch_interval"`
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		TTL:           24 * time.Hour,
		TouchInterval: 5 * time.Minute,
	}
}
