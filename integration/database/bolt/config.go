package bolt

import "time"

// Config holds bbolt connection settings.
type Config struct {
	Path        string        `env:"BOLT_PATH" envDefault:"honeypot.db" yaml:"path"`
	OpenTimeout time.Duration `env:"BOLT_OPEN_TIMEOUT" envDefault:"1s" yaml:"open_timeout"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Path:        "honeypot.db",
		OpenTimeout: time.Second,
	}
}
