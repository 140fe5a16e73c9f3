// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file on first use and uses caarlos0/env to parse
// environment variables into struct fields:
//
//	import "github.com/dmitrymomot/honeypot/core/config"
//
//	type HoneypotConfig struct {
//		MinimumFillDuration time.Duration `env:"HONEYPOT_MIN_FILL_DURATION" envDefault:"10s"`
//		UseTimestamps       bool          `env:"HONEYPOT_USE_TIMESTAMPS" envDefault:"false"`
//	}
//
//	var cfg HoneypotConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// # Configuration Files
//
// LoadFile reads a YAML file on top of the envDefault values, then lets any
// environment variable that is set override the file:
//
//	var cfg AppConfig
//	if err := config.LoadFile("honeypot.yaml", &cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Struct fields need matching yaml tags for the file to populate them.
package config
