package cmd

import (
	"time"

	"github.com/dmitrymomot/honeypot/core/config"
	"github.com/dmitrymomot/honeypot/core/cookie"
	"github.com/dmitrymomot/honeypot/core/honeypot"
	"github.com/dmitrymomot/honeypot/core/logger"
	"github.com/dmitrymomot/honeypot/core/server"
	"github.com/dmitrymomot/honeypot/core/session"
	"github.com/dmitrymomot/honeypot/core/sessiontransport"
	"github.com/dmitrymomot/honeypot/integration/database/bolt"
	"github.com/dmitrymomot/honeypot/integration/database/pg"
	"github.com/dmitrymomot/honeypot/integration/database/redis"
)

// Session backends selectable with SESSION_BACKEND.
const (
	backendMemory   = "memory"
	backendRedis    = "redis"
	backendPostgres = "postgres"
	backendBolt     = "bolt"
)

type appConfig struct {
	Log           logger.Config                 `yaml:"log"`
	Server        server.Config                 `yaml:"server"`
	Session       session.Config                `yaml:"session"`
	SessionCookie sessiontransport.CookieConfig `yaml:"session_cookie"`
	Cookie        cookie.Config                 `yaml:"cookie"`
	Honeypot      honeypot.Config               `yaml:"honeypot"`

	Backend         string        `env:"SESSION_BACKEND" envDefault:"memory" yaml:"session_backend"`
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"10m" yaml:"cleanup_interval"`
	MaxBodySize     int64         `env:"HTTP_MAX_BODY_SIZE" envDefault:"1048576" yaml:"max_body_size"`

	Redis    redis.Config `yaml:"redis"`
	Postgres pg.Config    `yaml:"postgres"`
	Bolt     bolt.Config  `yaml:"bolt"`
}

func loadConfig() (appConfig, error) {
	var cfg appConfig
	var err error
	if configFile != "" {
		err = config.LoadFile(configFile, &cfg)
	} else {
		err = config.Load(&cfg)
	}
	return cfg, err
}
