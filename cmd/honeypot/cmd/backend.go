package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/honeypot/core/health"
	"github.com/dmitrymomot/honeypot/core/honeypot"
	"github.com/dmitrymomot/honeypot/core/logger"
	"github.com/dmitrymomot/honeypot/core/session"
	"github.com/dmitrymomot/honeypot/integration/database/bolt"
	"github.com/dmitrymomot/honeypot/integration/database/pg"
	"github.com/dmitrymomot/honeypot/integration/database/redis"
)

var errUnknownBackend = errors.New("unknown session backend")

// backend is an opened session store with its lifecycle hooks.
type backend struct {
	store  session.Store
	checks []health.Check
	close  func()

	// tokens is set when the backend keeps honeypot tokens outside the
	// session record.
	tokens tokenStoreFunc
}

func openBackend(ctx context.Context, cfg appConfig, log *slog.Logger) (*backend, error) {
	log = log.With(logger.Component("backend"), slog.String("backend", cfg.Backend))

	switch cfg.Backend {
	case backendMemory, "":
		return &backend{
			store: session.NewMemoryStore(),
			close: func() {},
		}, nil

	case backendRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		log.InfoContext(ctx, "connected to redis")
		return &backend{
			store:  redis.NewSessionStore(client, cfg.Redis.KeyPrefix),
			checks: []health.Check{{Name: "redis", Fn: redis.Healthcheck(client)}},
			close:  func() { _ = client.Close() },
			tokens: redisTokens(client, cfg.Redis.KeyPrefix, cfg.Session.TTL),
		}, nil

	case backendPostgres:
		pool, err := pg.Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx, pool, cfg.Postgres, log); err != nil {
			pool.Close()
			return nil, err
		}
		log.InfoContext(ctx, "connected to postgres")
		return &backend{
			store:  pg.NewSessionStore(pool),
			checks: []health.Check{{Name: "postgres", Fn: pg.Healthcheck(pool)}},
			close:  pool.Close,
		}, nil

	case backendBolt:
		store, err := bolt.Open(cfg.Bolt)
		if err != nil {
			return nil, err
		}
		log.InfoContext(ctx, "opened bolt database", slog.String("path", cfg.Bolt.Path))
		return &backend{
			store: store,
			close: func() { _ = store.Close() },
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", errUnknownBackend, cfg.Backend)
}

// redisTokens keeps honeypot tokens in a per-session hash that expires with
// the session.
func redisTokens(client goredis.UniversalClient, prefix string, ttl time.Duration) tokenStoreFunc {
	return func(sessionID string) (honeypot.TokenStore, error) {
		return redis.NewTokenStore(client, prefix, sessionID, ttl)
	}
}
