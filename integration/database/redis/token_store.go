package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/honeypot/core/honeypot"
)

// TokenStore keeps the honeypot state of one session in a Redis hash,
// keyed <prefix>honeypot:<sessionID>, with fields named by
// honeypot.TokenKey and honeypot.CSSClassKey.
type TokenStore struct {
	client goredis.UniversalClient
	key    string
	ttl    time.Duration
}

var _ honeypot.TokenStore = (*TokenStore)(nil)

// NewTokenStore binds a store to sessionID. Every write extends the hash
// expiry to ttl; zero keeps it forever.
func NewTokenStore(client goredis.UniversalClient, prefix, sessionID string, ttl time.Duration) (*TokenStore, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}
	return &TokenStore{
		client: client,
		key:    prefix + "honeypot:" + sessionID,
		ttl:    ttl,
	}, nil
}

func (s *TokenStore) Token(ctx context.Context, form string) (string, error) {
	return s.get(ctx, honeypot.TokenKey(form))
}

func (s *TokenStore) SetToken(ctx context.Context, form, token string) error {
	return s.set(ctx, honeypot.TokenKey(form), token)
}

func (s *TokenStore) CSSClass(ctx context.Context) (string, error) {
	return s.get(ctx, honeypot.CSSClassKey)
}

func (s *TokenStore) SetCSSClass(ctx context.Context, class string) error {
	return s.set(ctx, honeypot.CSSClassKey, class)
}

func (s *TokenStore) get(ctx context.Context, field string) (string, error) {
	v, err := s.client.HGet(ctx, s.key, field).Result()
	if errors.Is(err, goredis.Nil) || (err == nil && v == "") {
		return "", honeypot.ErrTokenNotFound
	}
	return v, err
}

func (s *TokenStore) set(ctx context.Context, field, value string) error {
	_, err := s.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.HSet(ctx, s.key, field, value)
		if s.ttl > 0 {
			p.Expire(ctx, s.key, s.ttl)
		}
		return nil
	})
	return err
}
