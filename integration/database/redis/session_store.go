package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/honeypot/core/session"
)

// SessionStore keeps sessions as JSON strings that expire with the session.
//
// Keys:
//
//	<prefix>session:<token> -> JSON-encoded session
//	<prefix>session_id:<id> -> current token
type SessionStore struct {
	client goredis.UniversalClient
	prefix string
}

var _ session.Store = (*SessionStore)(nil)

// NewSessionStore creates a session store. prefix namespaces every key.
func NewSessionStore(client goredis.UniversalClient, prefix string) *SessionStore {
	return &SessionStore{client: client, prefix: prefix}
}

func (s *SessionStore) tokenKey(token string) string {
	return s.prefix + "session:" + token
}

func (s *SessionStore) idKey(id uuid.UUID) string {
	return s.prefix + "session_id:" + id.String()
}

func (s *SessionStore) GetByToken(ctx context.Context, token string) (*session.Session, error) {
	data, err := s.client.Get(ctx, s.tokenKey(token)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

// Save writes the session and its id index in one transaction. A rotated
// token replaces the previous one.
func (s *SessionStore) Save(ctx context.Context, sess *session.Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return session.ErrExpired
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	prev, err := s.client.Get(ctx, s.idKey(sess.ID)).Result()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		if prev != "" && prev != sess.Token {
			p.Del(ctx, s.tokenKey(prev))
		}
		p.Set(ctx, s.tokenKey(sess.Token), data, ttl)
		p.Set(ctx, s.idKey(sess.ID), sess.Token, ttl)
		return nil
	})
	return err
}

func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	token, err := s.client.Get(ctx, s.idKey(id)).Result()
	if errors.Is(err, goredis.Nil) {
		return session.ErrNotFound
	}
	if err != nil {
		return err
	}

	return s.client.Del(ctx, s.tokenKey(token), s.idKey(id)).Err()
}

// DeleteExpired is a no-op: Redis expires keys on its own.
func (s *SessionStore) DeleteExpired(context.Context) (int64, error) {
	return 0, nil
}
