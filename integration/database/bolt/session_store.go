package bolt

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/dmitrymomot/honeypot/core/session"
)

var (
	sessionsBucket = []byte("sessions")
	idsBucket      = []byte("session_ids")
)

// SessionStore implements session.Store on top of a bbolt database.
type SessionStore struct {
	db *bbolt.DB
}

var _ session.Store = (*SessionStore)(nil)

// NewSessionStore wraps an open database and creates the buckets it needs.
func NewSessionStore(db *bbolt.DB) (*SessionStore, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{sessionsBucket, idsBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Join(ErrOpen, err)
	}
	return &SessionStore{db: db}, nil
}

// Open opens (or creates) the database file at cfg.Path.
func Open(cfg Config) (*SessionStore, error) {
	if cfg.Path == "" {
		return nil, ErrEmptyPath
	}

	db, err := bbolt.Open(cfg.Path, 0o600, &bbolt.Options{Timeout: cfg.OpenTimeout})
	if err != nil {
		return nil, errors.Join(ErrOpen, err)
	}

	store, err := NewSessionStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *SessionStore) Close() error {
	return s.db.Close()
}

func (s *SessionStore) GetByToken(_ context.Context, token string) (*session.Session, error) {
	var sess session.Session
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(sessionsBucket).Get([]byte(token))
		if data == nil {
			return session.ErrNotFound
		}
		if err := json.Unmarshal(data, &sess); err != nil {
			return errors.Join(ErrCorruptSession, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// Save writes the session under its token. When the token was rotated the
// entry under the previous token is removed in the same transaction.
func (s *SessionStore) Save(_ context.Context, sess *session.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		sessions := tx.Bucket(sessionsBucket)
		ids := tx.Bucket(idsBucket)
		id := []byte(sess.ID.String())

		if prev := ids.Get(id); prev != nil && string(prev) != sess.Token {
			if err := sessions.Delete(prev); err != nil {
				return err
			}
		}
		if err := sessions.Put([]byte(sess.Token), data); err != nil {
			return err
		}
		return ids.Put(id, []byte(sess.Token))
	})
}

func (s *SessionStore) Delete(_ context.Context, id uuid.UUID) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		ids := tx.Bucket(idsBucket)
		key := []byte(id.String())

		token := ids.Get(key)
		if token == nil {
			return session.ErrNotFound
		}
		if err := tx.Bucket(sessionsBucket).Delete(token); err != nil {
			return err
		}
		return ids.Delete(key)
	})
}

// DeleteExpired scans every session and removes the expired ones.
// Entries that no longer decode are removed as well.
func (s *SessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	var n int64
	now := time.Now()

	err := s.db.Update(func(tx *bbolt.Tx) error {
		sessions := tx.Bucket(sessionsBucket)
		ids := tx.Bucket(idsBucket)

		var stale []session.Session
		var broken [][]byte
		err := sessions.ForEach(func(k, v []byte) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var sess session.Session
			if err := json.Unmarshal(v, &sess); err != nil {
				broken = append(broken, append([]byte(nil), k...))
				return nil
			}
			if now.After(sess.ExpiresAt) {
				stale = append(stale, sess)
			}
			return nil
		})
		if err != nil {
			return err
		}

		// bbolt forbids mutating a bucket while iterating it.
		for _, sess := range stale {
			if err := sessions.Delete([]byte(sess.Token)); err != nil {
				return err
			}
			if err := ids.Delete([]byte(sess.ID.String())); err != nil {
				return err
			}
			n++
		}
		for _, k := range broken {
			if err := sessions.Delete(k); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
