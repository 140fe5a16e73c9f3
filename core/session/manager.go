package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Manager handles session lifecycle including creation, retrieval, and expiration.
// The touchInterval determines how often sessions are automatically extended on access,
// reducing write operations to the store.
type Manager struct {
	store         Store
	ttl           time.Duration
	touchInterval time.Duration
}

// NewManager creates a session manager with the specified store, time-to-live duration,
// and touch interval.
func NewManager(store Store, ttl, touchInterval time.Duration) *Manager {
	return &Manager{
		store:         store,
		ttl:           ttl,
		touchInterval: touchInterval,
	}
}

// NewFromConfig creates a Manager from configuration.
// Zero values in cfg fall back to defaults.
func NewFromConfig(cfg Config, store Store) (*Manager, error) {
	if store == nil {
		return nil, ErrNoStore
	}

	def := DefaultConfig()
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	if cfg.TouchInterval < 0 {
		cfg.TouchInterval = def.TouchInterval
	}

	return NewManager(store, cfg.TTL, cfg.TouchInterval), nil
}

// New creates a fresh session. It is not persisted until Store is called.
func (m *Manager) New(params NewSessionParams) (*Session, error) {
	sess, err := New(params, m.ttl)
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// GetByToken retrieves a session by token and validates expiration.
func (m *Manager) GetByToken(ctx context.Context, token string) (*Session, error) {
	sess, err := m.store.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if sess.IsExpired() {
		return nil, ErrExpired
	}

	return sess, nil
}

// Store persists the session if it was modified or its expiration was extended.
func (m *Manager) Store(ctx context.Context, sess *Session) error {
	sess.Touch(m.ttl, m.touchInterval)

	if !sess.IsModified() {
		return nil
	}

	if err := m.store.Save(ctx, sess); err != nil {
		return errors.Join(ErrSaveSession, err)
	}

	sess.isModified = false
	return nil
}

// Delete removes a session from the store. Missing sessions are not an error.
func (m *Manager) Delete(ctx context.Context, id uuid.UUID) error {
	if err := m.store.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return errors.Join(ErrDeleteSession, err)
	}
	return nil
}

// CleanupExpired removes all expired sessions from the store.
// Should be called periodically to prevent session table growth.
func (m *Manager) CleanupExpired(ctx context.Context) (int64, error) {
	return m.store.DeleteExpired(ctx)
}

// GetTTL returns the session time-to-live duration.
func (m *Manager) GetTTL() time.Duration {
	return m.ttl
}
