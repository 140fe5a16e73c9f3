package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is a thread-safe in-memory Store.
// Sessions are lost on process restart; use it for tests and single-node development.
type MemoryStore struct {
	mu      sync.RWMutex
	byToken map[string]Session
	tokens  map[uuid.UUID]string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byToken: make(map[string]Session),
		tokens:  make(map[uuid.UUID]string),
	}
}

func (s *MemoryStore) GetByToken(_ context.Context, token string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.byToken[token]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	clone := sess.Clone()
	clone.isModified = false
	return &clone, nil
}

func (s *MemoryStore) Save(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A refreshed session keeps its ID but gets a new token.
	if old, ok := s.tokens[sess.ID]; ok && old != sess.Token {
		delete(s.byToken, old)
	}

	s.byToken[sess.Token] = sess.Clone()
	s.tokens[sess.ID] = sess.Token
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.tokens[id]
	if !ok {
		return ErrNotFound
	}

	delete(s.byToken, token)
	delete(s.tokens, id)
	return nil
}

func (s *MemoryStore) DeleteExpired(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var n int64
	for token, sess := range s.byToken {
		if now.After(sess.ExpiresAt) {
			delete(s.byToken, token)
			delete(s.tokens, sess.ID)
			n++
		}
	}
	return n, nil
}
