package honeypot

import (
	"context"
)

// CSSClassKey is the session key of the class shared by all honeypot fields.
const CSSClassKey = "HoneypotForm.CSSClass"

// TokenKey returns the session key holding the token for form.
func TokenKey(form string) string {
	return "HoneypotForm." + form + ".Honeypot"
}

// TokenStore persists honeypot tokens for a single session.
// Getters return ErrTokenNotFound when nothing is stored; backend failures
// must be returned as other errors and are never treated as absence.
type TokenStore interface {
	Token(ctx context.Context, form string) (string, error)
	SetToken(ctx context.Context, form, token string) error
	CSSClass(ctx context.Context) (string, error)
	SetCSSClass(ctx context.Context, class string) error
}

// Values is the key/value view of a session. *session.Session implements it.
type Values interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// SessionStore is a TokenStore over in-request session values.
// Persisting the session is the caller's job, usually the session middleware.
type SessionStore struct {
	values Values
}

var _ TokenStore = (*SessionStore)(nil)

// NewSessionStore wraps session values.
func NewSessionStore(values Values) *SessionStore {
	return &SessionStore{values: values}
}

func (s *SessionStore) Token(_ context.Context, form string) (string, error) {
	return s.get(TokenKey(form))
}

func (s *SessionStore) SetToken(_ context.Context, form, token string) error {
	s.values.Set(TokenKey(form), token)
	return nil
}

func (s *SessionStore) CSSClass(_ context.Context) (string, error) {
	return s.get(CSSClassKey)
}

func (s *SessionStore) SetCSSClass(_ context.Context, class string) error {
	s.values.Set(CSSClassKey, class)
	return nil
}

func (s *SessionStore) get(key string) (string, error) {
	v, ok := s.values.Get(key)
	if !ok || v == "" {
		return "", ErrTokenNotFound
	}
	return v, nil
}
