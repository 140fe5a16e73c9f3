package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"maps"
	"time"

	"github.com/google/uuid"
)

// Session is a per-visitor key/value scope that survives across requests.
type Session struct {
	// ID is the stable session identifier; it never changes.
	ID uuid.UUID `json:"id"`

	// Token is the cryptographically secure session token (32 bytes base64url),
	// carried by the client in a cookie.
	Token string `json:"token"`

	IP        string `json:"ip"`
	UserAgent string `json:"user_agent"`

	// Values holds application state scoped to this session.
	Values map[string]string `json:"values"`

	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// isModified tracks if the session needs saving
	isModified bool
}

// NewSessionParams contains parameters for creating a new session.
type NewSessionParams struct {
	IP        string
	UserAgent string
}

// New creates a new session with generated token and ID.
// The session is marked as modified and ready to be saved.
func New(params NewSessionParams, ttl time.Duration) (Session, error) {
	if params.IP == "" {
		return Session{}, ErrMissingIP
	}

	token, err := generateToken()
	if err != nil {
		return Session{}, errors.Join(ErrTokenGeneration, err)
	}

	now := time.Now()
	return Session{
		ID:         uuid.New(),
		Token:      token,
		IP:         params.IP,
		UserAgent:  params.UserAgent,
		Values:     map[string]string{},
		ExpiresAt:  now.Add(ttl),
		CreatedAt:  now,
		UpdatedAt:  now,
		isModified: true,
	}, nil
}

// Get returns the value stored under key.
func (s *Session) Get(key string) (string, bool) {
	v, ok := s.Values[key]
	return v, ok
}

// Set stores value under key and marks the session as modified.
func (s *Session) Set(key, value string) {
	if s.Values == nil {
		s.Values = map[string]string{}
	}
	s.Values[key] = value
	s.UpdatedAt = time.Now()
	s.isModified = true
}

// Remove deletes key from the session.
func (s *Session) Remove(key string) {
	if _, ok := s.Values[key]; !ok {
		return
	}
	delete(s.Values, key)
	s.UpdatedAt = time.Now()
	s.isModified = true
}

// Refresh rotates the session token without changing the session ID.
func (s *Session) Refresh() error {
	token, err := generateToken()
	if err != nil {
		return errors.Join(ErrTokenGeneration, err)
	}
	s.Token = token
	s.UpdatedAt = time.Now()
	s.isModified = true
	return nil
}

// Touch extends the session expiration if the touch interval has elapsed.
func (s *Session) Touch(ttl, touchInterval time.Duration) {
	if time.Since(s.UpdatedAt) >= touchInterval {
		s.ExpiresAt = time.Now().Add(ttl)
		s.UpdatedAt = time.Now()
		s.isModified = true
	}
}

// IsModified returns true if the session has been modified and needs saving.
func (s Session) IsModified() bool {
	return s.isModified
}

// IsExpired returns true if the session has expired.
func (s Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Clone returns a deep copy with its own Values map.
// Stores use it so callers never share maps with stored state.
func (s Session) Clone() Session {
	s.Values = maps.Clone(s.Values)
	if s.Values == nil {
		s.Values = map[string]string{}
	}
	return s
}

// generateToken creates a cryptographically secure random token using 32 bytes (256 bits)
// encoded as base64 URL-safe string without padding.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
