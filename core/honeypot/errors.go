package honeypot

import "errors"

var (
	// ErrRandomSource is returned when the secure random source fails.
	// Tokens are never generated from a weaker fallback.
	ErrRandomSource = errors.New("honeypot: secure random source unavailable")
	// ErrStoreUnavailable wraps failures reading or writing session state.
	ErrStoreUnavailable = errors.New("honeypot: token store unavailable")
	// ErrTokenNotFound is returned by a TokenStore when no value is stored.
	ErrTokenNotFound = errors.New("honeypot: token not found")
	// ErrNoStore is returned when a Guard is built without a TokenStore.
	ErrNoStore = errors.New("honeypot: token store is required")
	// ErrEmptyFormName is returned when a form name is empty.
	ErrEmptyFormName = errors.New("honeypot: form name is required")
)
