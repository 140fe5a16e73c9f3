package token

import "errors"

var (
	// ErrInvalidToken is returned when the token is malformed or contains invalid base64.
	ErrInvalidToken = errors.New("invalid token format")
	// ErrSignatureInvalid is returned when the signature does not match the payload.
	ErrSignatureInvalid = errors.New("token signature is invalid")
)
