// Package token signs small JSON payloads into URL-safe strings.
//
// A token is `<base64url payload>.<base64url signature>` where the signature
// is the first 8 bytes of HMAC-SHA256 over the encoded payload. The honeypot
// guard uses it to sign the render timestamp so a client cannot backdate it:
//
//	value, err := token.GenerateToken(claims, key)
//	claims, err := token.ParseToken[timestampClaims](value, key)
//
// ParseToken returns ErrInvalidToken for malformed input and
// ErrSignatureInvalid when the signature does not match. A truncated
// signature is fine for short-lived values like form render times, not for
// long-lived credentials.
package token
