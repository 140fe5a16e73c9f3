package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
)

// signatureLength is the number of HMAC-SHA256 bytes kept in the token.
const signatureLength = 8

// GenerateToken encodes payload as JSON and appends a truncated HMAC-SHA256 signature.
// The result has the form <base64url-payload>.<base64url-signature>.
func GenerateToken[T any](payload T, secret string) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	encoded := base64.RawURLEncoding.EncodeToString(data)
	return encoded + "." + sign(encoded, secret), nil
}

// ParseToken verifies the signature and decodes the payload into T.
func ParseToken[T any](token, secret string) (T, error) {
	var payload T

	encoded, signature, ok := strings.Cut(token, ".")
	if !ok || encoded == "" || signature == "" {
		return payload, ErrInvalidToken
	}

	expected := sign(encoded, secret)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return payload, ErrSignatureInvalid
	}

	data, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return payload, ErrInvalidToken
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, err
	}

	return payload, nil
}

func sign(encoded, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(encoded))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil)[:signatureLength])
}
