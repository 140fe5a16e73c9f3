package honeypot

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
)

const (
	// TokenPrefix starts every token so it is a valid CSS class and HTML name.
	TokenPrefix = "hp_"

	defaultTokenBytes = 20 // 160 bits, matches a SHA-1 sized token
	minTokenBytes     = 16
)

// Generator produces unguessable identifiers made of TokenPrefix followed by
// characters from [a-zA-Z0-9_-].
type Generator interface {
	Generate() (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func() (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate() (string, error) {
	return f()
}

// RandomGenerator reads from a cryptographically secure source and hex-encodes the result.
// The zero value uses crypto/rand with 20 bytes.
type RandomGenerator struct {
	// Reader defaults to crypto/rand.Reader. Only override it in tests.
	Reader io.Reader

	// Bytes of entropy per token; values below 16 are raised to 16.
	Bytes int
}

// Generate returns a new token or an error wrapping ErrRandomSource.
func (g RandomGenerator) Generate() (string, error) {
	r := g.Reader
	if r == nil {
		r = rand.Reader
	}

	n := g.Bytes
	switch {
	case n <= 0:
		n = defaultTokenBytes
	case n < minTokenBytes:
		n = minTokenBytes
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", errors.Join(ErrRandomSource, err)
	}

	return TokenPrefix + hex.EncodeToString(b), nil
}
