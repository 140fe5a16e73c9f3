package honeypot

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"strconv"
	"time"

	"golang.org/x/crypto/hkdf"

	"github.com/dmitrymomot/honeypot/pkg/token"
)

// Fields describes what a form must render for one honeypot-protected form.
type Fields struct {
	Form string

	// Name of the decoy text input. Equal to the session token for the form.
	Name string

	// Label instructs humans to leave the decoy empty.
	Label string

	// CSSClass must be attached to the decoy and hidden via StyleRule.
	CSSClass string

	// TimestampName and TimestampValue describe the hidden input carrying the
	// render time. Empty when timestamps are disabled.
	TimestampName  string
	TimestampValue string
	RenderedAt     time.Time
}

// HasTimestamp reports whether the hidden timestamp input must be rendered.
func (f Fields) HasTimestamp() bool {
	return f.TimestampName != ""
}

const (
	timestampSuffix   = "timestamp"
	derivedNameLength = 40

	fieldKeyInfo = "honeypot timestamp field"
	signKeyInfo  = "honeypot timestamp value"
)

type timestampClaims struct {
	Form       string `json:"f"`
	RenderedAt int64  `json:"t"`
}

// deriveKey expands secret into a 32-byte key bound to info.
func deriveKey(secret, info string) ([]byte, error) {
	key := make([]byte, sha256.Size)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(info))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return key, nil
}

// timestampField derives the hidden field name from the form token.
// It is unpredictable without the token but reproducible at validation time.
func (g *Guard) timestampField(tok string) string {
	var h hash.Hash
	if g.fieldKey != nil {
		h = hmac.New(sha256.New, g.fieldKey)
	} else {
		h = sha256.New()
	}
	h.Write([]byte(tok + timestampSuffix))
	return TokenPrefix + hex.EncodeToString(h.Sum(nil))[:derivedNameLength]
}

func (g *Guard) encodeTimestamp(form string, at time.Time) (string, error) {
	if g.signKey == nil {
		return strconv.FormatInt(at.Unix(), 10), nil
	}
	return token.GenerateToken(timestampClaims{Form: form, RenderedAt: at.Unix()}, string(g.signKey))
}

// decodeTimestamp returns the render time in Unix seconds.
// ok is false for values that are unparseable, forged, or bound to another form.
func (g *Guard) decodeTimestamp(form, value string) (int64, bool) {
	if value == "" {
		return 0, false
	}

	if g.signKey == nil {
		ts, err := strconv.ParseInt(value, 10, 64)
		return ts, err == nil
	}

	claims, err := token.ParseToken[timestampClaims](value, string(g.signKey))
	if err != nil || claims.Form != form {
		return 0, false
	}
	return claims.RenderedAt, true
}
