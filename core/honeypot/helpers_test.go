package honeypot_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/honeypot/core/honeypot"
)

// values is a minimal session-values implementation.
type values struct {
	mu sync.Mutex
	m  map[string]string
}

func newValues() *values {
	return &values{m: map[string]string{}}
}

func (v *values) Get(key string) (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	s, ok := v.m[key]
	return s, ok
}

func (v *values) Set(key, value string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.m[key] = value
}

// mockStore implements honeypot.TokenStore for failure injection.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) Token(ctx context.Context, form string) (string, error) {
	args := m.Called(ctx, form)
	return args.String(0), args.Error(1)
}

func (m *mockStore) SetToken(ctx context.Context, form, token string) error {
	args := m.Called(ctx, form, token)
	return args.Error(0)
}

func (m *mockStore) CSSClass(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockStore) SetCSSClass(ctx context.Context, class string) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

// clock is a settable time source.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Unix(1_700_000_000, 0)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// logSink captures JSON log records.
type logSink struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *logSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *logSink) Logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(s, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (s *logSink) Records(t *testing.T) []map[string]any {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(s.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func (s *logSink) Warnings(t *testing.T) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, rec := range s.Records(t) {
		if rec["level"] == "WARN" {
			out = append(out, rec)
		}
	}
	return out
}

func newGuard(t *testing.T, store honeypot.TokenStore, opts ...honeypot.Option) *honeypot.Guard {
	t.Helper()
	g, err := honeypot.New(store, opts...)
	require.NoError(t, err)
	return g
}
