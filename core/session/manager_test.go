package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/honeypot/core/session"
)

// mockStore implements session.Store interface for testing
type mockStore struct {
	mock.Mock
}

func (m *mockStore) GetByToken(ctx context.Context, token string) (*session.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *mockStore) Save(ctx context.Context, sess *session.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *mockStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockStore) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func createSession(t *testing.T, ttl time.Duration) *session.Session {
	t.Helper()
	sess, err := session.New(session.NewSessionParams{IP: "127.0.0.1"}, ttl)
	require.NoError(t, err)
	return &sess
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("requires store", func(t *testing.T) {
		t.Parallel()

		mgr, err := session.NewFromConfig(session.DefaultConfig(), nil)
		assert.ErrorIs(t, err, session.ErrNoStore)
		assert.Nil(t, mgr)
	})

	t.Run("zero ttl falls back to default", func(t *testing.T) {
		t.Parallel()

		mgr, err := session.NewFromConfig(session.Config{}, &mockStore{})
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, mgr.GetTTL())
	})
}

func TestManager_GetByToken(t *testing.T) {
	t.Parallel()

	t.Run("returns valid session", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, time.Hour, 5*time.Minute)
		ctx := context.Background()
		valid := createSession(t, time.Hour)

		store.On("GetByToken", ctx, valid.Token).Return(valid, nil)

		got, err := mgr.GetByToken(ctx, valid.Token)
		require.NoError(t, err)
		assert.Equal(t, valid.ID, got.ID)
		store.AssertExpectations(t)
	})

	t.Run("rejects expired session", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, time.Hour, 5*time.Minute)
		ctx := context.Background()
		expired := createSession(t, -time.Hour)

		store.On("GetByToken", ctx, expired.Token).Return(expired, nil)

		got, err := mgr.GetByToken(ctx, expired.Token)
		assert.ErrorIs(t, err, session.ErrExpired)
		assert.Nil(t, got)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, time.Hour, 5*time.Minute)
		ctx := context.Background()
		storeErr := errors.New("connection refused")

		store.On("GetByToken", ctx, "token").Return(nil, storeErr)

		_, err := mgr.GetByToken(ctx, "token")
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestManager_Store(t *testing.T) {
	t.Parallel()

	t.Run("saves modified session", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, time.Hour, 5*time.Minute)
		ctx := context.Background()
		sess := createSession(t, time.Hour)

		store.On("Save", ctx, sess).Return(nil).Once()

		require.NoError(t, mgr.Store(ctx, sess))
		assert.False(t, sess.IsModified())

		// Nothing changed since the last save.
		require.NoError(t, mgr.Store(ctx, sess))
		store.AssertExpectations(t)
	})

	t.Run("wraps save errors", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, time.Hour, 5*time.Minute)
		ctx := context.Background()
		sess := createSession(t, time.Hour)
		storeErr := errors.New("disk full")

		store.On("Save", ctx, sess).Return(storeErr)

		err := mgr.Store(ctx, sess)
		assert.ErrorIs(t, err, session.ErrSaveSession)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	store := &mockStore{}
	mgr := session.NewManager(store, time.Hour, 5*time.Minute)
	ctx := context.Background()
	missing := uuid.New()
	broken := uuid.New()

	store.On("Delete", ctx, missing).Return(session.ErrNotFound)
	store.On("Delete", ctx, broken).Return(errors.New("timeout"))

	assert.NoError(t, mgr.Delete(ctx, missing))
	assert.ErrorIs(t, mgr.Delete(ctx, broken), session.ErrDeleteSession)
}

func TestManager_CleanupExpired(t *testing.T) {
	t.Parallel()

	store := &mockStore{}
	mgr := session.NewManager(store, time.Hour, 5*time.Minute)
	ctx := context.Background()

	store.On("DeleteExpired", ctx).Return(int64(3), nil)

	n, err := mgr.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
