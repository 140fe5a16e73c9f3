package pg

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/honeypot/core/session"
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SessionStore keeps sessions in the sessions table created by Migrate.
// Calls join a transaction stored in the context with WithTx.
type SessionStore struct {
	pool *pgxpool.Pool
}

var _ session.Store = (*SessionStore)(nil)

func NewSessionStore(pool *pgxpool.Pool) *SessionStore {
	return &SessionStore{pool: pool}
}

func (s *SessionStore) db(ctx context.Context) querier {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return s.pool
}

func (s *SessionStore) GetByToken(ctx context.Context, token string) (*session.Session, error) {
	var sess session.Session
	err := s.db(ctx).QueryRow(ctx,
		`SELECT id, token, ip, user_agent, data, expires_at, created_at, updated_at
		 FROM sessions WHERE token = $1`, token).Scan(
		&sess.ID, &sess.Token, &sess.IP, &sess.UserAgent, &sess.Values,
		&sess.ExpiresAt, &sess.CreatedAt, &sess.UpdatedAt)
	if IsNotFoundError(err) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if sess.Values == nil {
		sess.Values = map[string]string{}
	}
	return &sess, nil
}

func (s *SessionStore) Save(ctx context.Context, sess *session.Session) error {
	values := sess.Values
	if values == nil {
		values = map[string]string{}
	}

	_, err := s.db(ctx).Exec(ctx,
		`INSERT INTO sessions (id, token, ip, user_agent, data, expires_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE SET
		   token = EXCLUDED.token,
		   data = EXCLUDED.data,
		   expires_at = EXCLUDED.expires_at,
		   updated_at = EXCLUDED.updated_at`,
		sess.ID, sess.Token, sess.IP, sess.UserAgent, values,
		sess.ExpiresAt, sess.CreatedAt, sess.UpdatedAt)
	return err
}

func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db(ctx).Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return session.ErrNotFound
	}
	return nil
}

func (s *SessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := s.db(ctx).Exec(ctx, `DELETE FROM sessions WHERE expires_at < now()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
