// Package pg connects to PostgreSQL through pgxpool, applies the embedded
// schema with goose and provides a session.Store backed by the sessions table.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//		return err
//	}
//
//	mgr := session.NewManager(pg.NewSessionStore(pool), 24*time.Hour, 5*time.Minute)
//
// Connect retries with exponential backoff. Migrate wraps the pool with
// pgx's database/sql adapter because goose only speaks database/sql, and
// records applied versions in cfg.MigrationsTable.
//
// # Transactions
//
// WithTx stores a pgx.Tx in a context; SessionStore uses it instead of the
// pool when present, so session writes can join an outer transaction:
//
//	tx, _ := pool.Begin(ctx)
//	defer tx.Rollback(ctx)
//	err = mgr.Store(pg.WithTx(ctx, tx), sess)
//
// IsNotFoundError and IsDuplicateKeyError classify driver errors.
package pg
