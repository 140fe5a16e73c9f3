// Package bolt stores sessions in an embedded bbolt database file, for
// single-instance deployments that need sessions to survive a restart
// without running Redis or PostgreSQL.
//
//	store, err := bolt.Open(bolt.Config{Path: "sessions.db"})
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
//	mgr := session.NewManager(store, 24*time.Hour, 5*time.Minute)
//
// Sessions live in the "sessions" bucket keyed by token; "session_ids" maps
// a session id to its current token so rotation drops the stale entry.
// bbolt allows one writer at a time, which is the only synchronization the
// store needs.
package bolt
