// Package session provides server-side key/value sessions for Go web applications.
//
// A Session is identified by a stable uuid ID and carried by the client as a
// rotatable, cryptographically secure token (32 bytes, base64url). Application
// state lives in Session.Values; Set and Remove mark the session as modified so
// the Manager only writes changed sessions back to the Store.
//
// # Core Components
//
//   - Session: token, metadata and the Values map
//   - Manager: creation, lookup with expiration checks, persistence, cleanup
//   - Store: persistence interface (MemoryStore here; Redis, PostgreSQL and
//     BBolt implementations live under integration/database)
//
// # Basic Usage
//
//	store := session.NewMemoryStore()
//	mgr := session.NewManager(store, 24*time.Hour, 5*time.Minute)
//
//	sess, err := mgr.GetByToken(ctx, tokenFromCookie)
//	if err != nil {
//		sess, err = mgr.New(session.NewSessionParams{IP: clientip.GetIP(r)})
//	}
//
//	sess.Set("HoneypotForm.CSSClass", class)
//
//	if err := mgr.Store(ctx, sess); err != nil {
//		return err
//	}
//
// # Error Handling
//
//   - ErrNotFound: token unknown to the store
//   - ErrExpired: session past ExpiresAt
//   - ErrMissingIP: New called without a client IP
//   - ErrTokenGeneration: crypto/rand failure
//   - ErrSaveSession, ErrDeleteSession: wrap backend failures (errors.Join)
//
// Store implementations must be safe for concurrent use. Concurrent requests
// within one session are last-writer-wins.
package session
