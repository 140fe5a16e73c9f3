// Package sessiontransport connects core/session to HTTP.
//
// Cookie keeps Session.Token in a signed cookie:
//
//	mgr := session.NewManager(store, 24*time.Hour, 5*time.Minute)
//	cookies, _ := cookie.New([]string{secret})
//	transport := sessiontransport.NewCookie(mgr, cookies, "__session")
//
//	sess, err := transport.Load(ctx)   // fresh session when the cookie is missing or stale
//	sess.Set("theme", "dark")
//	err = transport.Save(ctx, sess)    // persists and refreshes the cookie
//
// New sessions record the client IP (via pkg/clientip) and User-Agent.
// Only store failures surface as errors from Load; anything that merely
// invalidates the cookie starts a new session.
package sessiontransport
