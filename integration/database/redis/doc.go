// Package redis connects to Redis and provides Redis-backed session and
// honeypot token stores.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	sessions := redis.NewSessionStore(client, cfg.KeyPrefix)
//	mgr := session.NewManager(sessions, 24*time.Hour, 5*time.Minute)
//
// Connect validates the URL (redis:// or rediss://), then pings with
// exponential backoff until the server answers or cfg.ConnectTimeout passes.
// Healthcheck returns a ping function for readiness checks.
//
// SessionStore serialises sessions as JSON and lets Redis expire them, so
// DeleteExpired has nothing to do. TokenStore keeps the honeypot tokens of one
// session in a hash, which lets several application instances share them
// without storing honeypot state inside the session itself:
//
//	store, err := redis.NewTokenStore(client, cfg.KeyPrefix, sess.ID.String(), mgr.GetTTL())
//	guard, err := honeypot.New(store)
//
// Errors wrap the go-redis error and one of the sentinel values in errors.go.
package redis
