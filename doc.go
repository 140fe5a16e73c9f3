// Package honeypot is the index of a toolkit that protects web forms from
// automated submissions with an invisible decoy field and an optional
// minimum fill time.
//
// A bot that fills in every input it finds also fills the decoy; a human
// never sees it. Submissions with a filled, missing or unknown decoy, or
// (when enabled) submitted faster than a human could, are dropped with a
// response that looks like success.
//
// # Core
//
//   - github.com/dmitrymomot/honeypot/core/honeypot: token generation, the
//     per-session TokenStore contract and the Guard that issues fields and
//     classifies submissions.
//   - github.com/dmitrymomot/honeypot/core/session: key/value sessions,
//     the Store interface, Manager and an in-memory store.
//   - github.com/dmitrymomot/honeypot/core/sessiontransport: sessions carried
//     in a signed cookie.
//   - github.com/dmitrymomot/honeypot/core/cookie: cookie management with
//     HMAC signing and secret rotation.
//   - github.com/dmitrymomot/honeypot/core/handler: generic request context,
//     handler and middleware types and the adapter to net/http.
//   - github.com/dmitrymomot/honeypot/core/response: responses, redirects,
//     templ rendering and HTTP errors.
//   - github.com/dmitrymomot/honeypot/core/health: liveness and readiness.
//   - github.com/dmitrymomot/honeypot/core/server: HTTP server with graceful
//     shutdown.
//   - github.com/dmitrymomot/honeypot/core/config: environment and YAML
//     configuration loading.
//   - github.com/dmitrymomot/honeypot/core/logger: slog setup and attribute
//     helpers.
//
// # Middleware
//
//   - github.com/dmitrymomot/honeypot/middleware: Honeypot, Session,
//     ClientIP, RequestID, Logging and BodyLimit.
//
// # Utilities
//
//   - github.com/dmitrymomot/honeypot/pkg/clientip: client IP from proxy
//     headers.
//   - github.com/dmitrymomot/honeypot/pkg/token: compact HMAC-signed tokens.
//
// # Integrations
//
//   - github.com/dmitrymomot/honeypot/integration/database/redis: Redis
//     session store and per-session honeypot TokenStore.
//   - github.com/dmitrymomot/honeypot/integration/database/pg: PostgreSQL
//     session store with goose migrations.
//   - github.com/dmitrymomot/honeypot/integration/database/bolt: embedded
//     bbolt session store.
//
// # Command
//
//   - github.com/dmitrymomot/honeypot/cmd/honeypot: demo server (serve),
//     token generator (token) and schema migration (migrate).
package honeypot
