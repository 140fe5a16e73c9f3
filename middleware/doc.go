// Package middleware provides HTTP middleware built on core/handler.
//
// Every middleware comes in two forms: a short constructor with defaults and
// an XxxWithConfig variant taking an XxxConfig struct. Each config has a Skip
// hook to bypass the middleware for selected requests.
//
//	chain := []handler.Middleware[*handler.RequestContext]{
//		middleware.RequestID[*handler.RequestContext](),
//		middleware.ClientIP[*handler.RequestContext](),
//		middleware.Logging[*handler.RequestContext](log),
//		middleware.BodyLimit[*handler.RequestContext](middleware.MB),
//		middleware.Session[*handler.RequestContext](transport),
//		middleware.Honeypot[*handler.RequestContext](honeypot.DefaultConfig()),
//	}
//	h := handler.Chain(contactHandler, chain...)
//
// # Honeypot
//
// The Honeypot middleware binds a honeypot.Guard to the visitor's session and
// exposes it through GetHoneypot, so GET handlers can render the decoy field:
//
//	guard, _ := middleware.GetHoneypot(ctx)
//	fields, err := guard.Initialize(ctx, ctx.Request().URL.Path)
//
// Submissions (POST, PUT and PATCH by default) are validated before the
// handler runs. A rejected submission is answered with BotResponse, which by
// default redirects back to the form as if it had succeeded, and the
// handler never sees it. Store failures are errors, never rejections.
//
// The form name defaults to the URL path, so rendering and submitting the
// same route agree on it. Session must run before Honeypot.
package middleware
