// Package handler provides types for HTTP request processing with type-safe
// context handling and middleware support.
//
// A handler returns a Response; rendering is deferred until the adapter calls
// it, so middleware can inspect or replace the response before anything is
// written:
//
//	type Response func(w http.ResponseWriter, r *http.Request) error
//	type HandlerFunc[C Context] func(ctx C) Response
//	type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
//
// # Context
//
// Context embeds context.Context and exposes the request, the response writer,
// URL parameters and SetValue. RequestContext is the default implementation;
// SetValue replaces the request with one carrying the new value, so
// ctx.Request().Context() always sees values added by middleware.
//
// # Adapting to net/http
//
//	h := handler.Chain(contactHandler, mw1, mw2)
//	mux.Handle("/contact", handler.Adapt(h, handler.NewContext, errorHandler))
//
// Middlewares passed to Chain run in the order given.
package handler
