package handler

import (
	"context"
	"net/http"
	"time"
)

// Context defines the contract for request contexts in the framework.
// Use RequestContext for the default implementation.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}

// RequestContext is the default Context. It delegates to the request's context
// and stores values by replacing the request with one carrying the new context.
type RequestContext struct {
	w      http.ResponseWriter
	r      *http.Request
	params map[string]string
}

var _ Context = (*RequestContext)(nil)

// NewContext creates a RequestContext for one request.
func NewContext(w http.ResponseWriter, r *http.Request) *RequestContext {
	return &RequestContext{w: w, r: r}
}

func (c *RequestContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *RequestContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *RequestContext) Err() error {
	return c.r.Context().Err()
}

func (c *RequestContext) Value(key any) any {
	return c.r.Context().Value(key)
}

// Request returns the HTTP request, including values added with SetValue.
func (c *RequestContext) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the HTTP response writer.
func (c *RequestContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns a URL parameter set with SetParam, or "".
func (c *RequestContext) Param(key string) string {
	return c.params[key]
}

// SetParam records a URL parameter, typically from a router.
func (c *RequestContext) SetParam(key, value string) {
	if c.params == nil {
		c.params = make(map[string]string)
	}
	c.params[key] = value
}

// SetValue stores val in the request context under key.
func (c *RequestContext) SetValue(key, val any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, val))
}
