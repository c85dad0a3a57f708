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

// ParamFunc looks up a path parameter for a request.
// Routers expose their own lookup (for example chi.URLParam).
type ParamFunc func(r *http.Request, key string) string

// RequestContext is the default Context implementation.
// It delegates cancellation and values to the request's context.
type RequestContext struct {
	w      http.ResponseWriter
	r      *http.Request
	params ParamFunc
}

// NewContext creates a RequestContext. params may be nil.
func NewContext(w http.ResponseWriter, r *http.Request, params ParamFunc) *RequestContext {
	return &RequestContext{w: w, r: r, params: params}
}

// Deadline returns the time when work done on behalf of this context should be canceled.
func (c *RequestContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done returns a channel that's closed when work done on behalf of this context should be canceled.
func (c *RequestContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err returns a non-nil error value after Done is closed.
func (c *RequestContext) Err() error {
	return c.r.Context().Err()
}

// Value returns the value associated with this context for key.
func (c *RequestContext) Value(key any) any {
	return c.r.Context().Value(key)
}

// Request returns the HTTP request associated with this context.
func (c *RequestContext) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the HTTP response writer associated with this context.
func (c *RequestContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the value of the URL parameter for the given key.
func (c *RequestContext) Param(key string) string {
	if c.params == nil {
		return ""
	}
	return c.params(c.r, key)
}

// SetValue stores a request-scoped value. The request is replaced with a
// shallow copy carrying the new value so later Request() calls observe it.
func (c *RequestContext) SetValue(key, val any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, val))
}
