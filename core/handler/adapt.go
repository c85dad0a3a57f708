package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// ErrNilResponse is passed to the error handler when a HandlerFunc returns nil.
var ErrNilResponse = errors.New("handler returned nil response")

// ContextFactory builds the request context for one request.
type ContextFactory[C Context] func(w http.ResponseWriter, r *http.Request) C

// Adapter bridges HandlerFunc values to net/http.
type Adapter[C Context] struct {
	newContext   ContextFactory[C]
	errorHandler ErrorHandler[C]
	middlewares  []Middleware[C]
	logger       *slog.Logger
}

// AdapterOption configures an Adapter.
type AdapterOption[C Context] func(*Adapter[C])

// WithErrorHandler replaces DefaultErrorHandler.
func WithErrorHandler[C Context](h ErrorHandler[C]) AdapterOption[C] {
	return func(a *Adapter[C]) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithMiddleware appends middlewares applied to every adapted handler.
func WithMiddleware[C Context](mws ...Middleware[C]) AdapterOption[C] {
	return func(a *Adapter[C]) {
		a.middlewares = append(a.middlewares, mws...)
	}
}

// WithAdapterLogger sets the logger used for panics that happen after the response was written.
func WithAdapterLogger[C Context](l *slog.Logger) AdapterOption[C] {
	return func(a *Adapter[C]) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAdapter creates an Adapter using newContext to build per-request contexts.
func NewAdapter[C Context](newContext ContextFactory[C], opts ...AdapterOption[C]) *Adapter[C] {
	a := &Adapter[C]{
		newContext:   newContext,
		errorHandler: DefaultErrorHandler[C],
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Handler converts h into an http.Handler.
func (a *Adapter[C]) Handler(h HandlerFunc[C]) http.Handler {
	h = Chain(h, a.middlewares...)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := NewResponseWriter(w)
		ctx := a.newContext(ww, r)

		defer func() {
			if p := recover(); p != nil {
				err := &PanicError{value: p, stack: debug.Stack()}
				if ww.Written() {
					a.logger.Error("panic after response written",
						slog.Any("value", p),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.Int("status", ww.Status()),
					)
					return
				}
				a.errorHandler(ctx, err)
			}
		}()

		resp := h(ctx)
		if resp == nil {
			a.errorHandler(ctx, ErrNilResponse)
			return
		}

		// Middlewares may replace the request through SetValue.
		if err := resp(ww, ctx.Request()); err != nil {
			a.errorHandler(ctx, err)
		}
	})
}

// ToHTTP adapts a HandlerFunc running on the default RequestContext.
func ToHTTP(h HandlerFunc[*RequestContext], params ParamFunc, opts ...AdapterOption[*RequestContext]) http.Handler {
	factory := func(w http.ResponseWriter, r *http.Request) *RequestContext {
		return NewContext(w, r, params)
	}
	return NewAdapter[*RequestContext](factory, opts...).Handler(h)
}

// PanicError wraps a value recovered from a panicking handler.
type PanicError struct {
	value any
	stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Value returns the original panic value.
func (e *PanicError) Value() any {
	return e.value
}

// Stack returns the stack trace captured at the panic point.
func (e *PanicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to work with wrapped panics.
func (e *PanicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
