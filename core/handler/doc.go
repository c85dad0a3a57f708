// Package handler provides type-safe HTTP handlers with custom context
// support and composable middleware.
//
// # Core Types
//
//	// Response renders an HTTP response.
//	type Response func(w http.ResponseWriter, r *http.Request) error
//
//	// HandlerFunc builds a Response from a request context.
//	type HandlerFunc[C Context] func(ctx C) Response
//
//	type ErrorHandler[C Context] func(ctx C, err error)
//	type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
//
// Context extends context.Context with access to the request, the response
// writer, path parameters and request-scoped values. RequestContext is the
// default implementation; path parameters come from a router-specific
// ParamFunc such as chi.URLParam.
//
// # Adapting to net/http
//
//	h := func(ctx *handler.RequestContext) handler.Response {
//		return func(w http.ResponseWriter, r *http.Request) error {
//			_, err := w.Write([]byte("hello " + ctx.Param("name")))
//			return err
//		}
//	}
//
//	mux.Handle("/hello/{name}", handler.ToHTTP(h, chi.URLParam,
//		handler.WithMiddleware(middleware.RequestID[*handler.RequestContext]()),
//	))
//
// For a custom context type use NewAdapter with a ContextFactory.
//
// # Errors
//
// An error returned by a Response goes to the ErrorHandler. The default
// handler writes the status text of StatusCode(err) unless the response has
// already started. Errors choose their status by implementing
//
//	StatusCode() int
//
// anywhere in their chain; everything else is a 500. Error messages are
// never sent to the client. Panics are recovered and reported as *PanicError.
//
// # Middleware
//
// Chain and WithMiddleware apply middlewares so that the first one listed is
// the outermost:
//
//	h = handler.Chain(h, logging, requestID) // logging(requestID(h))
package handler
