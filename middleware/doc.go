// Package middleware provides HTTP middleware built on handler.Middleware[C].
//
// Available middleware:
//
//   - RequestID: assigns a UUID v4 per request, echoed in X-Request-ID
//   - Logging: one structured slog record per request with status, bytes and duration
//   - CORS: cross-origin reads, exposing range headers to scripts
//   - SecurityHeaders: nosniff and related headers for served files
//
// Middlewares are applied in order, the first one outermost:
//
//	h := handler.ToHTTP(files, chi.URLParam, handler.WithMiddleware(
//		middleware.RequestID[*handler.RequestContext](),
//		middleware.LoggingWithLogger[*handler.RequestContext](log),
//		middleware.SecurityHeaders[*handler.RequestContext](),
//	))
//
// Every middleware accepts a Skip function in its config to bypass it for
// selected requests.
package middleware
