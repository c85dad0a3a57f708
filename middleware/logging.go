package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/fileserve/core/handler"
	"github.com/dmitrymomot/fileserve/core/logger"
)

// LoggingConfig configures the request/response logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for successful requests (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging (default: "http")
	Component string
}

// Logging creates a logging middleware with default configuration.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger[C handler.Context](log *slog.Logger) handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{Logger: log})
}

// LoggingWithConfig logs one record per request once the response is
// rendered: status, bytes sent, duration and, for ranged requests, the
// Range header. 5xx are logged at error level, 4xx and slow requests at warn.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			response := next(ctx)
			requestID, _ := GetRequestID(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
				err := response(wrapped, r)

				// The error handler has not run yet; report the status it will most likely write.
				status := wrapped.statusCode
				if err != nil && !wrapped.headerWritten {
					status = handler.StatusCode(err)
				}

				duration := time.Since(start)
				attrs := []slog.Attr{
					logger.Component(cfg.Component),
					logger.Event("response"),
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					logger.Query(r.URL.RawQuery),
					logger.RemoteAddr(r.RemoteAddr),
					logger.RequestID(requestID),
					logger.StatusCode(status),
					logger.BytesOut(int64(wrapped.size)),
					logger.Duration(duration),
				}
				if rng := r.Header.Get("Range"); rng != "" {
					attrs = append(attrs, slog.String("range", rng))
				}

				level := cfg.LogLevel
				switch {
				case status >= 500:
					level = slog.LevelError
					attrs = append(attrs, logger.Error(err))
				case status >= 400:
					level = slog.LevelWarn
				case duration > cfg.SlowRequestThreshold:
					level = slog.LevelWarn
					attrs = append(attrs, slog.Bool("slow_request", true))
				}

				cfg.Logger.LogAttrs(r.Context(), level, "HTTP request completed", attrs...)
				return err
			}
		}
	}
}

// responseWriter wraps http.ResponseWriter to capture response details.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	size          int
	headerWritten bool
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = statusCode
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.headerWritten {
		rw.WriteHeader(http.StatusOK)
	}
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

// Written reports whether the status line was sent, so handlers further
// down can still detect a started response through this wrapper.
func (rw *responseWriter) Written() bool {
	return rw.headerWritten || handler.Written(rw.ResponseWriter)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
