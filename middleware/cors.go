package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/fileserve/core/handler"
)

// CORSConfig configures cross-origin access to served files.
type CORSConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// AllowOrigins lists permitted origins. Empty or "*" allows any origin.
	AllowOrigins []string

	// AllowOriginFunc overrides AllowOrigins. It returns the value for
	// Access-Control-Allow-Origin and whether the origin is allowed.
	AllowOriginFunc func(origin string) (string, bool)

	// AllowMethods defaults to GET and HEAD.
	AllowMethods []string

	// AllowHeaders defaults to the headers a ranged read needs.
	AllowHeaders []string

	// ExposeHeaders defaults to the range response headers so scripts can
	// read partial content metadata.
	ExposeHeaders []string

	// AllowCredentials is never sent together with a wildcard origin.
	AllowCredentials bool

	// MaxAge is the preflight cache lifetime in seconds. Zero omits the header.
	MaxAge int
}

// CORS allows any origin to read files, including ranged reads.
func CORS[C handler.Context]() handler.Middleware[C] {
	return CORSWithConfig[C](CORSConfig{})
}

// CORSWithConfig answers preflight requests itself (204, or 403 for a
// disallowed origin or method) and decorates other responses from allowed
// origins with Access-Control headers.
func CORSWithConfig[C handler.Context](cfg CORSConfig) handler.Middleware[C] {
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{http.MethodGet, http.MethodHead}
	}
	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = []string{"Range", "If-Range", "Accept", "Origin", "X-Request-ID"}
	}
	if len(cfg.ExposeHeaders) == 0 {
		cfg.ExposeHeaders = []string{"Accept-Ranges", "Content-Range", "Content-Length", "X-Request-ID"}
	}

	allowMethods := strings.Join(cfg.AllowMethods, ",")
	allowHeaders := strings.Join(cfg.AllowHeaders, ",")
	exposeHeaders := strings.Join(cfg.ExposeHeaders, ",")
	anyOrigin := len(cfg.AllowOrigins) == 0 || slices.Contains(cfg.AllowOrigins, "*")

	resolveOrigin := func(origin string) (string, bool) {
		switch {
		case cfg.AllowOriginFunc != nil:
			return cfg.AllowOriginFunc(origin)
		case anyOrigin:
			return "*", true
		case slices.Contains(cfg.AllowOrigins, origin):
			return origin, true
		}
		return "", false
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			allowedOrigin, allowed := resolveOrigin(req.Header.Get("Origin"))

			requestMethod := req.Header.Get("Access-Control-Request-Method")
			if req.Method == http.MethodOptions && requestMethod != "" {
				if !allowed || !slices.Contains(cfg.AllowMethods, requestMethod) {
					return func(w http.ResponseWriter, r *http.Request) error {
						w.WriteHeader(http.StatusForbidden)
						return nil
					}
				}

				return func(w http.ResponseWriter, r *http.Request) error {
					h := w.Header()
					h.Set("Access-Control-Allow-Origin", allowedOrigin)
					h.Set("Access-Control-Allow-Methods", allowMethods)
					if r.Header.Get("Access-Control-Request-Headers") != "" {
						h.Set("Access-Control-Allow-Headers", allowHeaders)
					}
					if cfg.AllowCredentials && allowedOrigin != "*" {
						h.Set("Access-Control-Allow-Credentials", "true")
					}
					if cfg.MaxAge > 0 {
						h.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
					}
					h.Add("Vary", "Origin")
					h.Add("Vary", "Access-Control-Request-Method")
					h.Add("Vary", "Access-Control-Request-Headers")

					w.WriteHeader(http.StatusNoContent)
					return nil
				}
			}

			response := next(ctx)
			if !allowed {
				return response
			}

			return func(w http.ResponseWriter, r *http.Request) error {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", allowedOrigin)
				if cfg.AllowCredentials && allowedOrigin != "*" {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
				h.Set("Access-Control-Expose-Headers", exposeHeaders)
				h.Add("Vary", "Origin")

				return response(w, r)
			}
		}
	}
}
