package fileserve

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/fileserve/core/handler"
	"github.com/dmitrymomot/fileserve/core/health"
	"github.com/dmitrymomot/fileserve/core/static"
	"github.com/dmitrymomot/fileserve/middleware"
)

func newContext(w http.ResponseWriter, r *http.Request) *handler.RequestContext {
	return handler.NewContext(w, r, chi.URLParam)
}

// newRouter mounts srv for GET and HEAD under cfg.Prefix, plus the health
// endpoints when enabled. Health routes take precedence over files. With
// CORS enabled, OPTIONS runs through the same chain so the CORS middleware
// answers preflights; any other OPTIONS gets allowedMethods.
func newRouter(srv *static.Server, cfg Config, log *slog.Logger) chi.Router {
	mws := []handler.Middleware[*handler.RequestContext]{
		middleware.RequestID[*handler.RequestContext](),
		middleware.LoggingWithLogger[*handler.RequestContext](log),
	}
	base := handler.NewAdapter[*handler.RequestContext](newContext,
		handler.WithAdapterLogger[*handler.RequestContext](log),
		handler.WithMiddleware(mws...),
	)

	if cfg.CORSEnabled {
		mws = append(mws, middleware.CORSWithConfig[*handler.RequestContext](middleware.CORSConfig{
			AllowOrigins: cfg.CORSOrigins,
		}))
	}
	if cfg.SecurityHeaders {
		sec := middleware.AssetSecurity
		sec.IsDevelopment = cfg.Env != "production"
		mws = append(mws, middleware.SecurityHeadersWithConfig[*handler.RequestContext](sec))
	}
	filesAdapter := handler.NewAdapter[*handler.RequestContext](newContext,
		handler.WithAdapterLogger[*handler.RequestContext](log),
		handler.WithMiddleware(mws...),
	)
	files := filesAdapter.Handler(static.MountFunc[*handler.RequestContext](srv, routePrefix))

	r := chi.NewRouter()

	if cfg.HealthEnabled {
		r.Method(http.MethodGet, "/health/live", base.Handler(health.Liveness[*handler.RequestContext]))
		r.Method(http.MethodGet, "/health/ready", base.Handler(
			health.Readiness[*handler.RequestContext](log, srv.Check),
		))
	}

	pattern := strings.TrimSuffix(cfg.Prefix, "/") + "/*"
	if !strings.HasPrefix(pattern, "/") {
		pattern = "/" + pattern
	}
	r.Method(http.MethodGet, pattern, files)
	r.Method(http.MethodHead, pattern, files)
	if cfg.CORSEnabled {
		r.Method(http.MethodOptions, pattern, filesAdapter.Handler(allowedMethods))
	}

	return r
}

// routePrefix reports the literal part of the chi route that matched r,
// e.g. "/assets/" for the pattern "/assets/*".
func routePrefix(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "/"
	}
	return strings.TrimSuffix(rctx.RoutePattern(), "*")
}

// allowedMethods answers a plain OPTIONS request without touching the file.
func allowedMethods(_ *handler.RequestContext) handler.Response {
	return func(w http.ResponseWriter, _ *http.Request) error {
		w.Header().Set("Allow", "GET, HEAD, OPTIONS")
		w.WriteHeader(http.StatusNoContent)
		return nil
	}
}
