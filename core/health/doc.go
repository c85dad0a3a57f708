// Package health provides liveness and readiness handlers.
//
//	r.Method(http.MethodGet, "/health/live", adapter.Handler(health.Liveness[*handler.RequestContext]))
//	r.Method(http.MethodGet, "/health/ready", adapter.Handler(
//		health.Readiness[*handler.RequestContext](log, srv.Check),
//	))
//
// Checks follow the func(context.Context) error signature.
package health
