package static

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/fileserve/core/handler"
)

// PrefixFunc returns the route prefix a request matched.
type PrefixFunc func(r *http.Request) string

// FixedPrefix returns a PrefixFunc that always reports prefix.
func FixedPrefix(prefix string) PrefixFunc {
	return func(*http.Request) string { return prefix }
}

// Mount returns a handler serving srv under a fixed route prefix.
// Declined requests surface as errors matching ErrNotHandled, which the
// default error handler renders as 404.
func Mount[C handler.Context](srv *Server, prefix string) handler.HandlerFunc[C] {
	return MountFunc[C](srv, FixedPrefix(prefix))
}

// MountFunc is like Mount but asks prefix for the matched route prefix on
// every request.
func MountFunc[C handler.Context](srv *Server, prefix PrefixFunc) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			return srv.Serve(w, r, prefix(r))
		}
	}
}

// Handler returns a plain http.Handler. Declined requests go to notFound
// (http.NotFound when nil); other failures get a 500 if nothing was written.
func (s *Server) Handler(prefix PrefixFunc, notFound http.Handler) http.Handler {
	if notFound == nil {
		notFound = http.NotFoundHandler()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := handler.NewResponseWriter(w)
		err := s.Serve(ww, r, prefix(r))
		switch {
		case err == nil, ww.Written():
		case errors.Is(err, ErrNotHandled):
			notFound.ServeHTTP(ww, r)
		default:
			http.Error(ww, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	})
}
