package static

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/fileserve/core/handler"
)

// serveDirectory handles a request whose resolved path is an existing
// directory: redirect to the slash-terminated URL, or decline.
func (s *Server) serveDirectory(w http.ResponseWriter, r *http.Request, requestPath string) error {
	// A slash-terminated request that still lands on a directory would redirect to itself.
	if !s.redirectDirs || strings.HasSuffix(requestPath, "/") {
		return declined(ErrDirectory)
	}

	// "//host" and "/\host" are network-path references to browsers; keep
	// the target on this host.
	target := "/" + strings.TrimLeft(requestPath, "/\\") + "/"
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	if _, err := url.Parse(target); err != nil {
		return &RedirectError{Path: target, Err: err}
	}
	if handler.Written(w) {
		return &RedirectError{Path: target, Err: ErrResponseStarted}
	}

	http.Redirect(w, r, target, http.StatusMovedPermanently)
	return nil
}
