package static

import (
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// Config holds environment-driven settings for a Server.
// Load it with core/config and pass it to NewFromConfig.
type Config struct {
	Root                string   `env:"STATIC_ROOT,required"`
	Extensions          []string `env:"STATIC_EXTENSIONS" envSeparator:","`
	ServeIndex          bool     `env:"STATIC_SERVE_INDEX" envDefault:"true"`
	RedirectDirectories bool     `env:"STATIC_REDIRECT_DIRECTORIES" envDefault:"true"`
	AcceptRanges        bool     `env:"STATIC_ACCEPT_RANGES" envDefault:"true"`
}

// HeaderSetter customizes response headers for a file about to be served.
// It runs at most once per response, after Accept-Ranges is set and before
// any body is written. A Content-Type it sets takes precedence over the
// ContentTypeResolver.
type HeaderSetter interface {
	SetHeaders(w http.ResponseWriter, path string, info FileInfo)
}

// HeaderSetterFunc adapts a function to the HeaderSetter interface.
type HeaderSetterFunc func(w http.ResponseWriter, path string, info FileInfo)

// SetHeaders calls f(w, path, info).
func (f HeaderSetterFunc) SetHeaders(w http.ResponseWriter, path string, info FileInfo) {
	f(w, path, info)
}

// ContentTypeResolver maps a file path to a MIME type. An empty result
// means no Content-Type is sent.
type ContentTypeResolver interface {
	ContentType(path string) string
}

// ContentTypeFunc adapts a function to the ContentTypeResolver interface.
type ContentTypeFunc func(path string) string

// ContentType calls f(path).
func (f ContentTypeFunc) ContentType(path string) string {
	return f(path)
}

// ExtensionContentTypes resolves MIME types from the file extension.
var ExtensionContentTypes ContentTypeResolver = ContentTypeFunc(func(path string) string {
	return mime.TypeByExtension(filepath.Ext(path))
})

// Option configures a Server at construction time.
type Option func(*Server)

// WithExtensions sets the fallback extensions tried, in order, when the
// resolved path does not exist. A leading dot is optional.
func WithExtensions(exts ...string) Option {
	return func(s *Server) {
		s.extensions = make([]string, 0, len(exts))
		for _, ext := range exts {
			ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
			if ext != "" {
				s.extensions = append(s.extensions, ext)
			}
		}
	}
}

// WithServeIndex controls whether directory requests (paths ending in "/")
// are answered with the directory's index.html. Enabled by default.
func WithServeIndex(enabled bool) Option {
	return func(s *Server) {
		s.serveIndex = enabled
	}
}

// WithRedirectOnDirectory controls whether a request resolving to a directory
// is redirected to the same path with a trailing slash. Enabled by default.
func WithRedirectOnDirectory(enabled bool) Option {
	return func(s *Server) {
		s.redirectDirs = enabled
	}
}

// WithAcceptRanges controls byte-range support. When disabled the server
// advertises "Accept-Ranges: none" and always sends the full body.
func WithAcceptRanges(enabled bool) Option {
	return func(s *Server) {
		s.acceptRanges = enabled
	}
}

// WithHeaderSetter installs a hook for caller-defined response headers.
func WithHeaderSetter(h HeaderSetter) Option {
	return func(s *Server) {
		s.headers = h
	}
}

// WithContentTypes replaces ExtensionContentTypes. Passing nil disables
// Content-Type detection.
func WithContentTypes(r ContentTypeResolver) Option {
	return func(s *Server) {
		s.contentTypes = r
	}
}

// WithLogger sets the logger for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBoundary replaces the multipart boundary generator.
// Boundaries must be unique per response and not guessable from content.
func WithBoundary(gen func() string) Option {
	return func(s *Server) {
		if gen != nil {
			s.boundary = gen
		}
	}
}

// WithProber replaces the filesystem probe used for existence checks.
func WithProber(p Prober) Option {
	return func(s *Server) {
		if p != nil {
			s.prober = p
		}
	}
}
