package static

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fileserve/core/logger"
)

const component = "static"

// Server resolves request paths to files under a serving root and sends
// them, honouring byte-range requests. Its configuration is fixed at
// construction, so a Server is safe for concurrent use.
type Server struct {
	root         string
	absRoot      string
	extensions   []string
	serveIndex   bool
	redirectDirs bool
	acceptRanges bool

	headers      HeaderSetter
	contentTypes ContentTypeResolver
	prober       Prober
	boundary     func() string
	logger       *slog.Logger
}

// New creates a Server for root. Index serving, directory redirects and
// range support are enabled by default. It fails if root is not an
// existing directory.
func New(root string, opts ...Option) (*Server, error) {
	s := &Server{
		root:         filepath.Clean(root),
		serveIndex:   true,
		redirectDirs: true,
		acceptRanges: true,
		contentTypes: ExtensionContentTypes,
		prober:       osProber{},
		boundary:     uuid.NewString,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}
	s.extensions = slices.Clone(s.extensions)

	if err := validateStartup(s.root); err != nil {
		return nil, fmt.Errorf("static: %w", err)
	}

	abs, err := filepath.Abs(s.root)
	if err != nil {
		return nil, fmt.Errorf("static: resolve root: %w", err)
	}
	s.absRoot = abs

	return s, nil
}

// NewFromConfig creates a Server from cfg. Options are applied after the
// config values and may override them.
func NewFromConfig(cfg Config, opts ...Option) (*Server, error) {
	configOpts := []Option{
		WithExtensions(cfg.Extensions...),
		WithServeIndex(cfg.ServeIndex),
		WithRedirectOnDirectory(cfg.RedirectDirectories),
		WithAcceptRanges(cfg.AcceptRanges),
	}
	return New(cfg.Root, append(configOpts, opts...)...)
}

// Root returns the serving root as configured.
func (s *Server) Root() string {
	return s.root
}

// Check reports whether the serving root is still an accessible directory.
// It fits health.Readiness.
func (s *Server) Check(context.Context) error {
	if err := validateStartup(s.root); err != nil {
		return fmt.Errorf("static: %w", err)
	}
	return nil
}

// Serve handles one request whose route matched prefix.
//
// Declined requests (outside the prefix or the root, missing files,
// directories that are not redirected) return an error matching
// ErrNotHandled with nothing written. A failed directory redirect returns a
// *RedirectError and a failed full-body send returns a *ReadError.
func (s *Server) Serve(w http.ResponseWriter, r *http.Request, prefix string) error {
	requestPath := r.URL.EscapedPath()

	candidate, err := s.Resolve(requestPath, prefix)
	if err != nil {
		return declined(err)
	}

	path, err := validatePathSecurity(s.absRoot, candidate)
	if err != nil {
		s.logger.DebugContext(r.Context(), "rejected path outside root",
			logger.Component(component),
			logger.Path(requestPath),
		)
		return declined(err)
	}

	info, ok := s.prober.Probe(path)
	switch {
	case ok && info.IsDir:
		return s.serveDirectory(w, r, requestPath)
	case !ok:
		if path, info, ok = s.probeExtensions(path); !ok {
			return declined(ErrNotFound)
		}
	}

	return s.serveFile(w, r, path, info)
}

// serveFile sends an existing regular file, choosing between the full body,
// a single range and a multipart/byteranges response. No header is set until
// the file is open.
func (s *Server) serveFile(w http.ResponseWriter, r *http.Request, path string, info FileInfo) error {
	f, err := os.Open(path)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "failed to open file",
			logger.Component(component),
			logger.Path(r.URL.Path),
			logger.Error(err),
		)
		return &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	h := w.Header()
	if s.acceptRanges {
		h.Set("Accept-Ranges", rangeUnit)
	} else {
		h.Set("Accept-Ranges", "none")
	}

	if s.headers != nil {
		s.headers.SetHeaders(w, path, info)
	}

	contentType := h.Get("Content-Type")
	if contentType == "" && s.contentTypes != nil {
		contentType = s.contentTypes.ContentType(path)
	}

	// HEAD never produces partial content.
	if r.Method == http.MethodGet && s.acceptRanges {
		if header := r.Header.Get("Range"); header != "" {
			if req, ok := ParseRange(header, info.Size); ok {
				switch {
				case len(req.Ranges) == 1:
					return s.serveSingleRange(w, r, f, info, contentType, req.Ranges[0])
				case multipartAllowed(req.Ranges):
					return s.serveMultiRange(w, f, info, contentType, req.Ranges)
				}
				s.logger.DebugContext(r.Context(), "multipart range request over limits, sending full body",
					logger.Component(component),
					logger.Path(r.URL.Path),
					slog.Int("ranges", len(req.Ranges)),
				)
			}
		}
	}

	return s.serveFull(w, r, f, info, contentType)
}

// setContentType sets the Content-Type or, when unknown, suppresses the
// type net/http would otherwise sniff from the body.
func setContentType(h http.Header, contentType string) {
	if contentType == "" {
		h["Content-Type"] = nil
		return
	}
	h.Set("Content-Type", contentType)
}

// serveFull streams the whole file with status 200. HEAD gets headers only.
func (s *Server) serveFull(w http.ResponseWriter, r *http.Request, f *os.File, info FileInfo, contentType string) error {
	h := w.Header()
	setContentType(h, contentType)
	h.Set("Content-Length", strconv.FormatUint(info.Size, 10))

	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return nil
	}

	if _, err := io.Copy(w, f); err != nil {
		s.logger.ErrorContext(r.Context(), "failed to send file",
			logger.Component(component),
			logger.Path(r.URL.Path),
			logger.Error(err),
		)
		return &ReadError{Path: f.Name(), Err: err}
	}
	return nil
}
