package static

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/dmitrymomot/fileserve/core/logger"
)

const indexFile = "index.html"

// Resolve maps an escaped request path under the matched route prefix to a
// candidate path below the serving root. The prefix is treated as if it ended
// in "/". Percent-decoding failures fall back to the raw remainder.
//
// It returns ErrOutsidePrefix when requestPath is not under prefix and
// ErrDirectoryRequest for directory requests while index serving is off.
// The result is not yet checked against the root; see WithinRoot.
func (s *Server) Resolve(requestPath, prefix string) (string, error) {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	if !strings.HasPrefix(requestPath, prefix) {
		return "", ErrOutsidePrefix
	}

	rest := requestPath[len(prefix):]
	decoded, err := url.PathUnescape(rest)
	if err != nil {
		s.logger.Warn("path decoding failed, using raw path",
			logger.Component(component),
			logger.Path(requestPath),
			logger.Error(err),
		)
		decoded = rest
	}

	candidate := strings.TrimSuffix(s.root, "/") + "/" + decoded
	if strings.HasSuffix(candidate, "/") {
		if !s.serveIndex {
			return "", ErrDirectoryRequest
		}
		candidate += indexFile
	}

	return candidate, nil
}

// probeExtensions tries candidate+"."+ext for each configured extension and
// returns the first existing regular file under the root.
func (s *Server) probeExtensions(candidate string) (string, FileInfo, bool) {
	for _, ext := range s.extensions {
		path, err := validatePathSecurity(s.absRoot, candidate+"."+ext)
		if err != nil {
			continue
		}
		if info, ok := s.prober.Probe(path); ok && !info.IsDir {
			s.logger.Debug("extension fallback matched",
				logger.Component(component),
				slog.String("extension", ext),
			)
			return path, info, true
		}
	}
	return "", FileInfo{}, false
}
