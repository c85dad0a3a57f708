package static_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fileserve/core/static"
)

// newSite builds a serving root with a sibling directory that shares its
// name as a prefix, and returns the root.
func newSite(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	root := filepath.Join(base, "www")

	files := map[string]string{
		"index.html":          "<h1>home</h1>",
		"hello.txt":           "hello world",
		"page.html":           "html page",
		"page.htm":            "htm page",
		"guide.htm":           "guide htm",
		"docs/index.html":     "docs index",
		"data.unknownext":     "raw",
		"../www-evil/secret":  "secret",
		"docs/guide/notes.md": "notes",
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	// Directories that look like files.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "guide.html"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub", "index.html"), 0o755))

	return root
}

func newServer(t *testing.T, root string, opts ...static.Option) *static.Server {
	t.Helper()

	srv, err := static.New(root, opts...)
	require.NoError(t, err)
	return srv
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// serve runs one request through srv with the given route prefix.
func serve(srv *static.Server, method, target, prefix string, header http.Header) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	err := srv.Serve(rec, req, prefix)
	return rec, err
}

func rangeHeader(v string) http.Header {
	return http.Header{"Range": []string{v}}
}
