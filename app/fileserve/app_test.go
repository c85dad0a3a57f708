package fileserve_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fileserve/app/fileserve"
	"github.com/dmitrymomot/fileserve/core/logger"
	"github.com/dmitrymomot/fileserve/core/server"
	"github.com/dmitrymomot/fileserve/core/static"
)

func newRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "hello.txt"), []byte("hello world"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "index.html"), []byte("docs"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "about.html"), []byte("about"), 0o644))
	return root
}

func newConfig(root, prefix string) fileserve.Config {
	return fileserve.Config{
		Static: static.Config{
			Root:                root,
			Extensions:          []string{"html"},
			ServeIndex:          true,
			RedirectDirectories: true,
			AcceptRanges:        true,
		},
		Server:       server.DefaultConfig(),
		Prefix:          prefix,
		CacheControl:    "public, max-age=60",
		HealthEnabled:   true,
		SecurityHeaders: true,
		Env:             "development",
	}
}

func TestAppRoutes(t *testing.T) {
	t.Parallel()

	app, err := fileserve.New(newConfig(newRoot(t), "/assets"), fileserve.WithLogger(logger.Discard()))
	require.NoError(t, err)
	h := app.Handler()

	tests := []struct {
		name             string
		method           string
		target           string
		rangeHdr         string
		expectedStatus   int
		expectedBody     string
		expectedLocation string
	}{
		{name: "file", method: http.MethodGet, target: "/assets/hello.txt", expectedStatus: http.StatusOK, expectedBody: "hello world"},
		{name: "head", method: http.MethodHead, target: "/assets/hello.txt", expectedStatus: http.StatusOK},
		{name: "range", method: http.MethodGet, target: "/assets/hello.txt", rangeHdr: "bytes=6-", expectedStatus: http.StatusPartialContent, expectedBody: "world"},
		{name: "extension_fallback", method: http.MethodGet, target: "/assets/about", expectedStatus: http.StatusOK, expectedBody: "about"},
		{name: "index", method: http.MethodGet, target: "/assets/docs/", expectedStatus: http.StatusOK, expectedBody: "docs"},
		{name: "directory_redirect", method: http.MethodGet, target: "/assets/docs?x=1", expectedStatus: http.StatusMovedPermanently, expectedLocation: "/assets/docs/?x=1"},
		{name: "missing", method: http.MethodGet, target: "/assets/nope.txt", expectedStatus: http.StatusNotFound},
		{name: "traversal", method: http.MethodGet, target: "/assets/%2e%2e/secret", expectedStatus: http.StatusNotFound},
		{name: "outside_prefix", method: http.MethodGet, target: "/hello.txt", expectedStatus: http.StatusNotFound},
		{name: "method_not_allowed", method: http.MethodPost, target: "/assets/hello.txt", expectedStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.rangeHdr != "" {
				req.Header.Set("Range", tt.rangeHdr)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, w.Header().Get("Location"))
			}
		})
	}
}

func TestAppHeaders(t *testing.T) {
	t.Parallel()

	app, err := fileserve.New(newConfig(newRoot(t), "/"), fileserve.WithLogger(logger.Discard()))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	app.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hello.txt", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=60", w.Header().Get("Cache-Control"))
	assert.Equal(t, "bytes", w.Header().Get("Accept-Ranges"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestAppHealth(t *testing.T) {
	t.Parallel()

	root := newRoot(t)
	app, err := fileserve.New(newConfig(root, "/"), fileserve.WithLogger(logger.Discard()))
	require.NoError(t, err)
	h := app.Handler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ALIVE", w.Body.String())

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "READY", w.Body.String())

	require.NoError(t, os.RemoveAll(root))

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAppHealthDisabled(t *testing.T) {
	t.Parallel()

	cfg := newConfig(newRoot(t), "/")
	cfg.HealthEnabled = false
	app, err := fileserve.New(cfg, fileserve.WithLogger(logger.Discard()))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	app.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewErrors(t *testing.T) {
	t.Parallel()

	_, err := fileserve.New(newConfig(filepath.Join(t.TempDir(), "missing"), "/"), fileserve.WithLogger(logger.Discard()))
	require.Error(t, err)

	_, err = fileserve.New(newConfig(newRoot(t), "/"), fileserve.WithLogger(nil))
	require.Error(t, err)

	cfg := newConfig(newRoot(t), "/")
	cfg.Server.Addr = ""
	_, err = fileserve.New(cfg, fileserve.WithLogger(logger.Discard()))
	require.ErrorIs(t, err, server.ErrMissingAddress)
}

func TestNewFromEnv(t *testing.T) {
	root := newRoot(t)
	t.Setenv("STATIC_ROOT", root)
	t.Setenv("STATIC_PREFIX", "/files")
	t.Setenv("STATIC_EXTENSIONS", "html")
	t.Setenv("LOG_FORMAT", "json")

	app, err := fileserve.NewFromEnv(fileserve.WithLogger(logger.Discard()))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	app.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files/about", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "about", w.Body.String())
	assert.Empty(t, w.Header().Get("Cache-Control"))
}

func TestAppCORS(t *testing.T) {
	t.Parallel()

	cfg := newConfig(newRoot(t), "/assets")
	cfg.CORSEnabled = true
	cfg.CORSOrigins = []string{"https://app.example"}
	app, err := fileserve.New(cfg, fileserve.WithLogger(logger.Discard()))
	require.NoError(t, err)
	h := app.Handler()

	req := httptest.NewRequest(http.MethodOptions, "/assets/hello.txt", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Range")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/assets/hello.txt", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Range", "bytes=0-4")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusPartialContent, w.Code)
	assert.Equal(t, "hello", w.Body.String())
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Content-Range")

	// Plain OPTIONS, no Access-Control-Request-Method.
	req = httptest.NewRequest(http.MethodOptions, "/assets/hello.txt", nil)
	req.Header.Set("Origin", "https://app.example")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "GET, HEAD, OPTIONS", w.Header().Get("Allow"))
	assert.Empty(t, w.Header().Get("Content-Length"))
	assert.Empty(t, w.Header().Get("Accept-Ranges"))
}
