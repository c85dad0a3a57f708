package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fileserve/core/handler"
	"github.com/dmitrymomot/fileserve/middleware"
)

func TestRequestIDDefaultConfiguration(t *testing.T) {
	t.Parallel()

	var capturedID string
	h := func(ctx *handler.RequestContext) handler.Response {
		id, ok := middleware.GetRequestID(ctx)
		assert.True(t, ok, "Request ID should be present in context")
		capturedID = id
		return func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusOK)
			return nil
		}
	}

	srv := handler.ToHTTP(h, nil, handler.WithMiddleware(middleware.RequestID[*handler.RequestContext]()))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, capturedID, "Request ID should be generated")
	assert.Equal(t, capturedID, w.Header().Get("X-Request-ID"), "Request ID should be in response header")
	assert.Len(t, capturedID, 36, "Default ID should be UUID v4 format")
}

func TestRequestIDWithConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cfg        middleware.RequestIDConfig
		incoming   string
		header     string
		expectedID string
	}{
		{
			name:       "custom_generator",
			cfg:        middleware.RequestIDConfig{Generator: func() string { return "custom-123" }},
			header:     "X-Request-ID",
			expectedID: "custom-123",
		},
		{
			name:       "reuse_existing",
			cfg:        middleware.RequestIDConfig{UseExisting: true, Generator: func() string { return "generated" }},
			incoming:   "client-id",
			header:     "X-Request-ID",
			expectedID: "client-id",
		},
		{
			name:       "reject_existing_with_spaces",
			cfg:        middleware.RequestIDConfig{UseExisting: true, Generator: func() string { return "generated" }},
			incoming:   "client id",
			header:     "X-Request-ID",
			expectedID: "generated",
		},
		{
			name:       "reject_existing_non_ascii",
			cfg:        middleware.RequestIDConfig{UseExisting: true, Generator: func() string { return "generated" }},
			incoming:   "id-\u00e9",
			header:     "X-Request-ID",
			expectedID: "generated",
		},
		{
			name:       "reject_existing_too_long",
			cfg:        middleware.RequestIDConfig{UseExisting: true, Generator: func() string { return "generated" }},
			incoming:   strings.Repeat("a", 129),
			header:     "X-Request-ID",
			expectedID: "generated",
		},
		{
			name:       "accept_existing_at_limit",
			cfg:        middleware.RequestIDConfig{UseExisting: true, Generator: func() string { return "generated" }},
			incoming:   strings.Repeat("a", 128),
			header:     "X-Request-ID",
			expectedID: strings.Repeat("a", 128),
		},
		{
			name:       "ignore_existing_by_default",
			cfg:        middleware.RequestIDConfig{Generator: func() string { return "generated" }},
			incoming:   "client-id",
			header:     "X-Request-ID",
			expectedID: "generated",
		},
		{
			name:       "custom_header",
			cfg:        middleware.RequestIDConfig{HeaderName: "X-Trace", Generator: func() string { return "trace-1" }},
			header:     "X-Trace",
			expectedID: "trace-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var capturedID string
			h := func(ctx *handler.RequestContext) handler.Response {
				capturedID, _ = middleware.GetRequestID(ctx)
				return func(w http.ResponseWriter, r *http.Request) error {
					return nil
				}
			}
			srv := handler.ToHTTP(h, nil, handler.WithMiddleware(middleware.RequestIDWithConfig[*handler.RequestContext](tt.cfg)))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(tt.header, tt.incoming)
			}
			w := httptest.NewRecorder()
			srv.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedID, capturedID)
			assert.Equal(t, tt.expectedID, w.Header().Get(tt.header))
		})
	}
}

func TestRequestIDSkip(t *testing.T) {
	t.Parallel()

	var present bool
	h := func(ctx *handler.RequestContext) handler.Response {
		_, present = middleware.GetRequestID(ctx)
		return func(w http.ResponseWriter, r *http.Request) error { return nil }
	}
	mw := middleware.RequestIDWithConfig[*handler.RequestContext](middleware.RequestIDConfig{
		Skip: func(ctx handler.Context) bool { return true },
	})
	srv := handler.ToHTTP(h, nil, handler.WithMiddleware(mw))

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, present)
	assert.Empty(t, w.Header().Get("X-Request-ID"))
}
