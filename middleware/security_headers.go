package middleware

import (
	"maps"
	"net/http"

	"github.com/dmitrymomot/fileserve/core/handler"
)

// SecurityHeadersConfig configures the security headers middleware.
// Empty fields are not sent.
type SecurityHeadersConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	ContentTypeOptions        string
	FrameOptions              string
	ContentSecurityPolicy     string
	ReferrerPolicy            string
	StrictTransportSecurity   string
	CrossOriginResourcePolicy string

	// CustomHeaders are sent as-is and win over the fields above.
	CustomHeaders map[string]string

	// IsDevelopment drops Strict-Transport-Security.
	IsDevelopment bool
}

var (
	// AssetSecurity suits publicly served files that other sites may embed.
	AssetSecurity = SecurityHeadersConfig{
		ContentTypeOptions:        "nosniff",
		ReferrerPolicy:            "strict-origin-when-cross-origin",
		StrictTransportSecurity:   "max-age=31536000; includeSubDomains",
		CrossOriginResourcePolicy: "cross-origin",
	}

	// SiteSecurity suits a static site served from its own origin.
	SiteSecurity = SecurityHeadersConfig{
		ContentTypeOptions:        "nosniff",
		FrameOptions:              "SAMEORIGIN",
		ContentSecurityPolicy:     "default-src 'self'; img-src 'self' data: https:; style-src 'self' 'unsafe-inline'",
		ReferrerPolicy:            "strict-origin-when-cross-origin",
		StrictTransportSecurity:   "max-age=31536000; includeSubDomains",
		CrossOriginResourcePolicy: "same-origin",
	}
)

// SecurityHeaders applies AssetSecurity.
func SecurityHeaders[C handler.Context]() handler.Middleware[C] {
	return SecurityHeadersWithConfig[C](AssetSecurity)
}

// SecurityHeadersWithConfig sets the configured headers before the wrapped
// response is rendered, so they also appear on redirects and partial content.
func SecurityHeadersWithConfig[C handler.Context](cfg SecurityHeadersConfig) handler.Middleware[C] {
	if cfg.IsDevelopment {
		cfg.StrictTransportSecurity = ""
	}

	headers := make(map[string]string)
	set := func(name, value string) {
		if value != "" {
			headers[name] = value
		}
	}
	set("X-Content-Type-Options", cfg.ContentTypeOptions)
	set("X-Frame-Options", cfg.FrameOptions)
	set("Content-Security-Policy", cfg.ContentSecurityPolicy)
	set("Referrer-Policy", cfg.ReferrerPolicy)
	set("Strict-Transport-Security", cfg.StrictTransportSecurity)
	set("Cross-Origin-Resource-Policy", cfg.CrossOriginResourcePolicy)
	maps.Copy(headers, cfg.CustomHeaders)

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			response := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				for key, value := range headers {
					w.Header().Set(key, value)
				}
				return response(w, r)
			}
		}
	}
}
