package fileserve

import (
	"github.com/dmitrymomot/fileserve/core/server"
	"github.com/dmitrymomot/fileserve/core/static"
)

type Config struct {
	Static static.Config
	Server server.Config

	// Prefix is the route prefix the files are served under.
	Prefix string `env:"STATIC_PREFIX" envDefault:"/"`
	// CacheControl, when set, is sent with every file response.
	CacheControl string `env:"STATIC_CACHE_CONTROL"`

	// HealthEnabled mounts /health/live and /health/ready.
	HealthEnabled bool `env:"HEALTH_ENABLED" envDefault:"true"`
	// SecurityHeaders adds nosniff and related headers to file responses.
	SecurityHeaders bool `env:"SECURITY_HEADERS" envDefault:"true"`

	// CORSEnabled lets browsers on other origins read files, ranged reads included.
	CORSEnabled bool     `env:"CORS_ENABLED" envDefault:"false"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	AppName   string `env:"APP_NAME" envDefault:"fileserve"`
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}
