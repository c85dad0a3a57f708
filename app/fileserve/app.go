// Package fileserve wires configuration, logging, the static file server,
// routing and the HTTP server into a runnable application.
package fileserve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/fileserve/core/config"
	"github.com/dmitrymomot/fileserve/core/logger"
	"github.com/dmitrymomot/fileserve/core/server"
	"github.com/dmitrymomot/fileserve/core/static"
)

type App struct {
	config Config
	router http.Handler
	static *static.Server
	server *server.Server
	logger *slog.Logger
}

type AppOption func(*App) error

// NewFromEnv loads Config from the environment (and .env) and calls New.
func NewFromEnv(opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// New builds the application. Components not supplied through options are
// created from cfg.
func New(cfg Config, opts ...AppOption) (*App, error) {
	app := &App{config: cfg}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		app.logger = newLogger(cfg)
	}

	if app.static == nil {
		staticOpts := []static.Option{static.WithLogger(app.logger)}
		if cfg.CacheControl != "" {
			staticOpts = append(staticOpts, static.WithHeaderSetter(cacheControl(cfg.CacheControl)))
		}
		srv, err := static.NewFromConfig(cfg.Static, staticOpts...)
		if err != nil {
			return nil, err
		}
		app.static = srv
	}

	if app.router == nil {
		app.router = newRouter(app.static, cfg, app.logger)
	}

	if app.server == nil {
		s, err := server.NewFromConfig(cfg.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	return app, nil
}

func WithLogger(logger *slog.Logger) AppOption {
	return func(app *App) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = logger
		return nil
	}
}

func WithStatic(srv *static.Server) AppOption {
	return func(app *App) error {
		if srv == nil {
			return errors.New("static server cannot be nil")
		}
		app.static = srv
		return nil
	}
}

func WithServer(server *server.Server) AppOption {
	return func(app *App) error {
		if server == nil {
			return errors.New("server cannot be nil")
		}
		app.server = server
		return nil
	}
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.router
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("serving files",
		slog.String("root", a.static.Root()),
		slog.String("prefix", a.config.Prefix),
		slog.String("addr", a.config.Server.Addr),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(a.server.Run(ctx, a.router))
	if err := g.Wait(); err != nil {
		return fmt.Errorf("fileserve: %w", err)
	}
	return nil
}

func newLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithAttr(
			slog.String("service", cfg.AppName),
			slog.String("env", cfg.Env),
		),
	}
	if strings.EqualFold(cfg.LogFormat, "json") {
		opts = append(opts, logger.WithJSONFormatter())
	} else {
		opts = append(opts, logger.WithTextFormatter())
	}
	return logger.New(opts...)
}

func cacheControl(value string) static.HeaderSetter {
	return static.HeaderSetterFunc(func(w http.ResponseWriter, _ string, _ static.FileInfo) {
		w.Header().Set("Cache-Control", value)
	})
}
