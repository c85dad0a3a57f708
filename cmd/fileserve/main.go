package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/fileserve/app/fileserve"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := fileserve.NewFromEnv()
	if err != nil {
		slog.Error("failed to initialize", slog.Any("error", err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		slog.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}
