package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/fileserve/core/handler"
	"github.com/dmitrymomot/fileserve/core/logger"
)

// Readiness runs every check in order. It returns "READY" when all pass and
// 503 "NOT READY" on the first failure.
func Readiness[C handler.Context](log *slog.Logger, checks ...func(context.Context) error) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed",
					logger.Component("health"),
					logger.Error(err),
				)
				return text(http.StatusServiceUnavailable, "NOT READY")
			}
		}

		return text(http.StatusOK, "READY")
	}
}
