// Package logger provides structured logging utilities built on Go's standard slog package.
//
// New builds a *slog.Logger from functional options, and the attribute helpers
// give common fields consistent keys across the module:
//
//	log := logger.New(
//		logger.WithProduction("fileserve"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("request served",
//		logger.Component("static"),
//		logger.Method(r.Method),
//		logger.Path(r.URL.Path),
//		logger.StatusCode(206),
//		logger.BytesOut(n),
//	)
//
// Helpers such as Error, RequestID and Query return an empty slog.Attr for
// nil or empty input, which slog omits from the output.
//
// Components that accept an optional *slog.Logger default to Discard().
package logger
