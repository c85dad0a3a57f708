// Package server wraps net/http.Server with functional options, environment
// configuration and graceful shutdown.
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	return g.Wait()
package server
