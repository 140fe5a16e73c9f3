// Package server runs an http.Handler until a context is cancelled and then
// shuts it down gracefully.
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	return srv.Run(ctx, router)
//
// Run returns nil after a clean shutdown, so it composes with errgroup:
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(func() error { return srv.Run(ctx, router) })
//
// HTTPS is enabled by WithTLS or by setting SERVER_TLS_CERT_FILE and
// SERVER_TLS_KEY_FILE.
package server
