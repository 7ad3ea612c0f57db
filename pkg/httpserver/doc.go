// Package httpserver runs an http.Handler until its context is cancelled,
// then shuts down gracefully.
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// Config binds HTTP_ADDR and the HTTP_*_TIMEOUT variables through
// pkg/config. HealthCheckHandler serves liveness and readiness probes.
package httpserver
