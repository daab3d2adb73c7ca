// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run returns after ctx is cancelled or SIGINT/SIGTERM is received, once
// in-flight requests have finished or the shutdown timeout has elapsed.
package httpserver
