// Package logger builds *slog.Logger instances with functional options,
// environment presets and attributes injected from context.Context.
//
// New picks slog.NewJSONHandler or slog.NewTextHandler, applies static
// attributes and wraps the result in LogHandlerDecorator, which runs every
// registered ContextExtractor when a record is handled. This is how request
// IDs reach log lines without being threaded through call sites.
//
// Attribute helpers (Error, Component, CookieName, KeyID, Reason, RequestID)
// keep key names consistent. Secret material never goes through them: log a
// KeyID, not a key, and a CookieName, not a cookie value.
//
// # Usage
//
//	import "github.com/dmitrymomot/cookiekit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "api"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor),
//	)
//	log.InfoContext(ctx, "cookie issued", logger.CookieName("uid"))
//
// WithHandler and WithSentry fan records out to additional destinations;
// WithSentry forwards warnings and errors to Sentry when a DSN is set.
//
// NewFromConfig reads the same settings from a Config loaded with pkg/config.
package logger
