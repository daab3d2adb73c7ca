// Package requestid attaches a correlation ID to every HTTP request.
//
// The middleware reuses a well-formed incoming X-Request-ID header (letters,
// digits, '-' and '_', at most 128 characters) or generates a UUIDv7, stores
// it in the request context and echoes it back in the response:
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
// Plug LoggerExtractor into the logger so every record logged with the
// request context carries the ID:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor))
package requestid
