package handler

import "net/http"

// CORS returns a decorator that allows cross-origin requests from origin.
// Preflight OPTIONS requests are answered with 204 without calling the
// handler. allowCredentials adds Access-Control-Allow-Credentials, which
// browsers ignore when origin is "*".
func CORS[C Context, R any](origin string, allowCredentials bool) Decorator[C, R] {
	return func(next HandlerFunc[C, R]) HandlerFunc[C, R] {
		return func(ctx C, req R) Response {
			h := ctx.ResponseWriter().Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Headers", "Content-Type")
			if origin != "*" {
				h.Add("Vary", "Origin")
			}
			if allowCredentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}

			if Method(ctx.Request()) == MethodOptions {
				h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				return Empty()
			}
			return next(ctx, req)
		}
	}
}
