// Package handler adapts typed request handlers to net/http and gives them
// a per-request Context with plain and encrypted cookies.
//
// A HandlerFunc receives a Context and a request value populated by the
// configured binders, and returns a Response:
//
//	type VisitRequest struct{}
//
//	visits := func(ctx handler.Context, _ VisitRequest) handler.Response {
//		n, _ := strconv.Atoi(ctx.SecureCookieValueOr("visits", "0"))
//		if err := ctx.AddSecureCookie("visits", strconv.Itoa(n+1), 86400); err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(map[string]int{"visits": n + 1})
//	}
//
//	store, err := securecookie.NewFromConfig(cfg)
//	...
//	r.Get("/visits", handler.Wrap(visits,
//		handler.WithContextOptions[handler.Context, VisitRequest](
//			handler.WithSecureCookies(store),
//		),
//	))
//
// # Secure cookies
//
// AddSecureCookie encrypts and authenticates the value before writing it;
// SecureCookieValue reports a forged, tampered or stale cookie exactly like
// a missing one. The store is resolved lazily on the first secure-cookie
// call. Without WithSecureCookies every wrapped handler gets its own
// random key, so cookies written by one handler are unreadable by another
// and by any process restart. Pass a shared store built from configured
// secrets for anything beyond that.
//
// # Responses
//
// JSON, JSONP, XML, Text, Empty and Redirect cover the common cases.
// Errors returned from binders or Render go to the ErrorHandler; HTTPError
// values keep their status code.
package handler
