// Package clientip resolves the originating client address of an HTTP
// request.
//
// A Resolver consults a configurable, ordered list of proxy headers and
// falls back to the connection's RemoteAddr. The zero-config Resolve
// function trusts the common headers set by Cloudflare, DigitalOcean App
// Platform and nginx:
//
//	ip := clientip.Resolve(r)
//
// Behind a proxy that sets only X-Forwarded-For, narrow the list so clients
// cannot spoof the other headers:
//
//	res := clientip.New(clientip.WithHeaders("X-Forwarded-For"))
//	r.Use(res.Middleware)
//
// Values that are not valid IP addresses are skipped. An empty string is
// returned when nothing usable is found.
package clientip
