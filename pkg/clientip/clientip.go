package clientip

import (
	"net"
	"net/http"
	"strings"
)

// DefaultHeaders lists the proxy headers trusted by Resolve, highest
// priority first.
var DefaultHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// Resolver extracts client IPs using an ordered list of trusted headers.
type Resolver struct {
	headers []string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHeaders replaces the trusted header list. Passing no headers makes the
// resolver use RemoteAddr only.
func WithHeaders(headers ...string) Option {
	return func(r *Resolver) {
		r.headers = append([]string(nil), headers...)
	}
}

// New creates a Resolver trusting DefaultHeaders unless overridden.
func New(opts ...Option) *Resolver {
	r := &Resolver{headers: DefaultHeaders}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = New()

// Resolve returns the client IP of r using DefaultHeaders.
func Resolve(r *http.Request) string {
	return defaultResolver.Resolve(r)
}

// Resolve returns the normalized client IP of req, or "" if none is valid.
// Comma-separated header values yield their first valid entry.
func (res *Resolver) Resolve(req *http.Request) string {
	for _, h := range res.headers {
		v := req.Header.Get(h)
		if v == "" {
			continue
		}
		for candidate := range strings.SplitSeq(v, ",") {
			if ip := normalize(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return normalize(req.RemoteAddr)
	}
	return normalize(host)
}

func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
