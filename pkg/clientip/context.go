package clientip

import (
	"context"
	"log/slog"
	"net/http"
)

type contextKey struct{}

// WithIP returns a copy of ctx carrying ip.
func WithIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the IP stored by Middleware.
func FromContext(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(contextKey{}).(string)
	return ip, ok && ip != ""
}

// Middleware resolves the client IP once and stores it in the request
// context.
func (res *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithIP(r.Context(), res.Resolve(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Middleware is the default Resolver's middleware.
func Middleware(next http.Handler) http.Handler {
	return defaultResolver.Middleware(next)
}

// LoggerExtractor adds a client_ip attribute to log records.
func LoggerExtractor(ctx context.Context) (slog.Attr, bool) {
	ip, ok := FromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("client_ip", ip), true
}
