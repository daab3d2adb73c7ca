package requestid

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header is the default header carrying the request ID.
const Header = "X-Request-ID"

const maxIDLength = 128

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type contextKey struct{}

// WithContext returns a copy of ctx carrying id.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the request ID stored in ctx, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// LoggerExtractor adds a request_id attribute to log records.
func LoggerExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := FromContext(ctx); id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}

// Option configures the middleware built by New.
type Option func(*config)

type config struct {
	header   string
	generate func() string
}

// WithHeader changes the header read from the request and echoed in the
// response.
func WithHeader(name string) Option {
	return func(c *config) {
		if name != "" {
			c.header = name
		}
	}
}

// WithGenerator replaces the ID generator.
func WithGenerator(f func() string) Option {
	return func(c *config) {
		if f != nil {
			c.generate = f
		}
	}
}

// newID returns a time-ordered UUIDv7, falling back to v4.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// New returns middleware that accepts a well-formed incoming request ID or
// generates one, stores it in the request context and echoes it in the
// response headers.
func New(opts ...Option) func(http.Handler) http.Handler {
	cfg := config{header: Header, generate: newID}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(cfg.header)
			if !valid(id) {
				id = cfg.generate()
			}
			w.Header().Set(cfg.header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// Middleware is New with default options.
var Middleware = New()

func valid(id string) bool {
	return id != "" && len(id) <= maxIDLength && validID.MatchString(id)
}
