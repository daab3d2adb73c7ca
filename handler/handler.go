package handler

import (
	"errors"
	"net/http"
	"sync"

	"github.com/dmitrymomot/cookiekit/pkg/securecookie"
)

// HandlerFunc handles a request bound into R and returns a Response.
//
//	h := handler.HandlerFunc[handler.Context, LoginRequest](
//		func(ctx handler.Context, req LoginRequest) handler.Response {
//			if err := ctx.AddSecureCookie("uid", req.UserID, 86400); err != nil {
//				return handler.JSONError(err)
//			}
//			return handler.Empty()
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses an HTTP request into v.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc. The first decorator passed to
// WithDecorators is the outermost.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures Wrap.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders        []Bind
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	contextOptions []ContextOption
	decorators     []Decorator[C, R]
}

// WithBinders sets request binders applied in order. Binders returning
// ErrBinderNotApplicable are skipped.
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory. It is required when C
// is not handler.Context.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithContextOptions passes options to the default context factory, for
// example a shared secure cookie store.
func WithContextOptions[C Context, R any](opts ...ContextOption) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.contextOptions = append(c.contextOptions, opts...)
	}
}

// WithDecorators adds decorators around the handler.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// defaultErrorHandler writes the HTTPError status, or 500 for anything else.
// Internal error text is not sent to the client.
func defaultErrorHandler[C Context](ctx C, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
		return
	}
	http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
//	store, _ := securecookie.NewFromConfig(cfg)
//	r.Get("/profile", handler.Wrap(profile,
//		handler.WithContextOptions[handler.Context, ProfileRequest](
//			handler.WithSecureCookies(store),
//		),
//	))
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler: defaultErrorHandler[C],
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.contextFactory == nil {
		// One lazily built store per wrapped handler; WithSecureCookies in
		// the caller's options replaces it.
		shared := sync.OnceValue(func() *securecookie.Store { return securecookie.New(nil) })
		ctxOpts := append([]ContextOption{withStoreFactory(shared)}, cfg.contextOptions...)
		cfg.contextFactory = func(w http.ResponseWriter, r *http.Request) C {
			ctx := NewContext(w, r, ctxOpts...)
			if c, ok := any(ctx).(C); ok {
				return c
			}
			panic("cannot use default context factory with custom context type - provide WithContextFactory")
		}
	}

	final := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				if errors.Is(err, ErrBinderNotApplicable) {
					continue
				}
				cfg.errorHandler(ctx, err)
				return
			}
		}

		response := final(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
