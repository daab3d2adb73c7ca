package handler

import (
	"context"
	"net/http"
	"sync"

	"github.com/dmitrymomot/cookiekit/pkg/clientip"
	"github.com/dmitrymomot/cookiekit/pkg/cookie"
	"github.com/dmitrymomot/cookiekit/pkg/securecookie"
)

// Context is the per-request value passed to every HandlerFunc. It carries
// the request's context.Context and gives access to plain and secure
// cookies of the current request/response pair.
type Context interface {
	context.Context

	Request() *http.Request
	ResponseWriter() http.ResponseWriter

	// ClientIP returns the resolved address of the remote client.
	ClientIP() string

	AddCookie(name, value string, maxAge int)
	CookieValue(name string) (string, bool)
	CookieValueOr(name, defaultValue string) string
	DeleteCookie(name string)

	// AddSecureCookie encrypts value into cookie name. maxAge follows
	// net/http: zero is a browser-session cookie, negative deletes.
	AddSecureCookie(name, value string, maxAge int) error
	// SecureCookieValue reports false for missing, forged and stale cookies
	// alike.
	SecureCookieValue(name string) (string, bool)
	SecureCookieValueOr(name, defaultValue string) string
}

// ContextOption configures contexts built by NewContext.
type ContextOption func(*requestContext)

// WithCookieManager sets the manager supplying cookie attributes.
func WithCookieManager(m *cookie.Manager) ContextOption {
	return func(c *requestContext) {
		if m != nil {
			c.cookies = m
		}
	}
}

// WithSecureCookies sets the store used for secure cookies. Share one store
// between handlers so cookies set by one are readable by the others.
func WithSecureCookies(s *securecookie.Store) ContextOption {
	return func(c *requestContext) {
		if s != nil {
			c.newStore = func() *securecookie.Store { return s }
		}
	}
}

// WithClientIPResolver sets the resolver behind ClientIP.
func WithClientIPResolver(r *clientip.Resolver) ContextOption {
	return func(c *requestContext) {
		if r != nil {
			c.resolver = r
		}
	}
}

// withStoreFactory is used by Wrap to share one lazily built store across
// all requests of a wrapped handler.
func withStoreFactory(f func() *securecookie.Store) ContextOption {
	return func(c *requestContext) {
		c.newStore = f
	}
}

var defaultCookieManager = sync.OnceValue(func() *cookie.Manager {
	return cookie.MustNew()
})

type requestContext struct {
	context.Context

	w        http.ResponseWriter
	r        *http.Request
	cookies  *cookie.Manager
	resolver *clientip.Resolver

	jarOnce sync.Once
	jar     *cookie.Jar

	newStore  func() *securecookie.Store
	storeOnce sync.Once
	store     *securecookie.Store
}

// NewContext creates a Context for w and r. Without WithSecureCookies the
// context builds its own zero-config store on first use, so secure cookies
// it writes cannot be read back by later requests.
func NewContext(w http.ResponseWriter, r *http.Request, opts ...ContextOption) Context {
	c := &requestContext{
		Context: r.Context(),
		w:       w,
		r:       r,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cookies == nil {
		c.cookies = defaultCookieManager()
	}
	if c.newStore == nil {
		c.newStore = func() *securecookie.Store { return securecookie.New(nil) }
	}
	return c
}

func (c *requestContext) Request() *http.Request {
	return c.r
}

func (c *requestContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

func (c *requestContext) ClientIP() string {
	if ip, ok := clientip.FromContext(c.r.Context()); ok {
		return ip
	}
	if c.resolver != nil {
		return c.resolver.Resolve(c.r)
	}
	return clientip.Resolve(c.r)
}

func (c *requestContext) AddCookie(name, value string, maxAge int) {
	c.cookieJar().WriteCookie(name, value, maxAge)
}

func (c *requestContext) CookieValue(name string) (string, bool) {
	return c.cookieJar().ReadCookie(name)
}

func (c *requestContext) CookieValueOr(name, defaultValue string) string {
	if v, ok := c.CookieValue(name); ok {
		return v
	}
	return defaultValue
}

func (c *requestContext) DeleteCookie(name string) {
	c.cookieJar().WriteCookie(name, "", -1)
}

func (c *requestContext) AddSecureCookie(name, value string, maxAge int) error {
	return c.secureStore().Add(c.cookieJar(), name, value, maxAge)
}

func (c *requestContext) SecureCookieValue(name string) (string, bool) {
	return c.secureStore().Value(c.cookieJar(), name)
}

func (c *requestContext) SecureCookieValueOr(name, defaultValue string) string {
	return c.secureStore().ValueOr(c.cookieJar(), name, defaultValue)
}

func (c *requestContext) cookieJar() *cookie.Jar {
	c.jarOnce.Do(func() {
		c.jar = c.cookies.Jar(c.w, c.r)
	})
	return c.jar
}

func (c *requestContext) secureStore() *securecookie.Store {
	c.storeOnce.Do(func() {
		c.store = c.newStore()
	})
	return c.store
}
