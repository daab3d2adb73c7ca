package cookie

import (
	"errors"
	"net/http"
	"time"
)

// Manager writes and reads plain cookies with a shared set of attributes.
// It is immutable and safe for concurrent use.
type Manager struct {
	defaults Options
}

// New creates a Manager. Defaults are Path "/", HttpOnly and SameSite=Lax.
// SameSite=None without Secure is rejected because browsers drop such cookies.
func New(opts ...Option) (*Manager, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.SameSite == http.SameSiteNoneMode && !o.Secure {
		return nil, ErrSameSiteNoneInsecure
	}

	return &Manager{defaults: o}, nil
}

// MustNew is like New but panics on invalid options.
func MustNew(opts ...Option) *Manager {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Options returns the attributes applied to written cookies.
func (m *Manager) Options() Options {
	return m.defaults
}

// Set writes a cookie. maxAge follows net/http: zero leaves Max-Age unset
// (a browser-session cookie), a negative value expires the cookie now.
func (m *Manager) Set(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, m.cookie(name, value, maxAge))
}

// Get returns the value of the named request cookie.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete expires the named cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	m.Set(w, name, "", -1)
}

func (m *Manager) cookie(name, value string, maxAge int) *http.Cookie {
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   maxAge,
		Secure:   m.defaults.Secure,
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
	}
	if maxAge < 0 {
		c.Expires = time.Unix(0, 0)
	}
	return c
}
