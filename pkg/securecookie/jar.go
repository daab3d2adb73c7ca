package securecookie

import "sync"

// CookieReader reads a cookie from the incoming request.
type CookieReader interface {
	// ReadCookie returns the raw value and whether the cookie is present.
	ReadCookie(name string) (string, bool)
}

// CookieWriter writes a cookie to the outgoing response.
type CookieWriter interface {
	WriteCookie(name, value string, maxAge int)
}

// CookieJar reads and writes cookies for one request/response pair.
// *cookie.Jar implements it for net/http.
type CookieJar interface {
	CookieReader
	CookieWriter
}

// MemoryJar is an in-memory CookieJar. A negative maxAge removes the cookie,
// mirroring what a browser does with an expired Set-Cookie.
type MemoryJar struct {
	mu      sync.Mutex
	cookies map[string]MemoryCookie
}

// MemoryCookie is one entry of a MemoryJar.
type MemoryCookie struct {
	Value  string
	MaxAge int
}

// NewMemoryJar returns an empty jar.
func NewMemoryJar() *MemoryJar {
	return &MemoryJar{cookies: make(map[string]MemoryCookie)}
}

func (j *MemoryJar) ReadCookie(name string) (string, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	c, ok := j.cookies[name]
	return c.Value, ok
}

func (j *MemoryJar) WriteCookie(name, value string, maxAge int) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if maxAge < 0 {
		delete(j.cookies, name)
		return
	}
	j.cookies[name] = MemoryCookie{Value: value, MaxAge: maxAge}
}

// Cookie returns the stored entry for name.
func (j *MemoryJar) Cookie(name string) (MemoryCookie, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	c, ok := j.cookies[name]
	return c, ok
}
