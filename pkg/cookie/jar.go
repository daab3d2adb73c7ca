package cookie

import (
	"net/http"
	"sync"
)

// Jar is the cookie view of a single request/response pair.
//
// Reads see cookies written earlier through the same Jar before falling back
// to the incoming request, so a handler that sets a cookie and reads it back
// gets the new value, and a deleted cookie reads as absent.
type Jar struct {
	m *Manager
	w http.ResponseWriter
	r *http.Request

	mu      sync.Mutex
	written map[string]entry
}

type entry struct {
	value  string
	maxAge int
}

// Jar binds the manager to one request/response pair.
func (m *Manager) Jar(w http.ResponseWriter, r *http.Request) *Jar {
	return &Jar{m: m, w: w, r: r}
}

// ReadCookie returns the named cookie's value and whether it is present.
func (j *Jar) ReadCookie(name string) (string, bool) {
	j.mu.Lock()
	c, ok := j.written[name]
	j.mu.Unlock()
	if ok {
		if c.maxAge < 0 {
			return "", false
		}
		return c.value, true
	}

	if j.r == nil {
		return "", false
	}
	value, err := j.m.Get(j.r, name)
	if err != nil {
		return "", false
	}
	return value, true
}

// WriteCookie adds a Set-Cookie header to the response.
func (j *Jar) WriteCookie(name, value string, maxAge int) {
	j.mu.Lock()
	if j.written == nil {
		j.written = make(map[string]entry)
	}
	j.written[name] = entry{value: value, maxAge: maxAge}
	j.mu.Unlock()

	if j.w != nil {
		j.m.Set(j.w, name, value, maxAge)
	}
}
