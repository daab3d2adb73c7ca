// Package cookie reads and writes plain HTTP cookies with consistent
// attributes.
//
// A Manager carries default attributes (Path "/", HttpOnly, SameSite=Lax,
// optional Domain and Secure) and offers Set, Get and Delete on top of
// net/http. Max-age follows net/http conventions: zero means a
// browser-session cookie, a negative value deletes the cookie.
//
// Manager.Jar binds a manager to one request/response pair and implements the
// ReadCookie/WriteCookie contract used by pkg/securecookie. Cookies written
// through a Jar are visible to later reads through the same Jar.
//
//	m, err := cookie.New(cookie.WithSecure(true))
//	if err != nil {
//	    // SameSite=None without Secure
//	}
//
//	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//	    jar := m.Jar(w, r)
//	    jar.WriteCookie("theme", "dark", 86400)
//	    theme, _ := jar.ReadCookie("theme") // "dark"
//	    _ = theme
//	})
//
// Config lets the attributes come from the environment via pkg/config.
package cookie
