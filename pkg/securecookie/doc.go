// Package securecookie stores client-side state in cookies the client can
// carry but cannot read or forge.
//
// # Codec
//
// Encode seals a value with XChaCha20-Poly1305 under a secrets.KeyMaterial,
// using a fresh random 24-byte nonce per call. The cookie name and a format
// version byte are authenticated as associated data. The output is
//
//	base64url( version | nonce | ciphertext | tag )
//
// without padding, which is legal in a cookie value. Decode reverses it and
// fails with ErrMalformed (bad encoding, short input, unknown version),
// ErrIntegrity (tag mismatch: tampering, wrong key, wrong cookie name) or
// ErrCipherRejected (the key cannot drive the cipher). No partial plaintext
// is ever returned.
//
// Output size is not checked; see EncodedLen.
//
// # Store
//
// Store ties the codec to a secrets.KeyProvider and to a CookieJar, the
// ReadCookie/WriteCookie pair supplied by the HTTP layer (*cookie.Jar for
// net/http, MemoryJar elsewhere).
//
//	store := securecookie.New(secrets.NewRandomProvider())
//
//	jar := cookies.Jar(w, r)
//	if err := store.Add(jar, "uid", "42", 86400); err != nil {
//	    // random source failure; no cookie was written
//	}
//	uid, ok := store.Value(jar, "uid")
//
// Value treats a forged, truncated or stale cookie exactly like a missing
// one. With a secrets.KeyRing provider every key in the ring is tried, so
// cookies issued before a secret rotation stay readable.
//
// # Keys
//
// Without configuration a Store uses a random in-memory key: restarting the
// process, or building a new Store, invalidates every cookie it issued.
// Use NewFromConfig with COOKIE_SECRETS to share cookies across instances
// and restarts.
package securecookie
