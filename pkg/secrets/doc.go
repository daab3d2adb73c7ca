// Package secrets provides the key material used to protect client-side
// values such as secure cookies.
//
// A KeyMaterial pairs a 32-byte symmetric key with a non-secret identifier.
// The identifier is derived one-way from the key and is what shows up in
// logs; String and LogValue never expose the key bytes.
//
// # Providers
//
// Keys are obtained through the KeyProvider interface so callers can choose
// between two lifecycles:
//
//   - RandomProvider generates a key lazily on first use and keeps it in
//     memory only. It needs no configuration, but values it protected become
//     unreadable once the provider is discarded (for example on restart).
//     Sharing one RandomProvider between goroutines is safe: concurrent first
//     use yields exactly one key.
//   - NewSecretProvider derives keys from long-lived configured secrets with
//     HKDF-SHA-256. The first secret is current; the rest are accepted for
//     decoding during rotation (see KeyRing).
//
// NewStaticProvider wraps keys the caller already holds.
//
// # Usage
//
//	import "github.com/dmitrymomot/cookiekit/pkg/secrets"
//
//	// Zero-config, per-process key
//	p := secrets.NewRandomProvider()
//
//	// Configured secrets, newest first
//	p, err := secrets.NewSecretProvider("", []byte(os.Getenv("COOKIE_SECRET")))
//	if err != nil {
//	    // handle error
//	}
//	key, err := p.Key()
//
// # Error Handling
//
// Constructors return ErrNoSecret, ErrSecretTooShort or ErrInvalidKey for bad
// input. Generation and derivation failures wrap ErrKeyGeneration and
// ErrKeyDerivation; use errors.Is to match them.
package secrets
