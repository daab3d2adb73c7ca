package securecookie

import "errors"

// Decode errors. Store collapses all of them to "no value".
var (
	ErrMalformed      = errors.New("securecookie.malformed")
	ErrIntegrity      = errors.New("securecookie.integrity_failure")
	ErrCipherRejected = errors.New("securecookie.cipher_rejected")
)

// ErrEncryptionFailed is returned when a value cannot be sealed, for example
// because the random source failed. The cookie is not written.
var ErrEncryptionFailed = errors.New("securecookie.encryption_failed")

// reason maps a decode error to a short label for logs.
func reason(err error) string {
	switch {
	case errors.Is(err, ErrMalformed):
		return "malformed"
	case errors.Is(err, ErrIntegrity):
		return "integrity"
	case errors.Is(err, ErrCipherRejected):
		return "cipher_rejected"
	default:
		return "key_unavailable"
	}
}
