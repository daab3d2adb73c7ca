package secrets

import "errors"

var (
	// Key validation errors
	ErrInvalidKey     = errors.New("invalid key: must be 32 bytes")
	ErrNoSecret       = errors.New("no secret provided")
	ErrSecretTooShort = errors.New("secret too short: must be at least 32 bytes")

	// Key production errors
	ErrKeyGeneration = errors.New("key generation failed")
	ErrKeyDerivation = errors.New("key derivation failed")
	ErrKeyStore      = errors.New("shared key store unavailable")
)
