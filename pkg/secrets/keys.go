package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the length of every key handed out by a provider.
	KeySize = 32 // 256 bits

	// MinSecretLength is the shortest configured secret accepted for derivation.
	MinSecretLength = 32

	// DefaultInfo separates derived cookie keys from any other use of the same secret.
	DefaultInfo = "cookiekit-securecookie-v1"

	idInfo = "cookiekit-key-id-v1"
)

// keyIDNamespace scopes the name-based UUIDs used as key identifiers.
var keyIDNamespace = uuid.MustParse("6c3f5a0e-8f0b-4b8e-9d43-1f6a2c7e5b90")

// KeyMaterial is a symmetric key together with a non-secret identifier.
// The raw bytes are never part of its string or log representation.
type KeyMaterial struct {
	id  string
	key []byte
}

// NewKeyMaterial wraps raw key bytes. The slice is copied.
func NewKeyMaterial(raw []byte) (KeyMaterial, error) {
	if len(raw) != KeySize {
		return KeyMaterial{}, ErrInvalidKey
	}

	key := make([]byte, KeySize)
	copy(key, raw)

	id, err := keyID(key)
	if err != nil {
		return KeyMaterial{}, err
	}

	return KeyMaterial{id: id, key: key}, nil
}

// ID returns the key identifier. It is derived one-way from the key and is
// safe to log.
func (k KeyMaterial) ID() string {
	return k.id
}

// Bytes returns a copy of the raw key.
func (k KeyMaterial) Bytes() []byte {
	if k.key == nil {
		return nil
	}
	out := make([]byte, len(k.key))
	copy(out, k.key)
	return out
}

// IsZero reports whether k holds no key.
func (k KeyMaterial) IsZero() bool {
	return len(k.key) == 0
}

// Equal compares two keys in constant time.
func (k KeyMaterial) Equal(other KeyMaterial) bool {
	return subtle.ConstantTimeCompare(k.key, other.key) == 1
}

// String keeps key bytes out of fmt output.
func (k KeyMaterial) String() string {
	return "KeyMaterial(" + k.id + ")"
}

// LogValue keeps key bytes out of slog output.
func (k KeyMaterial) LogValue() slog.Value {
	return slog.StringValue(k.id)
}

// GenerateKey creates a new random 32-byte key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrKeyGeneration, err)
	}
	return key, nil
}

// deriveKey expands a configured secret into a cookie key using HKDF-SHA-256.
// info provides domain separation between independent users of one secret.
func deriveKey(secret []byte, info string) ([]byte, error) {
	reader := hkdf.New(sha256.New, secret, nil, []byte(info))

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, errors.Join(ErrKeyDerivation, err)
	}
	return key, nil
}

// keyID derives the public identifier of a key. The identifier comes from an
// independent HKDF output, so it reveals nothing usable about the key.
func keyID(key []byte) (string, error) {
	reader := hkdf.New(sha256.New, key, nil, []byte(idInfo))

	fingerprint := make([]byte, 16)
	if _, err := io.ReadFull(reader, fingerprint); err != nil {
		return "", errors.Join(ErrKeyDerivation, err)
	}
	return uuid.NewSHA1(keyIDNamespace, fingerprint).String(), nil
}

// clearBytes zeroes intermediate key buffers once they have been copied.
func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
