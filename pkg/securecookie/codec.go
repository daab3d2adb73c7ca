package securecookie

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/dmitrymomot/cookiekit/pkg/secrets"
)

// Version is the leading byte of every encoded value. It selects
// XChaCha20-Poly1305 with a 24-byte random nonce.
const Version byte = 0x01

const (
	nonceSize  = chacha20poly1305.NonceSizeX
	tagSize    = chacha20poly1305.Overhead
	headerSize = 1 + nonceSize
)

// Strict decoding rejects non-zero trailing bits, so every character of an
// encoded value is covered by the authentication tag.
var encoding = base64.RawURLEncoding.Strict()

// Encode encrypts and authenticates value for the cookie called name.
// The result is URL-safe base64 of version || nonce || ciphertext || tag and
// only decodes under the same key and cookie name. A fresh nonce is drawn for
// every call, so equal inputs give different outputs.
func Encode(key secrets.KeyMaterial, name, value string) (string, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}

	buf := make([]byte, headerSize, headerSize+len(value)+tagSize)
	buf[0] = Version
	nonce := buf[1:headerSize]
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}

	sealed := aead.Seal(buf, nonce, []byte(value), additionalData(Version, name))
	return encoding.EncodeToString(sealed), nil
}

// Decode verifies and decrypts a value produced by Encode. It returns an
// error wrapping ErrMalformed, ErrIntegrity or ErrCipherRejected, and never
// a partial plaintext.
func Decode(key secrets.KeyMaterial, name, encoded string) (string, error) {
	raw, err := encoding.DecodeString(encoded)
	if err != nil {
		return "", errors.Join(ErrMalformed, err)
	}
	if len(raw) < headerSize+tagSize {
		return "", ErrMalformed
	}
	if raw[0] != Version {
		return "", ErrMalformed
	}

	aead, err := newAEAD(key)
	if err != nil {
		return "", errors.Join(ErrCipherRejected, err)
	}

	plaintext, err := aead.Open(nil, raw[1:headerSize], raw[headerSize:], additionalData(raw[0], name))
	if err != nil {
		return "", errors.Join(ErrIntegrity, err)
	}
	return string(plaintext), nil
}

// EncodedLen returns the length of the encoded form of an n-byte value.
// Browsers cap a cookie at about 4096 bytes including its name and attributes.
func EncodedLen(n int) int {
	return encoding.EncodedLen(headerSize + n + tagSize)
}

func newAEAD(key secrets.KeyMaterial) (cipher.AEAD, error) {
	return chacha20poly1305.NewX(key.Bytes())
}

// additionalData binds the ciphertext to its format version and cookie name.
func additionalData(version byte, name string) []byte {
	ad := make([]byte, 0, 1+len(name))
	ad = append(ad, version)
	return append(ad, name...)
}
