package secrets

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// KeyProvider supplies the key used to protect new values.
// Implementations must be safe for concurrent use.
type KeyProvider interface {
	Key() (KeyMaterial, error)
}

// KeyRing is implemented by providers that also accept retired keys.
// Keys returns the current key first, followed by decode-only keys.
type KeyRing interface {
	KeyProvider
	Keys() ([]KeyMaterial, error)
}

// RandomProvider lazily generates a single random key on first use and
// returns it for the rest of its lifetime. Nothing is configured or
// persisted: once the provider is gone, values protected by its key can no
// longer be read.
type RandomProvider struct {
	mu  sync.Mutex
	key atomic.Pointer[KeyMaterial]
}

// NewRandomProvider returns a zero-config provider.
func NewRandomProvider() *RandomProvider {
	return &RandomProvider{}
}

// Key returns the provider's key, generating it on the first call.
// Concurrent first calls observe the same key. A failed generation is not
// cached, so a later call may succeed.
func (p *RandomProvider) Key() (KeyMaterial, error) {
	if k := p.key.Load(); k != nil {
		return *k, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if k := p.key.Load(); k != nil {
		return *k, nil
	}

	raw, err := GenerateKey()
	if err != nil {
		return KeyMaterial{}, err
	}
	defer clearBytes(raw)

	k, err := NewKeyMaterial(raw)
	if err != nil {
		return KeyMaterial{}, err
	}
	p.key.Store(&k)

	return k, nil
}

// Keys returns the single generated key.
func (p *RandomProvider) Keys() ([]KeyMaterial, error) {
	k, err := p.Key()
	if err != nil {
		return nil, err
	}
	return []KeyMaterial{k}, nil
}

// StaticProvider serves a fixed, ordered set of keys.
type StaticProvider struct {
	keys []KeyMaterial
}

// NewStaticProvider returns a provider whose current key is keys[0].
// The remaining keys are accepted for decoding only.
func NewStaticProvider(keys ...KeyMaterial) (*StaticProvider, error) {
	if len(keys) == 0 {
		return nil, ErrNoSecret
	}
	for _, k := range keys {
		if k.IsZero() {
			return nil, ErrInvalidKey
		}
	}
	return &StaticProvider{keys: append([]KeyMaterial(nil), keys...)}, nil
}

func (p *StaticProvider) Key() (KeyMaterial, error) {
	return p.keys[0], nil
}

func (p *StaticProvider) Keys() ([]KeyMaterial, error) {
	return append([]KeyMaterial(nil), p.keys...), nil
}

// NewSecretProvider derives one key per configured secret with HKDF-SHA-256.
// The first secret produces the current key; older secrets stay readable so
// cookies survive a rotation. An empty info falls back to DefaultInfo.
//
// Each secret must be at least MinSecretLength bytes.
func NewSecretProvider(info string, secrets ...[]byte) (*StaticProvider, error) {
	if info == "" {
		info = DefaultInfo
	}

	keys := make([]KeyMaterial, 0, len(secrets))
	for i, secret := range secrets {
		if len(secret) == 0 {
			continue
		}
		if len(secret) < MinSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d bytes", ErrSecretTooShort, i, len(secret))
		}

		raw, err := deriveKey(secret, info)
		if err != nil {
			return nil, err
		}
		k, err := NewKeyMaterial(raw)
		clearBytes(raw)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}

	return NewStaticProvider(keys...)
}
