package secrets

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisProvider shares one random key between every process pointed at the
// same Redis key. The first process to call Key stores a freshly generated
// key with SETNX; everyone else adopts the stored one. Deleting the Redis key
// and restarting all processes revokes every issued value.
//
// The key is held in Redis in raw form, so the Redis instance must be
// trusted with it.
type RedisProvider struct {
	client  redis.UniversalClient
	name    string
	timeout time.Duration

	mu  sync.Mutex
	key atomic.Pointer[KeyMaterial]
}

// RedisOption configures a RedisProvider.
type RedisOption func(*RedisProvider)

// WithRedisTimeout bounds each round trip made while fetching the key.
func WithRedisTimeout(d time.Duration) RedisOption {
	return func(p *RedisProvider) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// NewRedisProvider returns a provider storing its key under name.
func NewRedisProvider(client redis.UniversalClient, name string, opts ...RedisOption) *RedisProvider {
	p := &RedisProvider{
		client:  client,
		name:    name,
		timeout: 3 * time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Key returns the shared key, fetching or creating it on the first
// successful call. Failures are not cached.
func (p *RedisProvider) Key() (KeyMaterial, error) {
	if k := p.key.Load(); k != nil {
		return *k, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if k := p.key.Load(); k != nil {
		return *k, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	raw, err := p.load(ctx)
	if err != nil {
		return KeyMaterial{}, err
	}
	defer clearBytes(raw)

	k, err := NewKeyMaterial(raw)
	if err != nil {
		return KeyMaterial{}, errors.Join(ErrKeyStore, err)
	}
	p.key.Store(&k)

	return k, nil
}

// Keys returns the single shared key.
func (p *RedisProvider) Keys() ([]KeyMaterial, error) {
	k, err := p.Key()
	if err != nil {
		return nil, err
	}
	return []KeyMaterial{k}, nil
}

func (p *RedisProvider) load(ctx context.Context) ([]byte, error) {
	candidate, err := GenerateKey()
	if err != nil {
		return nil, err
	}

	created, err := p.client.SetNX(ctx, p.name, candidate, 0).Result()
	if err != nil {
		clearBytes(candidate)
		return nil, errors.Join(ErrKeyStore, err)
	}
	if created {
		return candidate, nil
	}
	clearBytes(candidate)

	stored, err := p.client.Get(ctx, p.name).Bytes()
	if err != nil {
		return nil, errors.Join(ErrKeyStore, err)
	}
	return stored, nil
}
