//go:build integration

package secrets_test

import (
	"context"
	"os"
	"sync"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiekit/pkg/redis"
	"github.com/dmitrymomot/cookiekit/pkg/secrets"
)

func newRedisClient(t *testing.T) goredis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/0"
	}
	client, err := redis.Connect(context.Background(), redis.Config{URL: url, RetryAttempts: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisProviderSharesKey(t *testing.T) {
	t.Parallel()

	client := newRedisClient(t)
	name := "cookiekit:test:" + t.Name()
	require.NoError(t, client.Del(context.Background(), name).Err())
	t.Cleanup(func() { _ = client.Del(context.Background(), name).Err() })

	providers := make([]*secrets.RedisProvider, 8)
	for i := range providers {
		providers[i] = secrets.NewRedisProvider(client, name)
	}

	keys := make([]secrets.KeyMaterial, len(providers))
	var wg sync.WaitGroup
	for i, p := range providers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k, err := p.Key()
			assert.NoError(t, err)
			keys[i] = k
		}()
	}
	wg.Wait()

	for _, k := range keys[1:] {
		assert.True(t, keys[0].Equal(k))
	}

	ring, err := providers[0].Keys()
	require.NoError(t, err)
	require.Len(t, ring, 1)
	assert.True(t, keys[0].Equal(ring[0]))
}

func TestRedisProviderRejectsCorruptKey(t *testing.T) {
	t.Parallel()

	client := newRedisClient(t)
	name := "cookiekit:test:" + t.Name()
	require.NoError(t, client.Set(context.Background(), name, "short", 0).Err())
	t.Cleanup(func() { _ = client.Del(context.Background(), name).Err() })

	_, err := secrets.NewRedisProvider(client, name).Key()
	require.ErrorIs(t, err, secrets.ErrKeyStore)
}
