package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiekit/pkg/redis"
)

func TestConnectErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  redis.Config
		want error
	}{
		{name: "empty url", cfg: redis.Config{}, want: redis.ErrEmptyConnectionURL},
		{name: "invalid url", cfg: redis.Config{URL: "http://localhost"}, want: redis.ErrInvalidURL},
		{
			name: "unreachable",
			cfg: redis.Config{
				URL:            "redis://127.0.0.1:1/0?dial_timeout=50ms",
				RetryAttempts:  2,
				RetryInterval:  10 * time.Millisecond,
				ConnectTimeout: time.Second,
			},
			want: redis.ErrNotReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, err := redis.Connect(context.Background(), tt.cfg)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, client)
		})
	}
}

func TestConfigEnabled(t *testing.T) {
	t.Parallel()

	assert.False(t, redis.Config{}.Enabled())
	assert.True(t, redis.Config{URL: "redis://localhost:6379/0"}.Enabled())
}
