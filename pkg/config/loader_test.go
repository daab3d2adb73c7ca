package config_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiekit/pkg/config"
)

type defaultsConfig struct {
	Name  string `env:"CFGTEST_DEFAULT_NAME" envDefault:"default_value"`
	Count int    `env:"CFGTEST_DEFAULT_COUNT" envDefault:"42"`
	Flag  bool   `env:"CFGTEST_DEFAULT_FLAG" envDefault:"true"`
}

type envConfig struct {
	Name  string `env:"CFGTEST_ENV_NAME" envDefault:"default_value"`
	Count int    `env:"CFGTEST_ENV_COUNT" envDefault:"42"`
}

type cachedConfig struct {
	Name string `env:"CFGTEST_CACHED_NAME" envDefault:"first"`
}

type requiredConfig struct {
	Value string `env:"CFGTEST_REQUIRED_VALUE,required"`
}

type concurrentConfig struct {
	Name string `env:"CFGTEST_CONCURRENT_NAME" envDefault:"shared"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "default_value", cfg.Name)
	assert.Equal(t, 42, cfg.Count)
	assert.True(t, cfg.Flag)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CFGTEST_ENV_NAME", "from_env")
	t.Setenv("CFGTEST_ENV_COUNT", "100")

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "from_env", cfg.Name)
	assert.Equal(t, 100, cfg.Count)
}

func TestLoad_CachesPerType(t *testing.T) {
	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Name)

	t.Setenv("CFGTEST_CACHED_NAME", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name, "cached value must be returned")

	var fresh cachedConfig
	require.NoError(t, config.Parse(&fresh))
	assert.Equal(t, "second", fresh.Name)
}

func TestLoad_RequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)

	// the failure is cached too
	err = config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	require.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	require.ErrorIs(t, config.Parse(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	var ok defaultsConfig
	assert.NotPanics(t, func() { config.MustLoad(&ok) })

	var bad requiredConfig
	assert.Panics(t, func() { config.MustLoad(&bad) })
}

func TestLoad_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var cfg concurrentConfig
			if err := config.Load(&cfg); err == nil {
				results[i] = cfg.Name
			}
		}()
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "shared", r)
	}
}
