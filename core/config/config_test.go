package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/trigger/core/config"
)

type cachedConfig struct {
	Name    string        `env:"CONFIG_TEST_CACHED_NAME" envDefault:"default"`
	Timeout time.Duration `env:"CONFIG_TEST_CACHED_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Value string `env:"CONFIG_TEST_REQUIRED_VALUE,required"`
}

type listConfig struct {
	Events []string `env:"CONFIG_TEST_EVENTS" envSeparator:","`
}

// Tests mutate process environment, so they do not run in parallel.

func TestLoad_DefaultsAndCache(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("CONFIG_TEST_CACHED_NAME", "first")

	var cfg1 cachedConfig
	require.NoError(t, config.Load(&cfg1))
	assert.Equal(t, "first", cfg1.Name)
	assert.Equal(t, 5*time.Second, cfg1.Timeout)

	// Cached: environment changes are not observed until Reset
	t.Setenv("CONFIG_TEST_CACHED_NAME", "second")

	var cfg2 cachedConfig
	require.NoError(t, config.Load(&cfg2))
	assert.Equal(t, cfg1, cfg2)

	config.Reset()

	var cfg3 cachedConfig
	require.NoError(t, config.Load(&cfg3))
	assert.Equal(t, "second", cfg3.Name)
}

func TestLoad_RequiredMissing(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParse)

	assert.Panics(t, func() {
		config.MustLoad(&requiredConfig{})
	})
}

func TestLoad_Slice(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("CONFIG_TEST_EVENTS", "a,b,c")

	var cfg listConfig
	config.MustLoad(&cfg)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Events)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *cachedConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilConfig)
}
