package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/honeypot/core/config"
)

type loadConfig struct {
	Name    string        `env:"CONFIG_TEST_NAME" envDefault:"default-name"`
	Timeout time.Duration `env:"CONFIG_TEST_TIMEOUT" envDefault:"10s"`
}

type fileConfig struct {
	Name    string        `env:"CONFIG_FILE_NAME" envDefault:"default-name" yaml:"name"`
	Port    int           `env:"CONFIG_FILE_PORT" envDefault:"8080" yaml:"port"`
	Timeout time.Duration `env:"CONFIG_FILE_TIMEOUT" envDefault:"10s" yaml:"timeout"`
}

func TestLoad(t *testing.T) {
	t.Cleanup(config.Reset)

	t.Setenv("CONFIG_TEST_NAME", "from-env")

	var cfg loadConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 10*time.Second, cfg.Timeout)

	t.Run("second load returns cached value", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_NAME", "changed")

		var again loadConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "from-env", again.Name)
	})

	t.Run("nil target", func(t *testing.T) {
		var nilCfg *loadConfig
		assert.ErrorIs(t, config.Load(nilCfg), config.ErrNilTarget)
	})
}

func TestMustLoad(t *testing.T) {
	t.Cleanup(config.Reset)

	assert.NotPanics(t, func() {
		var cfg loadConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: from-file\nport: 9090\n"), 0o600))

	t.Run("file overrides defaults", func(t *testing.T) {
		var cfg fileConfig
		require.NoError(t, config.LoadFile(path, &cfg))
		assert.Equal(t, "from-file", cfg.Name)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("CONFIG_FILE_PORT", "7070")

		var cfg fileConfig
		require.NoError(t, config.LoadFile(path, &cfg))
		assert.Equal(t, "from-file", cfg.Name)
		assert.Equal(t, 7070, cfg.Port)
	})

	t.Run("missing file", func(t *testing.T) {
		var cfg fileConfig
		assert.Error(t, config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), &cfg))
	})
}
