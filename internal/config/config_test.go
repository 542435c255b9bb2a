package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, 16, cfg.Check.MaxValue)
	assert.Equal(t, 4, cfg.Check.Workers)
	assert.False(t, cfg.Logging.DebugMode)
	require.NoError(t, cfg.Validate())
}

func TestConfig_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "typers.yaml")

	cfg := DefaultConfig()
	cfg.Output.Format = "json"
	cfg.Check.MaxValue = 32
	cfg.Check.Laws = []string{"add_native"}
	cfg.Logging.Categories = map[string]bool{"eval": false}

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("check:\n  max_value: 8\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Check.MaxValue)
	assert.Equal(t, 4, cfg.Check.Workers, "unset keys keep defaults")
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("check: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("values", func(t *testing.T) {
		t.Setenv("TYPERS_OUTPUT", "json")
		t.Setenv("TYPERS_LOG_LEVEL", "debug")
		t.Setenv("TYPERS_DEBUG", "true")
		t.Setenv("TYPERS_CHECK_MAX", "10")
		t.Setenv("TYPERS_CHECK_WORKERS", "2")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Output.Format)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.True(t, cfg.Logging.DebugMode)
		assert.Equal(t, 10, cfg.Check.MaxValue)
		assert.Equal(t, 2, cfg.Check.Workers)
	})

	t.Run("malformed number", func(t *testing.T) {
		t.Setenv("TYPERS_CHECK_MAX", "many")
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed bool", func(t *testing.T) {
		t.Setenv("TYPERS_DEBUG", "sometimes")
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"format", func(c *Config) { c.Output.Format = "xml" }},
		{"color", func(c *Config) { c.Output.Color = "sometimes" }},
		{"max value zero", func(c *Config) { c.Check.MaxValue = 0 }},
		{"max value too large", func(c *Config) { c.Check.MaxValue = MaxCheckValue + 1 }},
		{"workers", func(c *Config) { c.Check.Workers = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestCheckTimeout(t *testing.T) {
	c := CheckConfig{Timeout: "5s"}
	assert.Equal(t, 5*time.Second, c.GetTimeout())

	c.Timeout = "soon"
	assert.Equal(t, 30*time.Second, c.GetTimeout())
}

func TestLoggingConfig(t *testing.T) {
	lc := LoggingConfig{DebugMode: true, Format: "json", Categories: map[string]bool{"eval": false}}
	assert.False(t, lc.IsCategoryEnabled("eval"))
	assert.True(t, lc.IsCategoryEnabled("check"))

	opts := lc.Options()
	assert.True(t, opts.JSONFormat)
	assert.True(t, opts.DebugMode)

	lc.DebugMode = false
	assert.False(t, lc.IsCategoryEnabled("check"))
}
