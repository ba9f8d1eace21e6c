package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "storefinder.db", cfg.DatabasePath)
	assert.Equal(t, 2, cfg.MinQueryLen)
	assert.Equal(t, 24*time.Hour, cfg.ResolveCacheTTL)
	assert.True(t, cfg.Nominatim.Enabled)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.Nominatim.BaseURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MIN_QUERY_LEN", "3")
	t.Setenv("GOOGLE_PLACES_API_KEY", "test-key")
	t.Setenv("GOOGLE_PLACES_RATE_LIMIT", "250ms")
	t.Setenv("NOMINATIM_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3, cfg.MinQueryLen)
	assert.Equal(t, "test-key", cfg.Google.APIKey)
	assert.Equal(t, 250*time.Millisecond, cfg.Google.RateLimit)
	assert.False(t, cfg.Nominatim.Enabled)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("MIN_QUERY_LEN", "not-a-number")
	t.Setenv("RESOLVE_CACHE_TTL", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.MinQueryLen)
	assert.Equal(t, 24*time.Hour, cfg.ResolveCacheTTL)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:         "8080",
			DatabasePath: "test.db",
			MinQueryLen:  2,
			MaxOpenConns: 10,
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("empty port", func(t *testing.T) {
		cfg := valid()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-numeric port", func(t *testing.T) {
		cfg := valid()
		cfg.Port = "http"
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty database path", func(t *testing.T) {
		cfg := valid()
		cfg.DatabasePath = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("min query length out of range", func(t *testing.T) {
		cfg := valid()
		cfg.MinQueryLen = 0
		assert.Error(t, cfg.Validate())

		cfg.MinQueryLen = 11
		assert.Error(t, cfg.Validate())
	})
}
