package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"DB_DRIVER", "DB_CONNECTION", "DB_HOST", "DB_PORT", "DB_SCHEMA", "PORT", "VOCABULARY_URL", "VOCABULARY_CACHE_TTL", "VOCABULARY_TIMEOUT", "CORS_ALLOW_ORIGINS", "REDIS_ADDR"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, DriverPgx, cfg.Database.Driver)
	assert.Equal(t, "default", cfg.Database.Connection)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "public", cfg.Database.Schema)
	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
	assert.Equal(t, 168*time.Hour, cfg.Vocabulary.CacheTTL)
	assert.Equal(t, 30*time.Second, cfg.Vocabulary.Timeout)
	assert.False(t, cfg.Database.Configured())
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "GORM")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USERNAME", "app")
	t.Setenv("DB_DATABASE", "microdata")
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("VOCABULARY_CACHE_TTL", "1h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverGorm, cfg.Database.Driver)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowOrigins)
	assert.Equal(t, time.Hour, cfg.Vocabulary.CacheTTL)
	assert.True(t, cfg.Database.Configured())
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "sqlite")
		_, err := Load()
		assert.ErrorContains(t, err, "DB_DRIVER")
	})

	t.Run("port", func(t *testing.T) {
		t.Setenv("PORT", "http")
		_, err := Load()
		assert.ErrorContains(t, err, "PORT")
	})

	t.Run("ttl", func(t *testing.T) {
		t.Setenv("VOCABULARY_CACHE_TTL", "forever")
		_, err := Load()
		assert.ErrorContains(t, err, "VOCABULARY_CACHE_TTL")
	})
}
