package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerSettings_Defaults(t *testing.T) {
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvRedisAddr, "")
	t.Setenv(EnvRedisDB, "")
	t.Setenv(EnvCacheTTL, "")

	s, err := LoadServerSettings(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultServerSettings(), s)
}

func TestLoadServerSettings_FromEnvironment(t *testing.T) {
	t.Setenv(EnvAddr, ":9090")
	t.Setenv(EnvRedisAddr, "localhost:6379")
	t.Setenv(EnvRedisDB, "2")
	t.Setenv(EnvCacheTTL, "90m")

	s, err := LoadServerSettings()
	require.NoError(t, err)
	assert.Equal(t, ":9090", s.Addr)
	assert.Equal(t, "localhost:6379", s.RedisAddr)
	assert.Equal(t, 2, s.RedisDB)
	assert.Equal(t, 90*time.Minute, s.CacheTTL)
}

func TestLoadServerSettings_FromDotEnv(t *testing.T) {
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvRedisAddr, "")
	t.Setenv(EnvRedisDB, "")
	t.Setenv(EnvCacheTTL, "")
	// godotenv does not override variables that are already set, even empty ones
	for _, k := range []string{EnvAddr, EnvRedisAddr, EnvRedisDB, EnvCacheTTL} {
		require.NoError(t, os.Unsetenv(k))
	}

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PENSIONGAP_ADDR=:7070\nPENSIONGAP_REDIS_ADDR=cache:6379\n"), 0o644))

	s, err := LoadServerSettings(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", s.Addr)
	assert.Equal(t, "cache:6379", s.RedisAddr)
	assert.Equal(t, 24*time.Hour, s.CacheTTL)
}

func TestLoadServerSettings_Invalid(t *testing.T) {
	t.Setenv(EnvRedisDB, "two")
	_, err := LoadServerSettings()
	assert.ErrorContains(t, err, EnvRedisDB)

	t.Setenv(EnvRedisDB, "")
	t.Setenv(EnvCacheTTL, "soon")
	_, err = LoadServerSettings()
	assert.ErrorContains(t, err, EnvCacheTTL)
}
