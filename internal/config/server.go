package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadServerSettings.
const (
	EnvAddr      = "PENSIONGAP_ADDR"
	EnvRedisAddr = "PENSIONGAP_REDIS_ADDR"
	EnvRedisDB   = "PENSIONGAP_REDIS_DB"
	EnvCacheTTL  = "PENSIONGAP_CACHE_TTL"
)

// ServerSettings configures the HTTP server and its result cache.
type ServerSettings struct {
	Addr      string
	RedisAddr string // empty selects the in-memory cache
	RedisDB   int
	CacheTTL  time.Duration
}

// DefaultServerSettings returns the settings used when nothing is configured.
func DefaultServerSettings() ServerSettings {
	return ServerSettings{
		Addr:     ":8080",
		CacheTTL: 24 * time.Hour,
	}
}

// LoadServerSettings reads settings from the environment after loading the
// given .env files. Missing .env files are ignored; variables already set in
// the environment win over file values.
func LoadServerSettings(envFiles ...string) (ServerSettings, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return ServerSettings{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	s := DefaultServerSettings()
	if v := os.Getenv(EnvAddr); v != "" {
		s.Addr = v
	}
	s.RedisAddr = os.Getenv(EnvRedisAddr)
	if v := os.Getenv(EnvRedisDB); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return ServerSettings{}, fmt.Errorf("invalid %s: %w", EnvRedisDB, err)
		}
		s.RedisDB = db
	}
	if v := os.Getenv(EnvCacheTTL); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return ServerSettings{}, fmt.Errorf("invalid %s: %w", EnvCacheTTL, err)
		}
		s.CacheTTL = ttl
	}
	return s, nil
}
