package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_SECRET", "sekret")
	t.Setenv("STORE_TIMEOUT_SECONDS", "2")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "sekret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Second, cfg.StoreTimeout)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoad_IgnoresBadDuration(t *testing.T) {
	t.Setenv("STORE_TIMEOUT_SECONDS", "not-a-number")

	cfg := Load()
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
}
