package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "STORE_DRIVER", "DATA_DIR", "REDIS_ADDR", "REDIS_DB", "WEEK_COUNT", "LOG_PRETTY", "SEED", "TIMEZONE", "CORS_ALLOWED_ORIGINS", "DATABASE_DSN"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, DriverFile, cfg.Store.Driver)
	assert.Equal(t, "./data", cfg.Store.DataDir)
	assert.Equal(t, "localhost:6379", cfg.Store.RedisAddr)
	assert.Equal(t, 8, cfg.WeekCount)
	assert.True(t, cfg.Seed)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "America/Caracas", cfg.Location.String())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("WEEK_COUNT", "12")
	t.Setenv("SEED", "false")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, DriverRedis, cfg.Store.Driver)
	assert.Equal(t, 3, cfg.Store.RedisDB)
	assert.Equal(t, 12, cfg.WeekCount)
	assert.False(t, cfg.Seed)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non numeric redis db", key: "REDIS_DB", value: "one"},
		{name: "zero week count", key: "WEEK_COUNT", value: "0"},
		{name: "bad boolean", key: "SEED", value: "maybe"},
		{name: "unknown timezone", key: "TIMEZONE", value: "Mars/Olympus"},
		{name: "unknown driver", key: "STORE_DRIVER", value: "mongo"},
		{name: "sql driver without dsn", key: "STORE_DRIVER", value: "postgres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_DSN", "")
			t.Setenv(tt.key, tt.value)

			cfg, err := FromEnv()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
