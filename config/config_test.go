package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/ErlanBelekov/accounts/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "config-test-secret-at-least-32-chars"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", secret)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "accounts.db", cfg.SQLitePath)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "too-short")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_PostgresNeedsURL(t *testing.T) {
	t.Setenv("JWT_SECRET", secret)
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://localhost/accounts")
	_, err = config.Load()
	assert.NoError(t, err)
}

func TestLoad_ProductionNeedsResend(t *testing.T) {
	t.Setenv("JWT_SECRET", secret)
	t.Setenv("ENV", "production")

	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("RESEND_API_KEY", "re_123")
	t.Setenv("RESEND_FROM", "accounts@example.com")
	_, err = config.Load()
	assert.NoError(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", secret)
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoad_RejectsOutOfRange(t *testing.T) {
	for key, val := range map[string]string{
		"BCRYPT_COST":  "3",
		"STORE_DRIVER": "mongo",
		"ENV":          "dev",
		"LOG_LEVEL":    "trace",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv("JWT_SECRET", secret)
			t.Setenv(key, val)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
