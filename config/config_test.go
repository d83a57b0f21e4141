package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_URL", "SECRET_KEY", "PORT", "SESSION_TTL_HOURS",
		"LOGIN_RATE_PER_MINUTE", "MAIL_API_KEY", "MAIL_FROM", "MAIL_TO",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5, cfg.LoginRatePerMinute)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.SessionSecret)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example/site")
	t.Setenv("SECRET_KEY", "hunter2")
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL_HOURS", "2")
	t.Setenv("LOGIN_RATE_PER_MINUTE", "3")
	t.Setenv("MAIL_TO", "owner@example.com")

	cfg := Load()

	assert.Equal(t, "postgres://example/site", cfg.DatabaseURL)
	assert.Equal(t, "hunter2", cfg.SessionSecret)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 3, cfg.LoginRatePerMinute)
	assert.Equal(t, "owner@example.com", cfg.MailTo)
}

func TestGetIntInvalidFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "not-a-number")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}
