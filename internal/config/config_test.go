package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "Footprint", cfg.AppName)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiry)
	assert.Equal(t, 5, cfg.RateLimitAuthBurst)
	assert.False(t, cfg.EmissionFactorOverrides)
	assert.False(t, cfg.ArchiveEnabled())
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("JWT_EXPIRY", "2h")
	t.Setenv("EMISSION_FACTOR_OVERRIDES", "true")
	t.Setenv("S3_BUCKET", "reports")
	t.Setenv("RATE_LIMIT_AUTH_BURST", "9")

	cfg := Load()

	assert.Equal(t, "pgx", cfg.DBDriver)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.True(t, cfg.EmissionFactorOverrides)
	assert.True(t, cfg.ArchiveEnabled())
	assert.Equal(t, 9, cfg.RateLimitAuthBurst)
}

func TestEnvHelpersFallBackOnInvalidValues(t *testing.T) {
	t.Setenv("BAD_BOOL", "maybe")
	t.Setenv("BAD_INT", "ten")
	t.Setenv("BAD_FLOAT", "x1.5")
	t.Setenv("BAD_DURATION", "forever")

	assert.True(t, envBool("BAD_BOOL", true))
	assert.Equal(t, 10, envInt("BAD_INT", 10))
	assert.Equal(t, 1.5, envFloat("BAD_FLOAT", 1.5))
	assert.Equal(t, time.Minute, envDuration("BAD_DURATION", time.Minute))
	assert.Equal(t, "fallback", envString("UNSET_KEY_FOR_TEST", "fallback"))
}
