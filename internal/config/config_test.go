package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, 24, cfg.JWTExpirationHours)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL())
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "admin@nawabkhana.com", cfg.AdminEmail)
	assert.Equal(t, "en-IN", cfg.PriceLocale)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("ADMIN_EMAIL", "owner@example.com")
	t.Setenv("CACHE_TTL", "90s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "owner@example.com", cfg.AdminEmail)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
}

func TestValidate_ProductionRequiresSecret(t *testing.T) {
	cfg := &Config{Env: "production", JWTSecret: devJWTSecret, JWTExpirationHours: 24}
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "a-real-secret"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsNonPositiveExpiry(t *testing.T) {
	cfg := &Config{JWTSecret: "x", JWTExpirationHours: 0}
	assert.Error(t, cfg.Validate())
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BRAND_NAME=NAWAB KHANA TEST\n"), 0o600))

	cfg, err := load(dir)
	require.NoError(t, err)
	assert.Equal(t, "NAWAB KHANA TEST", cfg.BrandName)
}

func TestLoad_MissingDotEnvIsFine(t *testing.T) {
	_, err := load(t.TempDir())
	assert.NoError(t, err)
}

func TestLoad_MalformedDotEnvFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=9000\nNOT AN ENV LINE\n"), 0o600))

	_, err := load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read .env")
}
