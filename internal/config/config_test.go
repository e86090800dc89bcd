package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key Load reads so the host environment cannot leak
// into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GIN_MODE", "JWT_AUTH", "TOKEN_SECRET", "REQUEST_DELAY_ENABLE",
		"REQUEST_DELAY_MIN_MS", "REQUEST_DELAY_MAX_MS", "SEED_DATA", "LOG_LEVEL", "LOG_FILE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.False(t, cfg.Auth.Enabled)
	assert.False(t, cfg.Delay.Enabled)
	assert.Equal(t, 500*time.Millisecond, cfg.Delay.Min)
	assert.Equal(t, 1500*time.Millisecond, cfg.Delay.Max)
	assert.True(t, cfg.SeedData)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "./logs/app.log", cfg.Log.File)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_AUTH", "true")
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("REQUEST_DELAY_ENABLE", "true")
	t.Setenv("REQUEST_DELAY_MIN_MS", "10")
	t.Setenv("REQUEST_DELAY_MAX_MS", "20")
	t.Setenv("SEED_DATA", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "s3cret", cfg.Auth.TokenSecret)
	assert.True(t, cfg.Delay.Enabled)
	assert.Equal(t, 10*time.Millisecond, cfg.Delay.Min)
	assert.Equal(t, 20*time.Millisecond, cfg.Delay.Max)
	assert.False(t, cfg.SeedData)
}

func TestLoadFlagsAreStrict(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_AUTH", "1")
	t.Setenv("REQUEST_DELAY_ENABLE", "TRUE")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Auth.Enabled)
	assert.False(t, cfg.Delay.Enabled)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7070\nJWT_AUTH=true\nTOKEN_SECRET=abc\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "abc", cfg.Auth.TokenSecret)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing env file", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
		assert.Error(t, err)
	})

	t.Run("auth without secret", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("JWT_AUTH", "true")
		_, err := Load("")
		assert.EqualError(t, err, "TOKEN_SECRET is required when JWT_AUTH is enabled")
	})

	t.Run("inverted delay bounds", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("REQUEST_DELAY_MIN_MS", "200")
		t.Setenv("REQUEST_DELAY_MAX_MS", "100")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("unknown gin mode", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GIN_MODE", "production")
		_, err := Load("")
		assert.EqualError(t, err, `invalid GIN_MODE "production", expected debug, release or test`)
	})

	t.Run("bad port", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "0")
		_, err := Load("")
		assert.Error(t, err)
	})
}
