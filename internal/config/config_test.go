package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  mode: "production"
store:
  path: "/tmp/test.db"
  seed: false
jwt:
  secret: "unit-test-secret"
  access_token_expiration: "2h"
logging:
  level: "debug"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, "/tmp/test.db", cfg.Store.Path)
	assert.False(t, cfg.Store.Seed)
	assert.Equal(t, "2h", cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Untouched fields keep their defaults.
	assert.Equal(t, "uploads", cfg.Server.StoragePath)
	assert.Equal(t, "campusconnect.app", cfg.JWT.Issuer)
	assert.Equal(t, float64(50), cfg.RateLimit.RequestsPerSecond)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "data/campusconnect.db", cfg.Store.Path)
	assert.True(t, cfg.Store.Seed)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("STORE_SEED", "false")

	path := writeConfig(t, `
server:
  port: "9090"
jwt:
  secret: "unit-test-secret"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.False(t, cfg.Store.Seed)
}

func TestLoadConfig_Validation(t *testing.T) {
	t.Run("missing jwt secret", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, `
server:
  port: "8080"
`))
		assert.Error(t, err)
	})

	t.Run("bad token expiration", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, `
jwt:
  secret: "unit-test-secret"
  access_token_expiration: "soon"
`))
		assert.Error(t, err)
	})
}
