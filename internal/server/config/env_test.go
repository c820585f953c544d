package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestParseEnv_OverridesOnlySetValues(t *testing.T) {
	oldLoad := dotenvLoad
	t.Cleanup(func() { dotenvLoad = oldLoad })
	dotenvLoad = func(...string) error { return errors.New("no .env") }

	t.Setenv(EnvPrefix+"DATABASE_DSN", "postgres://env")
	t.Setenv(EnvPrefix+"ADMIN_PASSWORD", "hunter2")
	t.Setenv(EnvPrefix+"ACCESS_TOKEN_VALIDITY_DURATION", "90s")
	t.Setenv(EnvPrefix+"EXPORT_LINK_VALIDITY_DURATION", "5m")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, "postgres://env", c.DatabaseDSN)
	assert.Equal(t, "hunter2", c.AdminPassword)
	assert.Equal(t, 90*time.Second, c.AccessTokenValidityDuration)
	assert.Equal(t, 5*time.Minute, c.ExportLinkValidityDuration)
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
}

func TestParseEnv_BadDurationIgnored(t *testing.T) {
	oldLoad := dotenvLoad
	t.Cleanup(func() { dotenvLoad = oldLoad })
	dotenvLoad = func(...string) error { return nil }

	t.Setenv(EnvPrefix+"ACCESS_TOKEN_VALIDITY_DURATION", "soon")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, 60*time.Minute, c.AccessTokenValidityDuration)
}

func TestParseEnv_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	assert.NoError(t, os.WriteFile(path, []byte(EnvPrefix+"S3_REGION=eu-north-1\n"), 0o600))

	oldLoad := dotenvLoad
	t.Cleanup(func() {
		dotenvLoad = oldLoad
		_ = os.Unsetenv(EnvPrefix + "S3_REGION")
	})
	dotenvLoad = func(...string) error { return godotenv.Load(path) }

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, "eu-north-1", c.S3Region)
}
