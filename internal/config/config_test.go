package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
port = 5432
user = "booking"
password = "secret"
dbname = "seats"

[logs]
level = "debug"

[booking]
cutoff_hour = 15
timezone = "Asia/Kolkata"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_FileWithDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10, cfg.Booking.HolidaySkipLimit)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "postgres.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_PASSWORD", "from-env")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "postgres.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Contains(t, cfg.Database.DSN(), "password=from-env")
}

func TestLoad_InvalidEnvInt(t *testing.T) {
	t.Setenv("DB_PORT", "five")

	_, err := Load(writeConfig(t, sampleConfig))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := defaults()
	cfg.Database.User = "u"
	cfg.Database.DBName = "d"
	require.NoError(t, cfg.Validate())

	cfg.Booking.CutoffHour = 24
	assert.Error(t, cfg.Validate())

	cfg.Booking.CutoffHour = 15
	cfg.Booking.Timezone = "Mars/Olympus"
	assert.Error(t, cfg.Validate())

	cfg.Booking.Timezone = "UTC"
	cfg.Redis.Enabled = true
	assert.Error(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
