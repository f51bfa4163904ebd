package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.True(t, cfg.DB.Automigrate)
	assert.Equal(t, "8081", cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, 60, cfg.HTTP.RateLimit.PublisherPerMinute)
	assert.Equal(t, 24*time.Hour, cfg.Auth.JWTTTL)
	assert.Equal(t, "UTC", cfg.Report.Timezone)
	assert.Equal(t, 5, cfg.Report.TrafficSourceLimit)
	assert.Equal(t, 366, cfg.Report.MaxRangeDays)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	file := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
[db]
driver = "postgres"
dsn = "postgres://localhost/affiliates"

[http]
port = "9000"
allowed_origins = ["https://dash.example.com"]

[report]
timezone = "Europe/Riga"
max_parallel_queries = 4
`), 0o600))

	t.Setenv("AUTH_JWT_SECRET", "from-env")
	t.Setenv("HTTP_PORT", "9100")

	cfg, err := LoadConfig(file)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "postgres://localhost/affiliates", cfg.DB.DSN)
	assert.Equal(t, "9100", cfg.HTTP.Port)
	assert.Equal(t, []string{"https://dash.example.com"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "Europe/Riga", cfg.Report.Timezone)
	assert.Equal(t, 4, cfg.Report.MaxParallelQueries)
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("REPORT_TIMEZONE=America/New_York\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("REPORT_TIMEZONE") })

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", cfg.Report.Timezone)
}

func TestLoadConfigMySQLFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_USER", "reader")
	t.Setenv("MYSQL_PASSWORD", "pw")
	t.Setenv("MYSQL_DATABASE", "affiliates")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, "reader:pw@tcp(db.internal:3306)/affiliates?charset=utf8&parseTime=true&tls=custom", cfg.DB.DSN)
}
