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
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
user = "booking"
dbname = "clinic_booking"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Empty(t, cfg.Jobs.ExpireOverdueSchedule)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.internal"
user = "svc"
password = "secret"
dbname = "clinic"

[jobs]
expire_overdue_schedule = "0 2 * * *"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "0 2 * * *", cfg.Jobs.ExpireOverdueSchedule)
	assert.Equal(t,
		"host=db.internal port=5432 user=svc password=secret dbname=clinic sslmode=disable",
		cfg.Database.DSN())
}

func TestLoadValidation(t *testing.T) {
	_, err := Load(writeConfig(t, `
[database]
user = "svc"
`))
	assert.Error(t, err, "dbname is required")

	_, err = Load(writeConfig(t, `
[server]
http_port = -1

[database]
user = "svc"
dbname = "clinic"
`))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
