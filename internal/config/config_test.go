package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheep.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[engine]
tick_rate = "250ms"
reap_interval = 50
body = ["work", "carry", "move"]

[storage]
driver = "sqlite"
sqlite_path = "/tmp/x.db"

[logging]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Engine.TickRate)
	assert.EqualValues(t, 50, cfg.Engine.ReapInterval)
	assert.Equal(t, []string{"work", "carry", "move"}, cfg.Engine.Body)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/x.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// untouched keys keep their defaults
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 100, cfg.Engine.StatsInterval)
	assert.Equal(t, 5*time.Second, cfg.Storage.Timeout)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	path := writeConfig(t, "[storage]\ndriver = \"redis\"\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	assert.EqualValues(t, 1000, cfg.Engine.ReapInterval)
}

func TestShippedConfigLoads(t *testing.T) {
	cfg, err := Load("../../config/sheep.toml")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, 30*time.Minute, cfg.Storage.ConnMaxLifetime)
	assert.EqualValues(t, 1000, cfg.Engine.ReapInterval)
}
