package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sheepfold/sheep/internal/config"
	"github.com/sheepfold/sheep/internal/persist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScenario = `
start_tick: 0
rooms:
  - name: W1N1
    controller: {x: 25, y: 25, level: 1}
    sources:
      - {x: 10, y: 10}
    spawns:
      - {name: Spawn1, x: 12, y: 12, energy: 300}
creeps:
  - {name: pioneer, room: W1N1, x: 11, y: 11, body: [move, carry, work]}
`

// writeFixture writes a scenario and a config pointing at it, returning the config path.
func writeFixture(t *testing.T, storage string) string {
	t.Helper()
	dir := t.TempDir()
	scenario := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(scenario, []byte(testScenario), 0o644))

	body := fmt.Sprintf(`
[engine]
tick_rate = "0s"

[storage]
%s

[sim]
scenario = %q
max_ticks = 20

[logging]
level = "error"
`, storage, scenario)
	path := filepath.Join(dir, "sheep.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv("SHEEP_CONFIG", "")
	assert.Equal(t, defaultConfigPath, (&options{}).resolveConfigPath())

	t.Setenv("SHEEP_CONFIG", "/etc/sheep.toml")
	assert.Equal(t, "/etc/sheep.toml", (&options{}).resolveConfigPath())
	assert.Equal(t, "x.toml", (&options{configPath: "x.toml"}).resolveConfigPath())
}

func TestNewLoggerFormats(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		log, err := newLogger(config.LoggingConfig{Level: "warn", Format: format})
		require.NoError(t, err, format)
		assert.False(t, log.Core().Enabled(-1), "debug must be off at warn")
	}

	// bad level falls back to info
	log, err := newLogger(config.LoggingConfig{Level: "loud"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(0))
}

func TestRunStopsAtMaxTicks(t *testing.T) {
	path := writeFixture(t, `driver = "memory"`)
	_, err := execute(t, "run", "--quiet", "--config", path)
	require.NoError(t, err)
}

func TestRunBadConfig(t *testing.T) {
	_, err := execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "load config")
}

func TestReapDeletesDeadCreepMemory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "memory.db")
	ctx := context.Background()

	store, err := persist.OpenSQLite(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "pioneer", []byte(`{}`)))
	require.NoError(t, store.Save(ctx, "ghost", []byte(`{}`)))
	require.NoError(t, store.Close())

	path := writeFixture(t, fmt.Sprintf("driver = \"sqlite\"\nsqlite_path = %q", dbPath))
	out, err := execute(t, "reap", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "deleted 1")

	store, err = persist.OpenSQLite(ctx, dbPath)
	require.NoError(t, err)
	defer store.Close()
	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"pioneer"}, keys)
}

func TestMigrate(t *testing.T) {
	out, err := execute(t, "migrate", "--config", writeFixture(t, `driver = "memory"`))
	require.NoError(t, err)
	assert.Contains(t, out, "nothing to migrate")

	dbPath := filepath.Join(t.TempDir(), "memory.db")
	out, err = execute(t, "migrate", "--config", writeFixture(t, fmt.Sprintf("driver = \"sqlite\"\nsqlite_path = %q", dbPath)))
	require.NoError(t, err)
	assert.Contains(t, out, "sqlite: migrations applied")
}
