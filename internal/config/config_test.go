package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/sokoban/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sokoban.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 60, cfg.TicksPerSecond)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Save.Resume)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  title: Warehouse
  tileSize: 24
ticksPerSecond: 30
log:
  encoding: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Warehouse", cfg.Window.Title)
	assert.Equal(t, 24, cfg.Window.TileSize)
	assert.Equal(t, 30, cfg.TicksPerSecond)
	assert.Equal(t, "json", cfg.Log.Encoding)

	// absent keys keep their defaults
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "sokoban", cfg.Save.AppName)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeConfig(t, "window: [\n"))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, "ticksPerSecond: 0\n"))
	assert.ErrorContains(t, err, "ticksPerSecond")
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Width = 0
	cfg.Window.TileSize = -1
	cfg.StartLevel = -2
	cfg.Log.Encoding = "xml"
	cfg.Save.AppName = ""

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"window size", "tile size", "startLevel", "log encoding", "appName"} {
		assert.ErrorContains(t, err, want)
	}
}

func TestFlagsResolve(t *testing.T) {
	path := writeConfig(t, "startLevel: 1\n")

	var flags config.Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags.Register(fs)
	require.NoError(t, fs.Parse([]string{"-config", path, "-level", "2", "-debug", "-levels", "custom.yaml"}))

	cfg, err := flags.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.StartLevel)
	assert.False(t, cfg.Save.Resume)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "custom.yaml", cfg.LevelsFile)
}

func TestFlagsDefaults(t *testing.T) {
	var flags config.Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags.Register(fs)
	require.NoError(t, fs.Parse([]string{"-log-level", "warn"}))

	cfg, err := flags.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.StartLevel)
	assert.True(t, cfg.Save.Resume)
	assert.Equal(t, "warn", cfg.Log.Level)
}
