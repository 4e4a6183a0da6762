package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/kjkrol/goquad/pkg/gfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  title: Colors
  width: 800
renderer:
  program_cache: -1
  log_level: debug
keys:
  F1: red
  x: "#0000ff"
  q: black
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Colors", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, -1, cfg.RendererConfig(nil).ProgramCache)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	kb, err := cfg.Bindings()
	require.NoError(t, err)
	assert.Equal(t, gfx.KeyBindings{
		"F1": gfx.TriggerRed,
		"x":  gfx.TriggerBlue,
		"q":  gfx.TriggerReset,
	}, kb)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"size":    "window: {width: 0}",
		"border":  "window: {border: -2}",
		"level":   "renderer: {log_level: loud}",
		"trigger": "keys: {z: purple}",
		"syntax":  "window: [",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestDefaultBindings(t *testing.T) {
	kb, err := Default().Bindings()
	require.NoError(t, err)
	assert.Equal(t, gfx.DefaultKeyBindings(), kb)
}

func TestPlatformWindow(t *testing.T) {
	cfg := Default()
	cfg.Window.X, cfg.Window.Y = 10, 20
	w := cfg.PlatformWindow()
	assert.Equal(t, 10, w.PositionX)
	assert.Equal(t, 20, w.PositionY)
	assert.Equal(t, 640, w.Width)
	assert.Equal(t, 480, w.Height)
	assert.Equal(t, "Quad", w.Title)
}
