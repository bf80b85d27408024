package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/battlefield/parameter"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, SourceFile, cfg.Source)
	assert.Equal(t, parameter.DefaultMapFile, cfg.Map)
	assert.Equal(t, parameter.TickDelay, cfg.Simulation.TickDelay)
	assert.Equal(t, DisplayTerminal, cfg.Display.Mode)
	assert.False(t, cfg.Audio.Enabled)
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
source: random
random:
  width: 8
  height: 6
  units: 3
  seed: 42
simulation:
  tick_delay: 50ms
  max_ticks: 100
  target: nearest
  parallel_planning: 4
display:
  mode: text
audio:
  enabled: true
log:
  file: run.log
`))
	require.NoError(t, err)

	assert.Equal(t, SourceRandom, cfg.Source)
	assert.Equal(t, RandomConfig{Width: 8, Height: 6, Units: 3, Terrains: parameter.DefaultTerrains, Seed: 42}, cfg.Random)
	assert.Equal(t, 50*time.Millisecond, cfg.Simulation.TickDelay)
	assert.Equal(t, 100, cfg.Simulation.MaxTicks)
	assert.Equal(t, TargetNearest, cfg.Simulation.Target)
	assert.Equal(t, 4, cfg.Simulation.ParallelPlanning)
	assert.Equal(t, DisplayText, cfg.Display.Mode)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, "run.log", cfg.Log.File)

	// Untouched sections keep defaults
	assert.Equal(t, parameter.DefaultMazeBraiding, cfg.Maze.Braiding)
	assert.Equal(t, parameter.DefaultMapFile, cfg.Map)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"Unknown source", "source: ftp"},
		{"File without map", "source: file\nmap: \"\""},
		{"Negative random width", "random:\n  width: -1"},
		{"Negative terrains", "random:\n  terrains: -5"},
		{"Negative maze units", "maze:\n  units: -1"},
		{"Braiding above one", "maze:\n  braiding: 1.5"},
		{"Negative tick delay", "simulation:\n  tick_delay: -1s"},
		{"Negative max ticks", "simulation:\n  max_ticks: -3"},
		{"Negative workers", "simulation:\n  parallel_planning: -2"},
		{"Unknown target", "simulation:\n  target: random"},
		{"Unknown display", "display:\n  mode: gui"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("source: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "battlefield.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: maze\nmaze:\n  braiding: 0.5\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, SourceMaze, cfg.Source)
	assert.Equal(t, 0.5, cfg.Maze.Braiding)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
