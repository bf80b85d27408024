// Package config loads the YAML run configuration for the battlefield CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/battlefield/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Battlefield sources
const (
	SourceFile   = "file"
	SourceRandom = "random"
	SourceMaze   = "maze"
	SourcePrompt = "prompt"
)

// Display modes
const (
	DisplayTerminal = "terminal"
	DisplayText     = "text"
	DisplayNone     = "none"
)

// Target policies, names match simulation.ParseTargetPolicy
const (
	TargetFirst   = "first"
	TargetNearest = "nearest"
)

// Config is the full run configuration
type Config struct {
	Source     string           `yaml:"source"` // file, random, maze or prompt
	Map        string           `yaml:"map"`    // Tiled JSON or YAML layout, used by source file
	Random     RandomConfig     `yaml:"random"`
	Maze       MazeConfig       `yaml:"maze"`
	Simulation SimulationConfig `yaml:"simulation"`
	Display    DisplayConfig    `yaml:"display"`
	Audio      AudioConfig      `yaml:"audio"`
	Log        LogConfig        `yaml:"log"`
}

// RandomConfig sizes a uniformly scattered battlefield
type RandomConfig struct {
	Width    int   `yaml:"width"`
	Height   int   `yaml:"height"`
	Units    int   `yaml:"units"`
	Terrains int   `yaml:"terrains"`
	Seed     int64 `yaml:"seed"` // 0 = time-based
}

// MazeConfig sizes a braided maze battlefield
type MazeConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Units    int     `yaml:"units"`
	Braiding float64 `yaml:"braiding"` // Dead-end removal probability, 0..1
	Seed     int64   `yaml:"seed"`
}

// SimulationConfig paces the tick loop
type SimulationConfig struct {
	TickDelay        time.Duration `yaml:"tick_delay"`
	MaxTicks         int           `yaml:"max_ticks"` // 0 = until no unit moves
	Target           string        `yaml:"target"`    // first or nearest
	ParallelPlanning int           `yaml:"parallel_planning"`
}

// DisplayConfig selects the frame output
type DisplayConfig struct {
	Mode string `yaml:"mode"` // terminal, text or none
}

// AudioConfig toggles cues
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LogConfig routes the log; empty file means stderr
type LogConfig struct {
	File string `yaml:"file"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Source: SourceFile,
		Map:    parameter.DefaultMapFile,
		Random: RandomConfig{
			Width:    parameter.DefaultFieldWidth,
			Height:   parameter.DefaultFieldHeight,
			Units:    parameter.DefaultUnitCount,
			Terrains: parameter.DefaultTerrains,
		},
		Maze: MazeConfig{
			Width:    parameter.DefaultFieldWidth,
			Height:   parameter.DefaultFieldHeight,
			Units:    parameter.DefaultUnitCount,
			Braiding: parameter.DefaultMazeBraiding,
		},
		Simulation: SimulationConfig{
			TickDelay: parameter.TickDelay,
			MaxTicks:  parameter.MaxTicks,
			Target:    TargetFirst,
		},
		Display: DisplayConfig{Mode: DisplayTerminal},
	}
}

// Load reads a YAML file over the defaults
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enums and ranges
func (c Config) Validate() error {
	switch c.Source {
	case SourceFile:
		if c.Map == "" {
			return fmt.Errorf("%w: source %q requires a map path", ErrInvalid, c.Source)
		}
	case SourceRandom, SourceMaze, SourcePrompt:
	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalid, c.Source)
	}

	if c.Random.Width < 0 || c.Random.Height < 0 || c.Random.Units < 0 || c.Random.Terrains < 0 {
		return fmt.Errorf("%w: random dimensions and counts cannot be negative", ErrInvalid)
	}
	if c.Maze.Width < 0 || c.Maze.Height < 0 || c.Maze.Units < 0 {
		return fmt.Errorf("%w: maze dimensions and counts cannot be negative", ErrInvalid)
	}
	if c.Maze.Braiding < 0 || c.Maze.Braiding > 1 {
		return fmt.Errorf("%w: maze braiding must be between 0 and 1, got %v", ErrInvalid, c.Maze.Braiding)
	}

	if c.Simulation.TickDelay < 0 {
		return fmt.Errorf("%w: tick_delay cannot be negative", ErrInvalid)
	}
	if c.Simulation.MaxTicks < 0 {
		return fmt.Errorf("%w: max_ticks cannot be negative", ErrInvalid)
	}
	if c.Simulation.ParallelPlanning < 0 {
		return fmt.Errorf("%w: parallel_planning cannot be negative", ErrInvalid)
	}
	switch c.Simulation.Target {
	case TargetFirst, TargetNearest:
	default:
		return fmt.Errorf("%w: unknown target policy %q", ErrInvalid, c.Simulation.Target)
	}

	switch c.Display.Mode {
	case DisplayTerminal, DisplayText, DisplayNone:
	default:
		return fmt.Errorf("%w: unknown display mode %q", ErrInvalid, c.Display.Mode)
	}

	return nil
}
