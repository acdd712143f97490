// Package config assembles the game settings from defaults, a TOML settings
// file and FROG_* environment variables
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/lixenwraith/frog/core"
	"github.com/lixenwraith/frog/frog"
	"github.com/lixenwraith/frog/parameter"
	"github.com/lixenwraith/frog/toml"
)

// DefaultPath is the settings file read when no path is given
const DefaultPath = "frog.toml"

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the complete game configuration
type Config struct {
	Board   Board   `toml:"board"`
	Frog    Frog    `toml:"frog"`
	Session Session `toml:"session"`
}

// Board describes the playfield grid
type Board struct {
	CellSize int `toml:"cell_size"`
	Columns  int `toml:"columns"`
	Rows     int `toml:"rows"`
}

// Frog describes the player body
type Frog struct {
	CycleLength   int   `toml:"cycle_length"`
	Color         []int `toml:"color"`
	GameOverColor []int `toml:"game_over_color"`
}

// Session describes tick cadence and growth
type Session struct {
	TickMS    int `toml:"tick_ms"`
	GrowEvery int `toml:"grow_every"`
	GrowBy    int `toml:"grow_by"`
}

// Default returns the configuration built from parameter defaults
func Default() Config {
	return Config{
		Board: Board{
			CellSize: parameter.CellSize,
			Columns:  parameter.BoardColumns,
			Rows:     parameter.BoardRows,
		},
		Frog: Frog{
			CycleLength:   parameter.CycleLength,
			Color:         parameter.FrogColor.Slice(),
			GameOverColor: parameter.FrogGameOverColor.Slice(),
		},
		Session: Session{
			TickMS:    int(parameter.TickInterval / time.Millisecond),
			GrowEvery: parameter.GrowEvery,
			GrowBy:    parameter.GrowBy,
		},
	}
}

// Load builds a validated configuration: defaults, then the settings file at
// path, then envFile and process environment overrides
// A missing file at path is an error unless path is DefaultPath
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}
	if err := cfg.LoadFile(path); err != nil {
		if !(path == DefaultPath && errors.Is(err, fs.ErrNotExist)) {
			return Config{}, err
		}
	}

	if err := cfg.ApplyEnv(envFile); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile overlays the settings file onto cfg; absent keys keep their values
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse settings %s: %w", path, err)
	}
	return nil
}

// Encode returns the configuration as settings file text
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate checks every field; errors wrap ErrInvalid
func (c Config) Validate() error {
	fc, err := c.FrogConfig()
	if err != nil {
		return err
	}
	if err := fc.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	switch {
	case c.Session.TickMS < 1:
		return fmt.Errorf("%w: tick_ms must be at least 1, got %d", ErrInvalid, c.Session.TickMS)
	case c.Session.GrowEvery < 0:
		return fmt.Errorf("%w: grow_every must not be negative, got %d", ErrInvalid, c.Session.GrowEvery)
	case c.Session.GrowBy < 0:
		return fmt.Errorf("%w: grow_by must not be negative, got %d", ErrInvalid, c.Session.GrowBy)
	}
	return nil
}

// FrogConfig converts the board and frog sections into a frog.Config
func (c Config) FrogConfig() (frog.Config, error) {
	color, ok := core.RGBFromSlice(c.Frog.Color)
	if !ok {
		return frog.Config{}, fmt.Errorf("%w: color must be [r, g, b], got %v", ErrInvalid, c.Frog.Color)
	}
	over, ok := core.RGBFromSlice(c.Frog.GameOverColor)
	if !ok {
		return frog.Config{}, fmt.Errorf("%w: game_over_color must be [r, g, b], got %v", ErrInvalid, c.Frog.GameOverColor)
	}
	return frog.Config{
		CellSize:      c.Board.CellSize,
		CycleLength:   c.Frog.CycleLength,
		Columns:       c.Board.Columns,
		Rows:          c.Board.Rows,
		Color:         color,
		GameOverColor: over,
	}, nil
}

// TickInterval returns the session step duration
func (s Session) TickInterval() time.Duration {
	return time.Duration(s.TickMS) * time.Millisecond
}
