package frog

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/frog/core"
	"github.com/lixenwraith/frog/parameter"
)

// ErrInvalidConfig is wrapped by every Config validation failure
var ErrInvalidConfig = errors.New("invalid frog config")

// Config fully determines a Frog's initial layout and terminal color
type Config struct {
	CellSize    int // Position units per grid cell
	CycleLength int // Segments laid out at construction
	Columns     int // Board width in cells
	Rows        int // Board height in cells

	Color         core.RGB // Body color while active
	GameOverColor core.RGB // Color forced by SetGameOver
}

// DefaultConfig returns the configuration built from parameter defaults
func DefaultConfig() Config {
	return Config{
		CellSize:      parameter.CellSize,
		CycleLength:   parameter.CycleLength,
		Columns:       parameter.BoardColumns,
		Rows:          parameter.BoardRows,
		Color:         parameter.FrogColor,
		GameOverColor: parameter.FrogGameOverColor,
	}
}

// Validate reports the first out-of-range field
func (c Config) Validate() error {
	switch {
	case c.CellSize < 1:
		return fmt.Errorf("%w: cell size must be at least 1, got %d", ErrInvalidConfig, c.CellSize)
	case c.CycleLength < 1:
		return fmt.Errorf("%w: cycle length must be at least 1, got %d", ErrInvalidConfig, c.CycleLength)
	case c.Columns < 1:
		return fmt.Errorf("%w: columns must be at least 1, got %d", ErrInvalidConfig, c.Columns)
	case c.Rows < 1:
		return fmt.Errorf("%w: rows must be at least 1, got %d", ErrInvalidConfig, c.Rows)
	}
	return nil
}

// Start returns the head position at construction
func (c Config) Start() core.Point {
	return core.Point{
		X: c.CellSize * c.Columns / parameter.StartColumnDivisor,
		Y: c.CellSize * c.Rows / parameter.StartRowDivisor,
	}
}

// Bounds returns the wrap extent in position units
func (c Config) Bounds() core.Area {
	return core.Area{Width: c.CellSize * c.Columns, Height: c.CellSize * c.Rows}
}
