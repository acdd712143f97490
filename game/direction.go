package game

import "github.com/lixenwraith/frog/core"

// Direction is a cardinal heading on the grid
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Velocity returns the per-tick displacement for d at the given cell size
func (d Direction) Velocity(cellSize int) core.Point {
	switch d {
	case DirUp:
		return core.Point{X: 0, Y: -cellSize}
	case DirDown:
		return core.Point{X: 0, Y: cellSize}
	case DirLeft:
		return core.Point{X: -cellSize, Y: 0}
	case DirRight:
		return core.Point{X: cellSize, Y: 0}
	}
	return core.Point{}
}
