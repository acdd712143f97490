package parameter

import "github.com/lixenwraith/frog/core"

// Board geometry
const (
	// CellSize is the edge of one grid cell in position units
	// 1 maps one position unit to one terminal cell
	CellSize = 1

	BoardColumns = 60
	BoardRows    = 30
)

// Frog body
const (
	// CycleLength is the number of segments laid out at construction
	CycleLength = 8

	HeadGlyph = '@'
	BodyGlyph = '#'

	// StartColumnDivisor places the head at Columns/6 horizontally
	StartColumnDivisor = 6
	// StartRowDivisor places the head at Rows/2 vertically
	StartRowDivisor = 2
)

// Frog colors
var (
	FrogColor         = core.RGBGreen
	FrogGameOverColor = core.RGBWhite
)
