package parameter

import "time"

// Session cadence
const (
	// TickInterval is the simulation step duration
	TickInterval = 90 * time.Millisecond

	// FrameInterval is the render cadence (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// GrowEvery is the number of ticks between tail growth events
	GrowEvery = 10

	// GrowBy is the number of segments appended per growth event
	GrowBy = 1

	// PointsPerSegment is the score for each segment grown
	PointsPerSegment = 1
)

// Status line
const (
	StatusTextPaused   = " PAUSED "
	StatusTextGameOver = " GAME OVER "
	StatusHelp         = "arrows/hjkl turn  p pause  r restart  q quit"
)
