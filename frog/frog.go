// Package frog implements the Frog cycle: a segmented actor whose tail follows
// the head one tick behind, grows on demand and turns to its terminal color on
// game over.
package frog

import (
	"github.com/lixenwraith/frog/core"
	"github.com/lixenwraith/frog/parameter"
)

// Frog is a long cycle with a trailing tail
// Segments are ordered head first, tail last
type Frog struct {
	cfg      Config
	segments []*core.Actor
	heading  core.Point
	color    core.RGB
	gameOver bool
}

// New validates cfg and lays out a straight vertical body heading up
func New(cfg Config) (*Frog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f := &Frog{
		cfg:     cfg,
		heading: core.Point{X: 0, Y: -cfg.CellSize},
		color:   cfg.Color,
	}
	f.prepareBody()
	return f, nil
}

func (f *Frog) prepareBody() {
	start := f.cfg.Start()
	f.segments = make([]*core.Actor, 0, f.cfg.CycleLength)

	for i := 0; i < f.cfg.CycleLength; i++ {
		glyph := rune(parameter.BodyGlyph)
		if i == 0 {
			glyph = parameter.HeadGlyph
		}

		segment := core.NewActor()
		segment.SetPosition(core.Point{X: start.X, Y: start.Y + i*f.cfg.CellSize})
		segment.SetVelocity(f.heading)
		segment.SetGlyph(glyph)
		segment.SetColor(f.color)
		f.segments = append(f.segments, segment)
	}
}

func (f *Frog) mustHaveBody() {
	if len(f.segments) == 0 {
		panic("frog: body not prepared, construct with frog.New")
	}
}

// MoveNext advances every segment by its own velocity, then hands each
// follower the velocity its leader had before this tick
func (f *Frog) MoveNext() {
	f.mustHaveBody()
	bounds := f.cfg.Bounds()
	for _, segment := range f.segments {
		segment.MoveNext(bounds)
	}

	prior := make([]core.Point, len(f.segments))
	for i, segment := range f.segments {
		prior[i] = segment.Velocity()
	}
	for i := len(f.segments) - 1; i > 0; i-- {
		f.segments[i].SetVelocity(prior[i-1])
	}
}

// GrowTail appends n body segments, each one reversed velocity step behind
// the current tail; n <= 0 does nothing
func (f *Frog) GrowTail(n int) {
	f.mustHaveBody()
	for ; n > 0; n-- {
		tail := f.segments[len(f.segments)-1]
		velocity := tail.Velocity()

		segment := core.NewActor()
		segment.SetPosition(tail.Position().Add(velocity.Reverse()))
		segment.SetVelocity(velocity)
		segment.SetGlyph(parameter.BodyGlyph)
		segment.SetColor(f.Color())
		f.segments = append(f.segments, segment)
	}
}

// TurnHead sets the head velocity; reversal into the body is not checked
func (f *Frog) TurnHead(velocity core.Point) {
	f.mustHaveBody()
	f.segments[0].SetVelocity(velocity)
}

// Head returns segment 0
func (f *Frog) Head() *core.Actor {
	f.mustHaveBody()
	return f.segments[0]
}

// Segments returns the body, head first
// The slice is owned by the Frog and must not be modified
func (f *Frog) Segments() []*core.Actor {
	return f.segments
}

// Len returns the number of segments
func (f *Frog) Len() int {
	return len(f.segments)
}

// Heading returns the velocity the body was laid out with
func (f *Frog) Heading() core.Point {
	return f.heading
}

// Color returns the Frog's current color, used for newly grown segments
func (f *Frog) Color() core.RGB {
	return f.color
}

// Config returns the configuration the Frog was built from
func (f *Frog) Config() Config {
	return f.cfg
}

// SetGameOver marks the Frog as finished and switches its color to the
// terminal color; existing segments keep their color until Repaint
func (f *Frog) SetGameOver() {
	f.gameOver = true
	f.color = f.cfg.GameOverColor
}

// IsGameOver reports whether SetGameOver has been called
func (f *Frog) IsGameOver() bool {
	return f.gameOver
}

// Repaint re-applies the Frog color to every segment
func (f *Frog) Repaint() {
	for _, segment := range f.segments {
		segment.SetColor(f.color)
	}
}

// HitsSelf reports whether the head shares a cell with any body segment
func (f *Frog) HitsSelf() bool {
	f.mustHaveBody()
	head := f.segments[0].Position()
	for _, segment := range f.segments[1:] {
		if segment.Position() == head {
			return true
		}
	}
	return false
}
