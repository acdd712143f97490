// Package game drives a Frog through a play session: tick cadence, tail
// growth, self-collision and scoring
package game

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/lixenwraith/frog/config"
	"github.com/lixenwraith/frog/core"
	"github.com/lixenwraith/frog/frog"
	"github.com/lixenwraith/frog/parameter"
)

// Option configures a Session
type Option func(*Session)

// WithLogger routes session log lines to l
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithObserver registers fn to receive the events of every Step
func WithObserver(fn func(Events)) Option {
	return func(s *Session) {
		s.observer = fn
	}
}

// Session is one play-through driving a single Frog
// Not safe for concurrent use; the game loop owns it
type Session struct {
	id     string
	cfg    config.Config
	frogCf frog.Config
	frog   *frog.Frog

	ticks  int
	score  int
	paused bool
	facing core.Point

	logger   *log.Logger
	observer func(Events)
}

// NewSession validates cfg and builds a fresh Frog
func NewSession(cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fc, err := cfg.FrogConfig()
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:     uuid.NewString(),
		cfg:    cfg,
		frogCf: fc,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) reset() error {
	f, err := frog.New(s.frogCf)
	if err != nil {
		return fmt.Errorf("session %s: %w", s.id, err)
	}
	s.frog = f
	s.ticks = 0
	s.score = 0
	s.paused = false
	s.facing = f.Heading()
	s.logf("start: length=%d head=%v", f.Len(), f.Head().Position())
	return nil
}

func (s *Session) logf(format string, args ...any) {
	s.logger.Printf("[session %s] "+format, append([]any{s.id[:8]}, args...)...)
}

// Turn steers the head; turning straight back onto the body is ignored
// Returns true when the heading changed
func (s *Session) Turn(d Direction) bool {
	if s.frog.IsGameOver() || d == DirNone {
		return false
	}
	v := d.Velocity(s.frogCf.CellSize)
	current := s.frog.Head().Velocity()
	if v == current {
		return false
	}
	// The head velocity can be turned several times between ticks, so check
	// against the heading actually travelled last tick
	if s.frog.Len() > 1 && v == s.facing.Reverse() {
		return false
	}
	s.frog.TurnHead(v)
	return true
}

// Step advances one tick; a paused or finished session does nothing
func (s *Session) Step() Events {
	if s.paused || s.frog.IsGameOver() {
		return 0
	}

	s.facing = s.frog.Head().Velocity()
	s.frog.MoveNext()
	s.ticks++
	ev := EventMoved

	every := s.cfg.Session.GrowEvery
	if every > 0 && s.cfg.Session.GrowBy > 0 && s.ticks%every == 0 {
		s.frog.GrowTail(s.cfg.Session.GrowBy)
		s.score += s.cfg.Session.GrowBy * parameter.PointsPerSegment
		ev |= EventGrew
		s.logf("grew: length=%d score=%d", s.frog.Len(), s.score)
	}

	if s.frog.HitsSelf() {
		s.frog.SetGameOver()
		s.frog.Repaint()
		ev |= EventDied
		s.logf("game over: tick=%d length=%d score=%d head=%v", s.ticks, s.frog.Len(), s.score, s.frog.Head().Position())
	}

	if s.observer != nil {
		s.observer(ev)
	}
	return ev
}

// Restart discards the current Frog and starts over with the same config
func (s *Session) Restart() error {
	s.logf("restart after %d ticks", s.ticks)
	return s.reset()
}

// TogglePause flips the paused state; a finished session stays unpaused
func (s *Session) TogglePause() {
	if s.frog.IsGameOver() {
		return
	}
	s.paused = !s.paused
}

func (s *Session) Pause()  { s.paused = true }
func (s *Session) Resume() { s.paused = false }

func (s *Session) ID() string            { return s.id }
func (s *Session) Frog() *frog.Frog      { return s.frog }
func (s *Session) Config() config.Config { return s.cfg }
func (s *Session) Ticks() int            { return s.ticks }
func (s *Session) Score() int            { return s.score }
func (s *Session) Paused() bool          { return s.paused }
func (s *Session) Over() bool            { return s.frog.IsGameOver() }
