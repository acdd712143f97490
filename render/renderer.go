package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/frog/core"
	"github.com/lixenwraith/frog/game"
	"github.com/lixenwraith/frog/parameter"
	"github.com/lixenwraith/frog/terminal"
)

// Canvas is the subset of tcell.Screen the renderer draws on
type Canvas interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Show()
}

// Renderer draws a session onto a canvas, one grid cell per terminal cell
type Renderer struct {
	canvas Canvas
	mode   terminal.ColorMode
	bg     tcell.Style
}

// NewRenderer creates a renderer for canvas using the given color mode
func NewRenderer(canvas Canvas, mode terminal.ColorMode) *Renderer {
	return &Renderer{
		canvas: canvas,
		mode:   mode,
		bg:     tcell.StyleDefault.Background(Color(RgbBackground, mode)),
	}
}

// Style returns the foreground style for c on the game background
func (r *Renderer) Style(c core.RGB) tcell.Style {
	return r.bg.Foreground(Color(c, r.mode))
}

// Cell maps a position to its terminal cell
func Cell(p core.Point, cellSize int) (x, y int) {
	return p.X / cellSize, p.Y / cellSize
}

// Draw renders the board, the frog and the status line
func (r *Renderer) Draw(s *game.Session) {
	r.canvas.Clear()
	width, height := r.canvas.Size()
	cfg := s.Config().Board

	boardW := min(cfg.Columns, width)
	boardH := min(cfg.Rows, height-1)
	for y := 0; y < boardH; y++ {
		for x := 0; x < boardW; x++ {
			r.canvas.SetContent(x, y, ' ', nil, r.bg)
		}
	}

	// Draw tail first so the head wins on overlap
	segments := s.Frog().Segments()
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		x, y := Cell(seg.Position(), cfg.CellSize)
		if x < 0 || y < 0 || x >= boardW || y >= boardH {
			continue
		}
		r.canvas.SetContent(x, y, seg.Glyph(), nil, r.Style(seg.Color()))
	}

	if height > 0 {
		r.drawStatus(s, height-1, width)
	}
	r.canvas.Show()
}

func (r *Renderer) drawStatus(s *game.Session, row, width int) {
	style := tcell.StyleDefault.Foreground(Color(RgbStatusBar, r.mode))
	x := r.drawText(0, row, width, fmt.Sprintf(" score %d  length %d ", s.Score(), s.Frog().Len()), style)

	switch {
	case s.Over():
		x = r.drawText(x, row, width, parameter.StatusTextGameOver, style.Foreground(Color(RgbGameOver, r.mode)).Reverse(true))
	case s.Paused():
		x = r.drawText(x, row, width, parameter.StatusTextPaused, style.Foreground(Color(RgbPaused, r.mode)).Reverse(true))
	}
	r.drawText(x+1, row, width, parameter.StatusHelp, style)
}

// drawText writes text from column x, clipped at width; returns the next column
func (r *Renderer) drawText(x, y, width int, text string, style tcell.Style) int {
	for _, ch := range text {
		if x >= width {
			break
		}
		r.canvas.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
