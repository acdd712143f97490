package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/frog/config"
	"github.com/lixenwraith/frog/core"
	"github.com/lixenwraith/frog/game"
	"github.com/lixenwraith/frog/terminal"
)

type drawnCell struct {
	ch    rune
	style tcell.Style
}

// fakeCanvas records the last frame drawn
type fakeCanvas struct {
	width, height int
	cells         map[[2]int]drawnCell
	shown         int
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{width: w, height: h, cells: make(map[[2]int]drawnCell)}
}

func (c *fakeCanvas) Clear() { c.cells = make(map[[2]int]drawnCell) }
func (c *fakeCanvas) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	c.cells[[2]int{x, y}] = drawnCell{ch: primary, style: style}
}
func (c *fakeCanvas) Size() (int, int) { return c.width, c.height }
func (c *fakeCanvas) Show()            { c.shown++ }

func (c *fakeCanvas) row(y int) string {
	var sb strings.Builder
	for x := 0; x < c.width; x++ {
		if cell, ok := c.cells[[2]int{x, y}]; ok {
			sb.WriteRune(cell.ch)
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

func newTestSession(t *testing.T) *game.Session {
	t.Helper()
	cfg := config.Default()
	cfg.Board = config.Board{CellSize: 2, Columns: 30, Rows: 20}
	cfg.Frog.CycleLength = 3
	s, err := game.NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

// TestDrawFrog verifies glyph placement and colors in terminal cells
func TestDrawFrog(t *testing.T) {
	s := newTestSession(t)
	canvas := newFakeCanvas(40, 21)
	r := NewRenderer(canvas, terminal.ColorModeTrueColor)

	r.Draw(s)

	if canvas.shown != 1 {
		t.Errorf("Expected one Show call, got %d", canvas.shown)
	}

	// Head at (2*30/6, 2*20/2) = (10, 20) position units = cell (5, 10)
	want := map[[2]int]rune{{5, 10}: '@', {5, 11}: '#', {5, 12}: '#'}
	for pos, ch := range want {
		cell, ok := canvas.cells[pos]
		if !ok {
			t.Errorf("Expected cell %v to be drawn", pos)
			continue
		}
		if cell.ch != ch {
			t.Errorf("Cell %v: expected %q, got %q", pos, ch, cell.ch)
		}
		if cell.style != r.Style(core.RGBGreen) {
			t.Errorf("Cell %v: expected frog green style", pos)
		}
	}
}

func TestDrawStatusLine(t *testing.T) {
	s := newTestSession(t)
	canvas := newFakeCanvas(80, 21)
	r := NewRenderer(canvas, terminal.ColorMode256)

	s.Pause()
	r.Draw(s)

	status := canvas.row(20)
	if !strings.Contains(status, "score 0") {
		t.Errorf("Expected score in status line, got %q", status)
	}
	if !strings.Contains(status, "length 3") {
		t.Errorf("Expected length in status line, got %q", status)
	}
	if !strings.Contains(status, "PAUSED") {
		t.Errorf("Expected PAUSED marker, got %q", status)
	}
}

func TestDrawClipsToCanvas(t *testing.T) {
	s := newTestSession(t)
	canvas := newFakeCanvas(4, 3)
	r := NewRenderer(canvas, terminal.ColorModeTrueColor)

	r.Draw(s)

	for pos := range canvas.cells {
		if pos[0] < 0 || pos[0] >= 4 || pos[1] < 0 || pos[1] >= 3 {
			t.Errorf("Expected no drawing outside canvas, got %v", pos)
		}
	}
}

func TestColorModes(t *testing.T) {
	if got := Color(core.RGB{R: 255}, terminal.ColorMode256); got != tcell.PaletteColor(196) {
		t.Errorf("Expected palette 196, got %v", got)
	}
	if got := Color(core.RGB{R: 1, G: 2, B: 3}, terminal.ColorModeTrueColor); got != tcell.NewRGBColor(1, 2, 3) {
		t.Errorf("Expected RGB color, got %v", got)
	}
}

// TestDrawSimulationScreen exercises the renderer against a real tcell screen
func TestDrawSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	s := newTestSession(t)
	r := NewRenderer(screen, terminal.ColorModeTrueColor)
	for i := 0; i < 5; i++ {
		s.Step()
		r.Draw(s)
	}
}
