package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/frog/core"
	"github.com/lixenwraith/frog/terminal"
)

// UI colors
var (
	RgbBackground = core.RGB{R: 26, G: 27, B: 38}    // Tokyo Night background
	RgbStatusBar  = core.RGB{R: 180, G: 180, B: 180} // Brighter gray
	RgbPaused     = core.RGB{R: 255, G: 165, B: 0}   // Orange
	RgbGameOver   = core.RGB{R: 255, G: 80, B: 80}   // Normal red
)

// Color converts c to a tcell color for the given mode
func Color(c core.RGB, mode terminal.ColorMode) tcell.Color {
	if mode == terminal.ColorMode256 {
		return tcell.PaletteColor(int(terminal.RGBTo256(c)))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
